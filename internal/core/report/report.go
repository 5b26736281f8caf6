// Package report renders cargo-create's user-facing messages.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter writes warnings, errors and success lines to a single stream.
type Reporter struct {
	out     io.Writer
	warn    *color.Color
	fail    *color.Color
	success *color.Color
}

// New returns a Reporter writing to out. Colors are emitted only when colored is set.
func New(out io.Writer, colored bool) *Reporter {
	r := &Reporter{
		out:     out,
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		success: color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{r.warn, r.fail, r.success} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// ColorEnabled reports whether output should be colored: in must be an
// interactive terminal and NO_COLOR must be unset.
func ColorEnabled(in *os.File) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	fd := in.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Warn prints a non-fatal message.
func (r *Reporter) Warn(msg string) {
	_, _ = r.warn.Fprintln(r.out, msg)
}

// MissingName prints the warning for an invocation without a project name.
func (r *Reporter) MissingName() {
	_, _ = r.fail.Fprintln(r.out, "No arguments were provided. At least the name of the project is required.")
}

// Error prints a failed run together with its cause.
func (r *Reporter) Error(err error) {
	_, _ = r.fail.Fprintln(r.out, "Failed to create project. Reason:")
	_, _ = r.fail.Fprintln(r.out, err.Error())
}

// Success prints the created project's name.
func (r *Reporter) Success(name string) {
	_, _ = r.success.Fprintf(r.out, "Created project successfully! Name: %s\n", name)
}

// Usage prints the help text uncolored.
func (r *Reporter) Usage() {
	_, _ = fmt.Fprint(r.out, usage)
}

const usage = "`cargo-create` is a tool to create rust projects with a given configuration.\n" +
	"--\n" +
	"The first argument must always be the name of your new project. This will also be the project directory name.\n" +
	"\n" +
	"If used as is, this will generate a default project with a `main.rs` file, a `Cargo.toml` file with useful " +
	"optimisations enabled, and a `.cargo/config.toml` file with more compiler optimisations enabled. " +
	"These features can be toggled using the following arguments:\n" +
	"\n" +
	"    --no-opt       : disables all optimisation options\n" +
	"    --no-config    : omits the `.cargo` directory, therefore doesn't create `config.toml`\n" +
	"    --lib-not-main : replaces `main.rs` with `lib.rs`\n" +
	"\n" +
	"Additionally, you can specify a custom project template with the `--template-dir` argument. The correct format is:\n" +
	"    --template-dir=path/to/directory\n" +
	"Adding a space will result in this setting being ignored. Paths can be relative or absolute.\n" +
	"\n" +
	"If a custom template is specified, other arguments are ignored.\n"
