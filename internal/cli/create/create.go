// Package create implements the cargo-create command: it parses the raw
// arguments, runs either the default generator or the template copier and
// reports the outcome.
package create

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/cargo-create/internal/core/copier"
	"github.com/nightconcept/cargo-create/internal/core/generator"
	"github.com/nightconcept/cargo-create/internal/core/manifest"
	"github.com/nightconcept/cargo-create/internal/core/options"
	"github.com/nightconcept/cargo-create/internal/core/report"
)

// ExitFailure is the exit code of a run that reported an error.
const ExitFailure = 1

// NewAction returns the root action. All project files are written to fsys,
// relative to its working directory.
func NewAction(fsys afero.Fs) cli.ActionFunc {
	return func(c *cli.Context) error {
		rep := report.New(c.App.Writer, report.ColorEnabled(os.Stdin))
		return Run(c.Args().Slice(), rep, fsys)
	}
}

// Run executes one invocation. Failures have already been reported when
// the returned error is a cli.ExitCoder.
func Run(args []string, rep *report.Reporter, fsys afero.Fs) error {
	opts, err := options.Parse(args, rep)
	if errors.Is(err, options.ErrMissingName) {
		rep.MissingName()
		return nil
	}
	if err != nil {
		rep.Error(err)
		return cli.Exit("", ExitFailure)
	}

	if opts.Help {
		rep.Usage()
		return nil
	}

	root := filepath.Clean(opts.Name)
	if opts.HasTemplate() {
		replaced, err := copier.New(fsys).Copy(root, opts.TemplateDir, opts.Name)
		if err != nil {
			rep.Error(err)
			return cli.Exit("", ExitFailure)
		}
		checkManifest(fsys, root, opts.Name, replaced, rep)
	} else if err := generator.New(fsys).Generate(root, opts); err != nil {
		rep.Error(err)
		return cli.Exit("", ExitFailure)
	}

	rep.Success(opts.Name)
	return nil
}

// checkManifest warns when a copied template left Cargo.toml without the
// requested package name. It never fails the run.
func checkManifest(fsys afero.Fs, root, name string, replaced bool, rep *report.Reporter) {
	if !replaced {
		rep.Warn(fmt.Sprintf("Template %s has no %s placeholder; it was copied unchanged.", manifest.FileName, manifest.Placeholder))
	}

	m, err := manifest.Inspect(fsys, root)
	if err != nil {
		rep.Warn(fmt.Sprintf("Could not read the new %s: %v", manifest.FileName, err))
		return
	}
	if got := m.Name(); got != name {
		rep.Warn(fmt.Sprintf("%s package name is %q, expected %q.", manifest.FileName, got, name))
	}
}
