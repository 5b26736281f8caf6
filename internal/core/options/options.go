// Package options turns the raw cargo-create argument list into an Options value.
package options

import (
	"errors"
	"fmt"
	"strings"
)

// Recognized flags.
const (
	FlagHelp        = "--help"
	FlagLibNotMain  = "--lib-not-main"
	FlagNoOpt       = "--no-opt"
	FlagNoConfig    = "--no-config"
	FlagTemplateDir = "--template-dir"
)

// ErrMissingName is returned when no usable project name was given.
var ErrMissingName = errors.New("no project name was provided")

// Warner receives non-fatal messages produced while parsing.
type Warner interface {
	Warn(msg string)
}

// Options holds everything one invocation needs to generate a project.
type Options struct {
	Name        string
	Config      bool
	Opt         bool
	Lib         bool
	TemplateDir string // empty when no template directory was requested
	Help        bool
}

// Default returns the options used when only a name is given.
func Default(name string) Options {
	return Options{
		Name:   name,
		Config: true,
		Opt:    true,
	}
}

// HasTemplate reports whether the custom template path should run.
func (o Options) HasTemplate() bool {
	return o.TemplateDir != ""
}

// wantsHelp reports whether the help flag appears anywhere in args.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == FlagHelp {
			return true
		}
	}
	return false
}

// Parse builds Options from args (program name excluded).
// Help wins over everything else and an empty list yields ErrMissingName.
// The first argument is always the name. Unknown or malformed flags, and a
// name that looks like a flag, are sent to w; none of them stop parsing.
func Parse(args []string, w Warner) (Options, error) {
	if wantsHelp(args) {
		return Options{Help: true}, nil
	}

	name, err := firstArg(args)
	if err != nil {
		return Options{}, err
	}

	if strings.HasPrefix(name, "-") {
		w.Warn(fmt.Sprintf("Project name %q looks like a flag. Using it as the name.", name))
	}

	opts := Default(name)
	for _, arg := range args[1:] {
		switch {
		case arg == FlagTemplateDir || strings.HasPrefix(arg, FlagTemplateDir+"="):
			_, path, found := strings.Cut(arg, "=")
			if !found || path == "" {
				w.Warn(`Incorrectly formatted argument: "template-dir"`)
				continue
			}
			opts.TemplateDir = path
		case arg == FlagLibNotMain:
			opts.Lib = true
		case arg == FlagNoOpt:
			opts.Opt = false
		case arg == FlagNoConfig:
			opts.Config = false
		default:
			w.Warn(fmt.Sprintf("Unknown argument: %q. Ignoring.", arg))
		}
	}
	return opts, nil
}

func firstArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrMissingName
	}
	return args[0], nil
}
