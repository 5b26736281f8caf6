// Command cargo-create scaffolds a new Rust project from the built-in
// template or from a template directory.
package main

import (
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/cargo-create/internal/cli/create"
)

// version is the application version, set at build time.
var version = "dev"

func main() {
	app := &cli.App{
		Name:      "cargo-create",
		Usage:     "Create rust projects with a given configuration",
		UsageText: "cargo-create <name> [--no-opt] [--no-config] [--lib-not-main] [--template-dir=path]\ncargo-create --help",
		Version:   version,
		// Arguments are parsed by the create package; --template-dir=path and
		// unknown-flag warnings don't fit urfave's flag parser.
		SkipFlagParsing: true,
		HideHelp:        true,
		HideHelpCommand: true,
		HideVersion:     true,
		Writer:          os.Stdout,
		ErrWriter:       os.Stderr,
		Action:          create.NewAction(afero.NewOsFs()),
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
