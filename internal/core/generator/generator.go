// Package generator creates a project from the built-in templates.
package generator

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/nightconcept/cargo-create/internal/core/manifest"
	"github.com/nightconcept/cargo-create/internal/core/options"
)

// Layout and contents of the entry-point file.
const (
	SrcDir      = "src"
	MainFile    = "main.rs"
	LibFile     = "lib.rs"
	EntrySource = "fn main(){}"
)

// Generator writes default-template projects to a filesystem.
type Generator struct {
	fs afero.Fs
}

// New returns a Generator writing to fsys.
func New(fsys afero.Fs) *Generator {
	return &Generator{fs: fsys}
}

// EntryFile returns the entry-point path relative to the project root.
func EntryFile(lib bool) string {
	if lib {
		return filepath.Join(SrcDir, LibFile)
	}
	return filepath.Join(SrcDir, MainFile)
}

// Generate creates root and populates it according to opts.
// The first failing filesystem call aborts the run; whatever was created
// before it is left in place.
func (g *Generator) Generate(root string, opts options.Options) error {
	root = filepath.Clean(root)
	if parent := filepath.Dir(root); parent != "." {
		if err := g.fs.MkdirAll(parent, 0o755); err != nil {
			return err
		}
	}
	if err := g.fs.Mkdir(root, 0o755); err != nil {
		return err
	}
	if err := g.fs.Mkdir(filepath.Join(root, SrcDir), 0o755); err != nil {
		return err
	}

	if opts.Config && opts.Opt {
		cfgDir := filepath.Join(root, manifest.ConfigDir)
		if err := g.fs.Mkdir(cfgDir, 0o755); err != nil {
			return err
		}
		if err := g.createNew(filepath.Join(cfgDir, manifest.ConfigFileName), manifest.BuildConfig()); err != nil {
			return err
		}
	}

	if err := g.createNew(filepath.Join(root, EntryFile(opts.Lib)), []byte(EntrySource)); err != nil {
		return err
	}

	return g.createNew(filepath.Join(root, manifest.FileName), []byte(manifest.Render(opts.Name, opts.Opt)))
}

// createNew writes data to path, failing if path already exists.
func (g *Generator) createNew(path string, data []byte) error {
	file, err := g.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
