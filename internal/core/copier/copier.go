// Package copier creates a project by copying a user-supplied template directory.
package copier

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/nightconcept/cargo-create/internal/core/manifest"
)

var (
	// ErrUnnamedEntry is returned for a directory entry with no usable name.
	ErrUnnamedEntry = errors.New("entry has no name")
	// ErrTargetInsideTemplate is returned when the new project would be
	// created inside the template being copied.
	ErrTargetInsideTemplate = errors.New("project directory is inside the template directory")
)

// Copier copies template trees on a single filesystem.
type Copier struct {
	fs afero.Fs
}

// New returns a Copier operating on fsys.
func New(fsys afero.Fs) *Copier {
	return &Copier{fs: fsys}
}

// Copy creates root, copies every entry of templateDir into it and then
// substitutes name for the first placeholder in root's Cargo.toml.
// replaced reports whether the manifest contained a placeholder.
func (c *Copier) Copy(root, templateDir, name string) (replaced bool, err error) {
	root = filepath.Clean(root)
	if inside(root, templateDir) {
		return false, fmt.Errorf("%w: %s", ErrTargetInsideTemplate, templateDir)
	}

	if parent := filepath.Dir(root); parent != "." {
		if err := c.fs.MkdirAll(parent, 0o755); err != nil {
			return false, err
		}
	}
	if err := c.fs.Mkdir(root, 0o755); err != nil {
		return false, err
	}
	if err := c.copyDir(templateDir, root); err != nil {
		return false, err
	}
	return c.patchManifest(root, name)
}

func (c *Copier) copyDir(src, dst string) error {
	entries, err := afero.ReadDir(c.fs, src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == "" || name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) {
			return fmt.Errorf("%w: %q in %s", ErrUnnamedEntry, name, src)
		}
		srcPath := filepath.Join(src, name)
		dstPath := filepath.Join(dst, name)

		// Stat rather than the listing's Lstat so symlinks are followed.
		info, err := c.fs.Stat(srcPath)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if err := c.fs.Mkdir(dstPath, 0o755); err != nil {
				return err
			}
			if err := c.copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := c.copyFile(srcPath, dstPath, info.Mode().Perm()); err != nil {
			return err
		}
	}
	return nil
}

func (c *Copier) copyFile(src, dst string, perm os.FileMode) error {
	in, err := c.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := c.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func (c *Copier) patchManifest(root, name string) (bool, error) {
	path := filepath.Join(root, manifest.FileName)
	info, err := c.fs.Stat(path)
	if err != nil {
		return false, err
	}
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return false, err
	}

	patched, replaced := manifest.Patch(string(data), name)
	if err := afero.WriteFile(c.fs, path, []byte(patched), info.Mode().Perm()); err != nil {
		return false, err
	}
	return replaced, nil
}

// inside reports whether target is dir itself or lies below it.
func inside(target, dir string) bool {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absTarget)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
