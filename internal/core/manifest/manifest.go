// Package manifest holds the static Cargo.toml and .cargo/config.toml templates
// and the name substitution applied to them.
package manifest

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"github.com/nightconcept/cargo-create/internal/core/project"
)

const (
	// FileName is the manifest written at the project root.
	FileName = "Cargo.toml"
	// ConfigDir and ConfigFileName locate the build-config file.
	ConfigDir      = ".cargo"
	ConfigFileName = "config.toml"

	// Placeholder is replaced with the project name.
	Placeholder = "[NAME]"

	// MinimalLines is how many template lines survive when optimisations are
	// disabled, and NameLine is the index of the `name = ...` line among them.
	// Both depend on the layout of templates/cargo.toml.tmpl.
	MinimalLines = 6
	NameLine     = 1
)

//go:embed templates/cargo.toml.tmpl
var cargoTemplate string

//go:embed templates/config.toml.tmpl
var buildConfig []byte

// Template returns the full manifest template, placeholder included.
func Template() string {
	return cargoTemplate
}

// BuildConfig returns the .cargo/config.toml contents.
func BuildConfig() []byte {
	out := make([]byte, len(buildConfig))
	copy(out, buildConfig)
	return out
}

// Render produces the manifest for a default project.
// With opt the first placeholder is substituted in the full template.
// Without it only the first MinimalLines lines are kept, so the profile
// sections are left out entirely.
func Render(name string, opt bool) string {
	if opt {
		return strings.Replace(cargoTemplate, Placeholder, name, 1)
	}

	lines := strings.Split(cargoTemplate, "\n")
	if len(lines) > MinimalLines {
		lines = lines[:MinimalLines]
	}
	lines[NameLine] = fmt.Sprintf(`name = "%s"`, name)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Patch replaces the first placeholder in content with name. replaced is
// false when content had no placeholder, in which case it is returned as is.
func Patch(content, name string) (patched string, replaced bool) {
	if !strings.Contains(content, Placeholder) {
		return content, false
	}
	return strings.Replace(content, Placeholder, name, 1), true
}

// Inspect decodes the manifest found in dir.
func Inspect(fsys afero.Fs, dir string) (*project.Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	m := project.NewManifest()
	if _, err := toml.Decode(string(data), m); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return m, nil
}
