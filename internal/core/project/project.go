package project

// Manifest is the subset of Cargo.toml that cargo-create reads back.
type Manifest struct {
	Package      *PackageInfo   `toml:"package"`
	Dependencies map[string]any `toml:"dependencies,omitempty"`
	Profile      map[string]any `toml:"profile,omitempty"`
}

// PackageInfo holds the [package] table.
type PackageInfo struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition,omitempty"`
}

// NewManifest creates a Manifest with an initialized Package so callers
// can read Package.Name even when the [package] table is absent.
func NewManifest() *Manifest {
	return &Manifest{
		Package: &PackageInfo{},
	}
}

// Name returns the package name, or "" when there is none.
func (m *Manifest) Name() string {
	if m == nil || m.Package == nil {
		return ""
	}
	return m.Package.Name
}
