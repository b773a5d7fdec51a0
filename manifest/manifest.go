// Package manifest handles b93.toml runfiles: a declared batch of programs
// to interpret in order, with per-program settings.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents a b93.toml runfile.
type Manifest struct {
	Options  Options   `toml:"options"`
	Programs []Program `toml:"program"`

	// Dir is the directory containing the runfile (set at load time).
	// Relative program paths resolve against it.
	Dir string `toml:"-"`
}

// Options are settings shared by every program in the batch.
type Options struct {
	Trace bool `toml:"trace"`
}

// Program is one entry in the batch.
type Program struct {
	Path       string `toml:"path"`
	Extensions bool   `toml:"extensions"`
}

// Load parses a runfile from the given path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	m.Dir = filepath.Dir(path)

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid runfile %s: %w", path, err)
	}
	return &m, nil
}

// Validate checks the manifest for structural problems.
func (m *Manifest) Validate() error {
	if len(m.Programs) == 0 {
		return fmt.Errorf("no [[program]] entries")
	}
	for idx, p := range m.Programs {
		if p.Path == "" {
			return fmt.Errorf("program %d has no path", idx)
		}
	}
	return nil
}

// ResolvePath returns the program's path resolved against the runfile's
// directory. Absolute paths pass through unchanged.
func (m *Manifest) ResolvePath(p Program) string {
	if filepath.IsAbs(p.Path) || m.Dir == "" {
		return p.Path
	}
	return filepath.Join(m.Dir, p.Path)
}
