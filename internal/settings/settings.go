// Package settings persists small user preferences across runs, most
// importantly the granted import folder.
package settings

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

type fileData struct {
	ImportDir string `yaml:"import_dir"`
}

// Settings is a tiny key-value store backed by a YAML file.
type Settings struct {
	path string
	data fileData
}

// DefaultPath returns the settings file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", eris.Wrap(err, "settings: resolve user config dir")
	}
	return filepath.Join(dir, "roster-cli", "settings.yaml"), nil
}

// Open loads settings from path. A missing file yields empty settings.
func Open(path string) (*Settings, error) {
	s := &Settings{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "settings: read %s", path)
	}

	if err := yaml.Unmarshal(data, &s.data); err != nil {
		return nil, eris.Wrapf(err, "settings: parse %s", path)
	}
	return s, nil
}

// GrantedDir returns the remembered import folder, or "" when never granted.
func (s *Settings) GrantedDir() string {
	return s.data.ImportDir
}

// SetGrantedDir remembers the import folder and writes the file.
func (s *Settings) SetGrantedDir(dir string) error {
	s.data.ImportDir = dir

	out, err := yaml.Marshal(&s.data)
	if err != nil {
		return eris.Wrap(err, "settings: marshal")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return eris.Wrapf(err, "settings: mkdir %s", filepath.Dir(s.path))
	}
	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return eris.Wrapf(err, "settings: write %s", s.path)
	}
	return nil
}
