package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultLevel is the level loaded when no name is given
const DefaultLevel = "default"

// Loader loads level configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadLevel loads levels/<name>.yaml and validates it
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	if name == "" {
		name = DefaultLevel
	}
	path := "levels/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", name, err)
	}
	return cfg, nil
}

// Path returns the on-disk path of a level, for watching
func (l *Loader) Path(name string) string {
	if name == "" {
		name = DefaultLevel
	}
	return filepath.Join(l.basePath, "levels", name+".yaml")
}

// LoadFile loads and validates a level from an arbitrary file path
func LoadFile(path string) (*LevelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes level YAML and validates the result
func Parse(data []byte) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
