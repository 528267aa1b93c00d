package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	configFileName = "config.yaml"
)

// Manager centralizes where kamus looks for its own files and how user
// supplied paths are resolved.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.kamus (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the kamus home directory.
func (m *Manager) BasePath() string {
	return m.basePath
}

// ConfigPath is the default location of the YAML config file. It may not exist.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.basePath, configFileName)
}

// Resolve expands ~ and makes path absolute relative to the working directory.
func (m *Manager) Resolve(path string) (string, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

// OpenLog opens path for appending, creating parent directories as needed.
// Relative paths are placed under the base path.
func (m *Manager) OpenLog(path string) (*os.File, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}

	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(m.basePath, expanded)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), dirPermissions); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}

	file, err := os.OpenFile(expanded, os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePermissions)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
