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
)

// Manager centralizes where the log lives on disk and how it is rewritten.
type Manager struct {
	path string
}

// NewManager constructs a Manager for the log file at path. If path is empty,
// it falls back to ~/.ttrk.json (see ResolveLogPath).
func NewManager(path string) (*Manager, error) {
	resolved, err := ResolveLogPath(path)
	if err != nil {
		return nil, fmt.Errorf("find home directory: %w", err)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return nil, err
	}

	return &Manager{path: abs}, nil
}

// Path returns the absolute path of the log file.
func (m *Manager) Path() string {
	return m.path
}

// EnsureLogFile creates the log file, and its directory, when missing. It
// reports whether the file had to be created.
func (m *Manager) EnsureLogFile() (bool, error) {
	if m == nil {
		return false, errors.New("files.Manager is nil")
	}

	if err := os.MkdirAll(filepath.Dir(m.path), dirPermissions); err != nil {
		return false, fmt.Errorf("create directories: %w", err)
	}

	file, err := os.OpenFile(m.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePermissions)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create log file at %s: %w", m.path, err)
	}
	if err := file.Close(); err != nil {
		return false, fmt.Errorf("create log file at %s: %w", m.path, err)
	}
	return true, nil
}

// Read returns the raw contents of the log file.
func (m *Manager) Read() ([]byte, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf("read log file at %s: %w", m.path, err)
	}
	return data, nil
}

// Write replaces the whole log file with data. The content goes to a temp
// file in the same directory first and is renamed over the original, which
// keeps its permissions.
func (m *Manager) Write(data []byte) error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".ttrk-*")
	if err != nil {
		return fmt.Errorf("write log file at %s: %w", m.path, err)
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return fmt.Errorf("write log file at %s: %w", m.path, err)
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(m.path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), m.path)
}
