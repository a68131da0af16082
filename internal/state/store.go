// Package state remembers the picker selections made for each root path
// between runs.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dirscope/pkg/logger"
	"dirscope/pkg/models"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// ErrLocked is returned when another process holds the store lock
var ErrLocked = errors.New("selection store is locked by another process")

// Store loads and saves selections per root path
type Store interface {
	Load(rootPath string) (models.Selection, error)
	Save(rootPath string, selection models.Selection) error
}

// FileStore keeps every selection in one YAML file keyed by absolute root
// path. Access is guarded by a sibling ".lock" file.
type FileStore struct {
	path string
}

type storeFile struct {
	Roots map[string]models.Selection `yaml:"roots"`
}

// NewFileStore creates a store backed by path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the selection saved for rootPath, or an empty selection
func (s *FileStore) Load(rootPath string) (models.Selection, error) {
	lock := flock.New(s.path + ".lock")
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return models.Selection{}, fmt.Errorf("failed to create state directory: %w", err)
	}

	locked, err := lock.TryRLock()
	if err != nil {
		return models.Selection{}, fmt.Errorf("failed to lock selection store: %w", err)
	}
	if !locked {
		return models.Selection{}, ErrLocked
	}
	defer lock.Unlock()

	file, err := s.read()
	if err != nil {
		return models.Selection{}, err
	}

	return file.Roots[rootKey(rootPath)], nil
}

// Save replaces the selection stored for rootPath. An empty selection
// removes the entry.
func (s *FileStore) Save(rootPath string, selection models.Selection) error {
	lock := flock.New(s.path + ".lock")
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock selection store: %w", err)
	}
	if !locked {
		return ErrLocked
	}
	defer lock.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}

	key := rootKey(rootPath)
	if selection.IsEmpty() {
		delete(file.Roots, key)
	} else {
		file.Roots[key] = selection
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to encode selections: %w", err)
	}

	if err := atomicWrite(s.path, data); err != nil {
		return err
	}

	logger.Logger.WithFields(map[string]interface{}{
		"root":  key,
		"store": s.path,
	}).Debug("Selection saved")

	return nil
}

func (s *FileStore) read() (*storeFile, error) {
	file := &storeFile{Roots: make(map[string]models.Selection)}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return file, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read selection store: %w", err)
	}

	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse selection store: %w", err)
	}
	if file.Roots == nil {
		file.Roots = make(map[string]models.Selection)
	}

	return file, nil
}

func rootKey(rootPath string) string {
	if abs, err := filepath.Abs(rootPath); err == nil {
		return abs
	}
	return filepath.Clean(rootPath)
}

// atomicWrite writes data to a temp file next to path and renames it over
// path, so readers never see a partial file.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	tempFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	tempFile = nil
	return nil
}
