package theme

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	nudleerrors "github.com/alexisbeaulieu97/nudle/pkg/errors"
)

const storeVersion = "1.0"

// storeFile is the on-disk layout of the theme preference.
type storeFile struct {
	Version   string    `yaml:"version"`
	Theme     Value     `yaml:"theme"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// FileStore persists the theme preference as a small YAML document.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path. The file is not touched until
// Load or Save is called.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored preference. ok is false when nothing has been stored yet.
func (s *FileStore) Load() (v Value, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Light, false, nil
		}
		return Light, false, nudleerrors.NewStoreError("load", s.path, err)
	}

	var file storeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Light, false, nudleerrors.NewStoreError("load", s.path, err)
	}

	return file.Theme, true, nil
}

// Save writes the preference atomically.
func (s *FileStore) Save(v Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nudleerrors.NewStoreError("save", s.path, err)
	}

	data, err := yaml.Marshal(storeFile{
		Version:   storeVersion,
		Theme:     v,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nudleerrors.NewStoreError("save", s.path, err)
	}

	// Write to temporary file first
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return nudleerrors.NewStoreError("save", s.path, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return nudleerrors.NewStoreError("save", s.path, err)
	}

	return nil
}
