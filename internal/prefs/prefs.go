// Package prefs stores small user preferences (currently only the theme
// token) as a flat key/value document.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Josepavese/folio/internal/pkg/sysutil"
)

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("prefs: key not found")

// FileStorage keeps preferences in a YAML map on disk. Every Save rewrites
// the file atomically; every Load re-reads it so that a second session sees
// values written by the first.
type FileStorage struct {
	path string
	mu   sync.Mutex
}

// NewFileStorage returns a storage backed by path. The file is created on
// the first Save.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the backing file.
func (f *FileStorage) Path() string {
	return f.path
}

// Load returns the value stored under key.
func (f *FileStorage) Load(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return "", err
	}
	v, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Save stores value under key, keeping every other key intact.
func (f *FileStorage) Save(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		// A corrupt file must not block the write; start over.
		values = map[string]string{}
	}
	values[key] = value

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := sysutil.WriteFileAtomic(f.path, data, 0644); err != nil {
		return fmt.Errorf("write prefs %s: %w", f.path, err)
	}
	return nil
}

func (f *FileStorage) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs %s: %w", f.path, err)
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode prefs %s: %w", f.path, err)
	}
	return values, nil
}

// MemoryStorage is a session-only storage.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage returns an empty in-memory storage. The zero value is
// also ready to use.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: map[string]string{}}
}

// Load returns the value stored under key.
func (m *MemoryStorage) Load(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Save stores value under key.
func (m *MemoryStorage) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}
