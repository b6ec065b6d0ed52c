package preference

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	playgrounderrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

const fileVersion = "1.0"

// KV is a durable string key-value store.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// File is the on-disk document written by FileStore.
type File struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore persists preferences in a single JSON document. Every mutation
// is written through to disk atomically.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	version string
	values  map[string]string
}

// NewFileStore creates a FileStore and loads it from disk. A missing file
// yields an empty store; the directory is created on demand.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		version: fileVersion,
		values:  make(map[string]string),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, playgrounderrors.NewStoreError("create directory", filepath.Dir(path), err)
	}

	if err := s.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return s, nil
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the document from disk, replacing in-memory values.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return playgrounderrors.NewStoreError("load", s.path, err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return playgrounderrors.NewStoreError("load", s.path, fmt.Errorf("parse preferences: %w", err))
	}

	s.version = file.Version
	if s.version == "" {
		s.version = fileVersion
	}
	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// Get returns the stored value for key.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value under key and writes the document.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.saveLocked(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Delete removes key and writes the document. Deleting a missing key is a no-op.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	if !existed {
		return nil
	}
	delete(s.values, key)
	if err := s.saveLocked(); err != nil {
		s.values[key] = previous
		return err
	}
	return nil
}

func (s *FileStore) saveLocked() error {
	file := File{
		Version: s.version,
		Values:  s.values,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return playgrounderrors.NewStoreError("save", s.path, fmt.Errorf("marshal preferences: %w", err))
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return playgrounderrors.NewStoreError("save", s.path, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return playgrounderrors.NewStoreError("save", s.path, err)
	}

	return nil
}

// MemoryStore keeps preferences for the lifetime of the process only.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value for key.
func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value under key.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Delete removes key.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

var (
	_ KV = (*FileStore)(nil)
	_ KV = (*MemoryStore)(nil)
)
