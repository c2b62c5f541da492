// Package store provides the durable key/value configuration of a generated
// project. Values are held in memory until Flush writes the whole document.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/ngfs/internal/defs"
)

// Sentinel errors for store operations.
var (
	// ErrPersistence indicates the document could not be written durably.
	ErrPersistence = errors.New("store: persistence failure")

	// ErrInvalidDocument indicates the stored document could not be parsed.
	ErrInvalidDocument = errors.New("store: invalid configuration document")
)

// Reader is the read side of a configuration store.
type Reader interface {
	// Get returns the value stored under key. The second result is false
	// when the key is absent; absence is never an error.
	Get(key string) (any, bool)
}

// Store is a key/value configuration with explicit persist-on-demand semantics.
type Store interface {
	Reader

	// Set records a value in memory. Nothing is written until Flush.
	Set(key string, value any)

	// Delete removes a key from memory.
	Delete(key string)

	// Keys returns all keys, sorted.
	Keys() []string

	// Flush writes every in-memory key durably. Flushing twice without
	// intervening changes yields the same document.
	Flush() error
}

// FileStore is a Store backed by a single YAML document.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]any
}

// Open loads the configuration document of the project at root.
// A missing document yields an empty store.
func Open(root string) (*FileStore, error) {
	return OpenFile(filepath.Join(filepath.Clean(root), defs.ConfigFile))
}

// OpenFile loads the configuration document at path.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: map[string]any{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
	}
	if s.values == nil {
		s.values = map[string]any{}
	}
	return s, nil
}

// NewMemory returns a store that is never written to disk. Flush is a no-op.
func NewMemory() *FileStore {
	return &FileStore{values: map[string]any{}}
}

// Path returns the document location, empty for memory stores.
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set records a value in memory.
func (s *FileStore) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Delete removes a key from memory.
func (s *FileStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Keys returns all keys, sorted.
func (s *FileStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Flush writes the whole document atomically using temp file + os.Rename.
func (s *FileStore) Flush() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.path == "" {
		return nil
	}

	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPersistence, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), defs.DirPerm); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrPersistence, err)
	}
	if err := atomicWrite(s.path, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".ngfs-rc-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, defs.FilePerm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
