package cart

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// StorageKey is the fixed key the cart persists under. The value is a JSON
// array of items in the `{productId, quantity, addedAt}` wire shape.
const StorageKey = "himalayan-sound-cart"

// ErrStorageKeyRequired indicates a storage call received an empty key.
var ErrStorageKeyRequired = errors.New("cart storage: key is required")

// Storage is the durable key-value mirror behind a cart store. It plays the
// role browser local storage plays for the storefront: synchronous, small,
// and allowed to fail without taking the cart down.
type Storage interface {
	// Read returns the stored value for key; found is false when the key
	// has never been written.
	Read(key string) (value []byte, found bool, err error)
	// Write replaces the stored value for key.
	Write(key string, value []byte) error
	// Delete removes the stored value for key; absent keys are a no-op.
	Delete(key string) error
}

// MemoryStorage is an in-process Storage used by tests and by callers that
// opt out of durability.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStorage constructs an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

// Read implements Storage.
func (s *MemoryStorage) Read(key string) ([]byte, bool, error) {
	if strings.TrimSpace(key) == "" {
		return nil, false, ErrStorageKeyRequired
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	dup := make([]byte, len(value))
	copy(dup, value)
	return dup, true, nil
}

// Write implements Storage.
func (s *MemoryStorage) Write(key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return ErrStorageKeyRequired
	}
	dup := make([]byte, len(value))
	copy(dup, value)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = dup
	return nil
}

// Delete implements Storage.
func (s *MemoryStorage) Delete(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrStorageKeyRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// FileStorage persists each key as a file under a base directory. Writes go
// through a temp file and rename so a crashed write never leaves a truncated
// value behind.
type FileStorage struct {
	dir string
	mu  sync.Mutex
}

// NewFileStorage constructs a FileStorage rooted at dir, creating it when
// absent.
func NewFileStorage(dir string) (*FileStorage, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("cart storage: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

// Read implements Storage.
func (s *FileStorage) Read(key string) ([]byte, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Write implements Storage.
func (s *FileStorage) Write(key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Delete implements Storage.
func (s *FileStorage) Delete(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *FileStorage) path(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrStorageKeyRequired
	}
	// Keys are fixed constants, but keep path traversal out anyway.
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		}
		return '_'
	}, key)
	return filepath.Join(s.dir, safe+".json"), nil
}
