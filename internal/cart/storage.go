package cart

import (
	"os"
	"path/filepath"
)

// CartKey is the single durable key the cart is persisted under.
const CartKey = "restaurant-cart"

// Storage is the client-local key-value capability the engine persists
// through. Read returns (nil, nil) when the key is absent.
type Storage interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
	Delete(key string) error
}

// FileStore keeps each key as a JSON file in a directory, the durable
// storage of a CLI session.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Read(key string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *FileStore) Write(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o644)
}

func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryStore is an in-memory Storage for tests.
type MemoryStore struct {
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Read(key string) ([]byte, error) {
	return s.values[key], nil
}

func (s *MemoryStore) Write(key string, value []byte) error {
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}
