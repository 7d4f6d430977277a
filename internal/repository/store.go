package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is the host-local persistence boundary: one opaque blob per key,
// last write wins. It stands in for whatever key-value storage the host
// environment provides.
type Store interface {
	Read(key string) ([]byte, bool, error)
	Write(key string, value []byte) error
	Delete(key string) error
}

type fileStoreHandler struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &fileStoreHandler{dir: dir}, nil
}

func (h *fileStoreHandler) path(key string) string {
	return filepath.Join(h.dir, key+".json")
}

func (h *fileStoreHandler) Read(key string) ([]byte, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	value, err := os.ReadFile(h.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

func (h *fileStoreHandler) Write(key string, value []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.WriteFile(h.path(key), value, 0o644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (h *fileStoreHandler) Delete(key string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	err := os.Remove(h.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

type memoryStoreHandler struct {
	values map[string][]byte
	mu     sync.Mutex
}

// NewMemoryStore is the in-memory Store used by tests.
func NewMemoryStore() Store {
	return &memoryStoreHandler{values: map[string][]byte{}}
}

func (h *memoryStoreHandler) Read(key string) ([]byte, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	value, ok := h.values[key]
	return value, ok, nil
}

func (h *memoryStoreHandler) Write(key string, value []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.values[key] = value
	return nil
}

func (h *memoryStoreHandler) Delete(key string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.values, key)
	return nil
}
