package store

import (
	"context"
	"sort"

	"github.com/viant/pybo/internal/collection"
)

// Storage is a pluggable durable key/value text storage.
// The in-memory default is fine for tests; use FileStorage to survive restarts.
type Storage interface {
	// GetItem returns the stored text and true, or false when the key is absent.
	GetItem(ctx context.Context, key string) (string, bool, error)
	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key; removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// Lister is implemented by storages that can enumerate their keys.
type Lister interface {
	Keys() []string
}

// Keys returns the sorted keys of storage, or nil when it cannot list them.
func Keys(storage Storage) []string {
	lister, ok := storage.(Lister)
	if !ok {
		return nil
	}
	ret := lister.Keys()
	sort.Strings(ret)
	return ret
}

type memoryStorage struct {
	items *collection.SyncMap[string, string]
}

func (m *memoryStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	value, ok := m.items.Get(key)
	return value, ok, nil
}

func (m *memoryStorage) SetItem(_ context.Context, key, value string) error {
	m.items.Put(key, value)
	return nil
}

func (m *memoryStorage) RemoveItem(_ context.Context, key string) error {
	m.items.Delete(key)
	return nil
}

func (m *memoryStorage) Keys() []string {
	ret := make([]string, 0, m.items.Len())
	m.items.Range(func(key, _ string) bool {
		ret = append(ret, key)
		return true
	})
	return ret
}

// NewMemoryStorage returns a process local Storage.
func NewMemoryStorage() Storage {
	return &memoryStorage{items: collection.NewSyncMap[string, string]()}
}
