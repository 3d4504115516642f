package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// FileStorage persists items as a JSON object at an afs URL, while serving
// reads from memory. It is a lightweight way to survive process restarts in CLI
// or single-host use.
type FileStorage struct {
	mu    sync.RWMutex
	URL   string
	fs    afs.Service
	items map[string]string
}

// NewFileStorage creates a Storage persisted at location, a plain path or any afs URL
// (file://, mem://, ...). Existing items are loaded once.
func NewFileStorage(ctx context.Context, location string) (*FileStorage, error) {
	ret := &FileStorage{
		URL:   url.Normalize(location, file.Scheme),
		fs:    afs.New(),
		items: map[string]string{},
	}
	if err := ret.load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load storage %v: %w", ret.URL, err)
	}
	return ret, nil
}

func (f *FileStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	value, ok := f.items[key]
	return value, ok, nil
}

func (f *FileStorage) SetItem(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, had := f.items[key]
	f.items[key] = value
	if err := f.save(ctx); err != nil {
		if had {
			f.items[key] = prev
		} else {
			delete(f.items, key)
		}
		return err
	}
	return nil
}

func (f *FileStorage) RemoveItem(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, had := f.items[key]
	if !had {
		return nil
	}
	delete(f.items, key)
	if err := f.save(ctx); err != nil {
		f.items[key] = prev
		return err
	}
	return nil
}

// Keys returns the stored keys.
func (f *FileStorage) Keys() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	ret := make([]string, 0, len(f.items))
	for k := range f.items {
		ret = append(ret, k)
	}
	return ret
}

// ---- persistence ----

func (f *FileStorage) save(ctx context.Context) error {
	data, err := json.MarshalIndent(f.items, "", "  ")
	if err != nil {
		return err
	}
	if err = f.fs.Upload(ctx, f.URL, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write storage %v: %w", f.URL, err)
	}
	return nil
}

func (f *FileStorage) load(ctx context.Context) error {
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	items := map[string]string{}
	if err = json.Unmarshal(data, &items); err != nil {
		return err
	}
	f.items = items
	return nil
}
