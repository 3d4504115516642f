package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Persisted is a value of type T kept in write-through sync with a Storage key.
type Persisted[T any] struct {
	mu        sync.RWMutex
	key       string
	storage   Storage
	value     T
	nextID    int
	observers map[int]func(T)
}

// New creates a persisted value under key. A value already stored under key wins over
// initial; either way the current value is written back before New returns.
func New[T any](ctx context.Context, storage Storage, key string, initial T) (*Persisted[T], error) {
	ret := &Persisted[T]{
		key:       key,
		storage:   storage,
		value:     initial,
		observers: map[int]func(T){},
	}
	text, ok, err := storage.GetItem(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", key, err)
	}
	if ok {
		var restored T
		if err = json.Unmarshal([]byte(text), &restored); err != nil {
			return nil, fmt.Errorf("failed to decode %v: %w", key, err)
		}
		ret.value = restored
	}
	if err = ret.write(ctx, ret.value); err != nil {
		return nil, err
	}
	return ret, nil
}

// Key returns the storage key.
func (p *Persisted[T]) Key() string {
	return p.key
}

// Get returns the latest in-memory value.
func (p *Persisted[T]) Get() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// Set stores value; on a storage error the in-memory value is left unchanged.
func (p *Persisted[T]) Set(ctx context.Context, value T) error {
	p.mu.Lock()
	if err := p.write(ctx, value); err != nil {
		p.mu.Unlock()
		return err
	}
	p.value = value
	observers := p.snapshotObservers()
	p.mu.Unlock()
	notify(observers, value)
	return nil
}

// Update applies fn to the current value and stores the result.
// fn runs under the store lock and must not call back into p.
func (p *Persisted[T]) Update(ctx context.Context, fn func(T) T) error {
	p.mu.Lock()
	value := fn(p.value)
	if err := p.write(ctx, value); err != nil {
		p.mu.Unlock()
		return err
	}
	p.value = value
	observers := p.snapshotObservers()
	p.mu.Unlock()
	notify(observers, value)
	return nil
}

// Subscribe calls fn with the current value and after every successful mutation.
// The returned func removes the subscription.
func (p *Persisted[T]) Subscribe(fn func(T)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.observers[id] = fn
	value := p.value
	p.mu.Unlock()
	fn(value)
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.observers, id)
	}
}

func (p *Persisted[T]) write(ctx context.Context, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %v: %w", p.key, err)
	}
	if err = p.storage.SetItem(ctx, p.key, string(data)); err != nil {
		return fmt.Errorf("failed to persist %v: %w", p.key, err)
	}
	return nil
}

func (p *Persisted[T]) snapshotObservers() []func(T) {
	ret := make([]func(T), 0, len(p.observers))
	for _, fn := range p.observers {
		ret = append(ret, fn)
	}
	return ret
}

func notify[T any](observers []func(T), value T) {
	for _, fn := range observers {
		fn(value)
	}
}
