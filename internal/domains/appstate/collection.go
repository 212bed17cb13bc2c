package appstate

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// WriteFunc persists the next value of a record. The local copy only changes when it returns nil.
type WriteFunc[T any] func(ctx context.Context, next T) error

// Collection is the in-memory copy of one persisted collection. Reads are concurrent,
// writes are serialized so a remote write and its local commit are never interleaved
// with another writer.
type Collection[T any] struct {
	name    string
	keyOf   func(T) string
	resolve func(T, time.Time) T
	clock   func() time.Time

	mu      sync.RWMutex
	writeMu sync.Mutex
	items   []T
}

func NewCollection[T any](name string, keyOf func(T) string, resolve func(T, time.Time) T, clock func() time.Time) *Collection[T] {
	return &Collection[T]{
		name:    name,
		keyOf:   keyOf,
		resolve: resolve,
		clock:   clock,
	}
}

func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) view(item T, now time.Time) T {
	if c.resolve == nil {
		return item
	}

	return c.resolve(item, now)
}

// All returns a resolved snapshot of every record.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.clock()
	snapshot := make([]T, len(c.items))

	for i, item := range c.items {
		snapshot[i] = c.view(item, now)
	}

	return snapshot
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

func (c *Collection[T]) Find(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(key)
	if idx < 0 {
		var zero T

		return zero, false
	}

	return c.view(c.items[idx], c.clock()), true
}

func (c *Collection[T]) indexOf(key string) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return c.keyOf(item) == key
	})
}

// Apply computes the next value of the record under key from its resolved view,
// persists it through write and commits it locally on success. On any error the
// previous value stays in place.
func (c *Collection[T]) Apply(ctx context.Context, key string, mutate func(current T) (T, error), write WriteFunc[T]) (T, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	var zero T

	current, ok := c.Find(key)
	if !ok {
		return zero, ErrNotFound
	}

	next, err := mutate(current)
	if err != nil {
		return zero, err
	}

	if err := write(ctx, next); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// the key itself may have changed, so commit at the old key's slot
	if idx := c.indexOf(key); idx >= 0 {
		c.items[idx] = next
	}

	return next, nil
}

// Insert persists a new record and appends it. Keys are unique within a collection.
func (c *Collection[T]) Insert(ctx context.Context, item T, write WriteFunc[T]) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if _, ok := c.Find(c.keyOf(item)); ok {
		return ErrDuplicate
	}

	if err := write(ctx, item); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)

	return nil
}

// Remove deletes the record remotely and then locally.
func (c *Collection[T]) Remove(ctx context.Context, key string, write WriteFunc[T]) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	current, ok := c.Find(key)
	if !ok {
		return ErrNotFound
	}

	if err := write(ctx, current); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexOf(key); idx >= 0 {
		c.items = slices.Delete(c.items, idx, idx+1)
	}

	return nil
}

// Replace swaps the whole collection, used while loading.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = slices.Clone(items)
}
