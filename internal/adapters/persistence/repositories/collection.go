package repositories

import (
	"context"
	"sync"

	"rentmate/internal/adapters/persistence/store"
	"rentmate/internal/core/domain"
)

// record is any entity stored in a JSON collection
type record interface {
	GetID() string
}

// jsonCollection is the read-modify-write cycle shared by every repository:
// load the whole collection, change it in memory, save the whole collection.
// The mutex keeps one writer per collection inside the process.
type jsonCollection[T record] struct {
	mu    sync.Mutex
	store *store.DocumentStore
	name  domain.Collection
}

func newJSONCollection[T record](s *store.DocumentStore, name domain.Collection) *jsonCollection[T] {
	return &jsonCollection[T]{store: s, name: name}
}

// load returns the stored items, or an empty slice when the collection is absent
func (c *jsonCollection[T]) load(ctx context.Context) []T {
	var items []T
	if !c.store.Load(ctx, c.name, &items) || items == nil {
		return []T{}
	}
	return items
}

func (c *jsonCollection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.store.Save(ctx, c.name, items)
}

// List returns the whole collection
func (c *jsonCollection[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.load(ctx), nil
}

// Filter returns the items matching keep, in stored order
func (c *jsonCollection[T]) Filter(ctx context.Context, keep func(*T) bool) ([]T, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out, nil
}

// First returns the first item matching match, or domain.ErrNotFound
func (c *jsonCollection[T]) First(ctx context.Context, match func(*T) bool) (*T, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if match(&items[i]) {
			return &items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByID returns the item with id, or domain.ErrNotFound
func (c *jsonCollection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return c.First(ctx, func(item *T) bool { return (*item).GetID() == id })
}

// Append adds item at the end and saves the collection
func (c *jsonCollection[T]) Append(ctx context.Context, item T) error {
	_, err := c.AppendUnless(ctx, item, nil)
	return err
}

// AppendUnless adds item at the end unless clash matches a stored item.
// The check and the write happen under one lock. It reports whether item
// was added; nothing is written on a clash.
func (c *jsonCollection[T]) AppendUnless(ctx context.Context, item T, clash func(*T) bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load(ctx)
	if clash != nil {
		for i := range items {
			if clash(&items[i]) {
				return false, nil
			}
		}
	}
	items = append(items, item)
	if err := c.save(ctx, items); err != nil {
		return false, err
	}
	return true, nil
}

// Remove drops every item with id and saves the collection.
// Nothing is written when no item matches.
func (c *jsonCollection[T]) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load(ctx)
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if item.GetID() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return c.save(ctx, kept)
}

// Update applies mutate to the first item with id and saves the collection.
// On a miss it returns domain.ErrNotFound; if mutate fails its error is
// returned. Neither case writes anything.
func (c *jsonCollection[T]) Update(ctx context.Context, id string, mutate func(*T) error) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	items := c.load(ctx)
	for i := range items {
		if items[i].GetID() != id {
			continue
		}
		if err := mutate(&items[i]); err != nil {
			return nil, err
		}
		if err := c.save(ctx, items); err != nil {
			return nil, err
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, domain.ErrNotFound
}

// ReplaceAll overwrites the collection with items
func (c *jsonCollection[T]) ReplaceAll(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.save(ctx, items)
}
