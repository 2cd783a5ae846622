package recordstore

import (
	"context"

	"github.com/samber/lo"
)

// Collection is a list of records stored as one JSON array under one key,
// newest first.
type Collection[T any] struct {
	store *Store
	key   string
	id    func(T) string
}

// NewCollection binds a collection to name inside s. id extracts the record
// identity used by RemoveByID and Find.
func NewCollection[T any](s *Store, name string, id func(T) string) *Collection[T] {
	return &Collection[T]{store: s, key: s.Key(name), id: id}
}

func (c *Collection[T]) Key() string { return c.key }

// Load returns the stored records. A missing or malformed value yields an
// empty slice; the error is reserved for an unreachable backend.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	var items []T
	ok, err := c.store.getJSON(ctx, c.key, &items)
	if err != nil || !ok {
		return []T{}, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save overwrites the whole collection in a single write.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.store.setJSON(ctx, c.key, items)
}

// AppendFront prepends item. A malformed stored list is replaced.
func (c *Collection[T]) AppendFront(ctx context.Context, item T) error {
	defer c.store.locks.lock(c.key)()

	items, err := c.Load(ctx)
	if err != nil {
		return err
	}
	return c.Save(ctx, append([]T{item}, items...))
}

// RemoveByID drops every record with the given id. An absent id leaves the
// stored value untouched.
func (c *Collection[T]) RemoveByID(ctx context.Context, id string) error {
	defer c.store.locks.lock(c.key)()

	items, err := c.Load(ctx)
	if err != nil {
		return err
	}
	kept := lo.Filter(items, func(item T, _ int) bool { return c.id(item) != id })
	if len(kept) == len(items) {
		return nil
	}
	return c.Save(ctx, kept)
}

func (c *Collection[T]) Find(ctx context.Context, id string) (T, bool, error) {
	var zero T
	items, err := c.Load(ctx)
	if err != nil {
		return zero, false, err
	}
	item, ok := lo.Find(items, func(item T) bool { return c.id(item) == id })
	return item, ok, nil
}
