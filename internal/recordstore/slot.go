package recordstore

import (
	"context"
	"fmt"
)

// Slot is a single JSON object under one key, or nothing.
type Slot[T any] struct {
	store *Store
	key   string
}

func NewSlot[T any](s *Store, name string) *Slot[T] {
	return &Slot[T]{store: s, key: s.Key(name)}
}

func (sl *Slot[T]) Key() string { return sl.key }

// Get reports false for a missing or malformed value.
func (sl *Slot[T]) Get(ctx context.Context) (T, bool, error) {
	var v T
	ok, err := sl.store.getJSON(ctx, sl.key, &v)
	if err != nil || !ok {
		var zero T
		return zero, false, err
	}
	return v, true, nil
}

func (sl *Slot[T]) Put(ctx context.Context, v T) error {
	defer sl.store.locks.lock(sl.key)()
	return sl.store.setJSON(ctx, sl.key, v)
}

func (sl *Slot[T]) Delete(ctx context.Context) error {
	defer sl.store.locks.lock(sl.key)()
	return sl.store.delete(ctx, sl.key)
}

// Take reads and clears the slot in one locked step. A malformed value is
// cleared as well and reported as absent.
func (sl *Slot[T]) Take(ctx context.Context) (T, bool, error) {
	defer sl.store.locks.lock(sl.key)()

	v, ok, err := sl.Get(ctx)
	if err != nil {
		return v, false, err
	}
	if err := sl.store.delete(ctx, sl.key); err != nil {
		return v, false, err
	}
	return v, ok, nil
}

// TextSlot is a plain string value under one key.
type TextSlot struct {
	store *Store
	key   string
}

func NewTextSlot(s *Store, name string) *TextSlot {
	return &TextSlot{store: s, key: s.Key(name)}
}

func (t *TextSlot) Key() string { return t.key }

func (t *TextSlot) Get(ctx context.Context) (string, bool, error) {
	v, found, err := t.store.port.Get(ctx, t.key)
	if err != nil {
		return "", false, fmt.Errorf("recordstore: get %s: %w", t.key, err)
	}
	return v, found, nil
}

func (t *TextSlot) Put(ctx context.Context, v string) error {
	defer t.store.locks.lock(t.key)()
	if err := t.store.port.Set(ctx, t.key, v); err != nil {
		return fmt.Errorf("recordstore: set %s: %w", t.key, err)
	}
	return nil
}

func (t *TextSlot) Delete(ctx context.Context) error {
	defer t.store.locks.lock(t.key)()
	return t.store.delete(ctx, t.key)
}

// Take returns the value and clears the slot, so a handoff is consumed once.
func (t *TextSlot) Take(ctx context.Context) (string, bool, error) {
	defer t.store.locks.lock(t.key)()

	v, found, err := t.Get(ctx)
	if err != nil || !found {
		return "", false, err
	}
	if err := t.store.delete(ctx, t.key); err != nil {
		return "", false, err
	}
	return v, true, nil
}
