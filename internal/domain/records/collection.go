package records

import (
	"context"
	"strings"
)

// DayLayout is the format of day stamps and per-day keys.
const DayLayout = "2006-01-02"

// CollectionSpec describes one ordered per-domain collection.
type CollectionSpec[T any] struct {
	Domain   Domain
	ID       func(T) string
	Defaults func() []T
	Reset    *DailyReset[T]
}

// Collection is a typed view over one namespaced key. Every mutation loads
// the whole list, applies the change and writes the whole list back while
// holding the key lock.
type Collection[T any] struct {
	repo *Repository
	ns   Namespace
	spec CollectionSpec[T]
}

func Open[T any](repo *Repository, ns Namespace, spec CollectionSpec[T]) *Collection[T] {
	return &Collection[T]{repo: repo, ns: ns, spec: spec}
}

func (c *Collection[T]) Key() string {
	return c.ns.Key(c.spec.Domain)
}

// Load returns the stored list, or the domain defaults when nothing was
// stored yet. Defaults are not persisted until the first mutation.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	unlock := c.repo.lock(c.Key())
	defer unlock()
	return c.load(ctx)
}

// Save replaces the whole collection.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	unlock := c.repo.lock(c.Key())
	defer unlock()
	return c.save(ctx, items)
}

// Mutate applies fn to the current list and persists its result.
func (c *Collection[T]) Mutate(ctx context.Context, fn func([]T) ([]T, error)) ([]T, error) {
	unlock := c.repo.lock(c.Key())
	defer unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	next, err := fn(items)
	if err != nil {
		return nil, err
	}
	if err := c.save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Prepend inserts item at the front (newest first).
func (c *Collection[T]) Prepend(ctx context.Context, item T) error {
	return c.insert(ctx, item, true)
}

// Append inserts item at the back (insertion order).
func (c *Collection[T]) Append(ctx context.Context, item T) error {
	return c.insert(ctx, item, false)
}

func (c *Collection[T]) insert(ctx context.Context, item T, front bool) error {
	id := c.spec.ID(item)
	if strings.TrimSpace(id) == "" {
		return ErrMissingRecord
	}

	_, err := c.Mutate(ctx, func(items []T) ([]T, error) {
		if indexOf(items, id, c.spec.ID) >= 0 {
			return nil, ErrDuplicateID
		}
		if front {
			return append([]T{item}, items...), nil
		}
		return append(items, item), nil
	})
	return err
}

// Update replaces the record with the given id by fn's result.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(T) (T, error)) (T, error) {
	var updated T
	_, err := c.Mutate(ctx, func(items []T) ([]T, error) {
		idx := indexOf(items, id, c.spec.ID)
		if idx < 0 {
			return nil, ErrNotFound
		}
		next, err := fn(items[idx])
		if err != nil {
			return nil, err
		}
		if c.spec.ID(next) != id {
			return nil, ErrMissingRecord
		}
		out := make([]T, len(items))
		copy(out, items)
		out[idx] = next
		updated = next
		return out, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

// Delete removes the record with the given id. Removing an id that is not
// present is not an error; the result reports whether anything changed.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	unlock := c.repo.lock(c.Key())
	defer unlock()

	items, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	idx := indexOf(items, id, c.spec.ID)
	if idx < 0 {
		return false, nil
	}

	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	out = append(out, items[idx+1:]...)
	if err := c.save(ctx, out); err != nil {
		return false, err
	}
	return true, nil
}

// Find returns the record with the given id.
func (c *Collection[T]) Find(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := c.Load(ctx)
	if err != nil {
		return zero, err
	}
	idx := indexOf(items, id, c.spec.ID)
	if idx < 0 {
		return zero, ErrNotFound
	}
	return items[idx], nil
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	var items []T
	found, err := c.repo.getJSON(ctx, c.Key(), &items)
	if err != nil {
		return nil, err
	}
	if !found {
		// start the day stamp together with the defaults
		if _, err := c.dailyReset(ctx, nil); err != nil {
			return nil, err
		}
		return c.defaults(), nil
	}
	if items == nil {
		items = []T{}
	}
	return c.dailyReset(ctx, items)
}

// dailyReset stores the cleared list first and only then moves the stamp,
// so a failed save is retried on the next load.
func (c *Collection[T]) dailyReset(ctx context.Context, items []T) ([]T, error) {
	if c.spec.Reset == nil {
		return items, nil
	}
	stale, cleared, err := c.spec.Reset.pending(ctx, c.repo, c.ns, items)
	if err != nil || !stale {
		return items, err
	}
	if cleared != nil {
		if err := c.save(ctx, cleared); err != nil {
			return nil, err
		}
		items = cleared
	}
	if err := c.spec.Reset.stamp(ctx, c.repo, c.ns); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.repo.putJSON(ctx, c.Key(), items)
}

func (c *Collection[T]) defaults() []T {
	if c.spec.Defaults == nil {
		return []T{}
	}
	return c.spec.Defaults()
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}
