package records

import "context"

// ValueSpec describes a per-user singleton document.
type ValueSpec[T any] struct {
	Domain  Domain
	Default func() T
}

type Value[T any] struct {
	repo *Repository
	key  string
	def  func() T
}

func OpenValue[T any](repo *Repository, ns Namespace, spec ValueSpec[T]) *Value[T] {
	return &Value[T]{repo: repo, key: ns.Key(spec.Domain), def: spec.Default}
}

// OpenValueAt opens a singleton stored under a fixed, unprefixed key.
func OpenValueAt[T any](repo *Repository, key string, def func() T) *Value[T] {
	return &Value[T]{repo: repo, key: key, def: def}
}

func (v *Value[T]) Key() string {
	return v.key
}

// Get returns the stored value or the default.
func (v *Value[T]) Get(ctx context.Context) (T, error) {
	value, _, err := v.Lookup(ctx)
	return value, err
}

// Lookup is Get that also reports whether a document existed.
func (v *Value[T]) Lookup(ctx context.Context) (T, bool, error) {
	unlock := v.repo.lock(v.key)
	defer unlock()
	return v.get(ctx)
}

func (v *Value[T]) Set(ctx context.Context, value T) error {
	unlock := v.repo.lock(v.key)
	defer unlock()
	return v.repo.putJSON(ctx, v.key, value)
}

func (v *Value[T]) Mutate(ctx context.Context, fn func(T) (T, error)) (T, error) {
	unlock := v.repo.lock(v.key)
	defer unlock()

	var zero T
	current, _, err := v.get(ctx)
	if err != nil {
		return zero, err
	}
	next, err := fn(current)
	if err != nil {
		return zero, err
	}
	if err := v.repo.putJSON(ctx, v.key, next); err != nil {
		return zero, err
	}
	return next, nil
}

func (v *Value[T]) Delete(ctx context.Context) error {
	unlock := v.repo.lock(v.key)
	defer unlock()
	return v.repo.store.Delete(ctx, v.key)
}

func (v *Value[T]) get(ctx context.Context) (T, bool, error) {
	var value T
	found, err := v.repo.getJSON(ctx, v.key, &value)
	if err != nil {
		return value, false, err
	}
	if !found {
		if v.def != nil {
			return v.def(), false, nil
		}
		var zero T
		return zero, false, nil
	}
	return value, true, nil
}
