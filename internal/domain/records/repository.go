package records

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Store is the key/value port every persistence adapter implements. Values
// are JSON documents; a missing key is reported with found=false, not an
// error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) (map[string][]byte, error)
	DeletePrefix(ctx context.Context, prefix string) (int, error)
}

// Repository serializes writers per key and owns the clock used for
// daily resets.
type Repository struct {
	store    Store
	now      func() time.Time
	location *time.Location
	locks    sync.Map
}

type Option func(*Repository)

func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		if now != nil {
			r.now = now
		}
	}
}

func WithLocation(loc *time.Location) Option {
	return func(r *Repository) {
		if loc != nil {
			r.location = loc
		}
	}
}

func NewRepository(store Store, opts ...Option) *Repository {
	repo := &Repository{
		store:    store,
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

func (r *Repository) Store() Store {
	return r.store
}

func (r *Repository) Now() time.Time {
	return r.now().In(r.location)
}

// Today is the current calendar date in the repository's location.
func (r *Repository) Today() string {
	return r.Now().Format(DayLayout)
}

func (r *Repository) lock(key string) func() {
	value, _ := r.locks.LoadOrStore(key, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Export returns every persisted document of the namespace keyed by domain.
func (r *Repository) Export(ctx context.Context, ns Namespace) (map[Domain]json.RawMessage, error) {
	raw, err := r.store.List(ctx, ns.Prefix())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", ns.Prefix(), err)
	}

	result := make(map[Domain]json.RawMessage, len(raw))
	for key, value := range raw {
		domain, ok := ns.DomainOf(key)
		if !ok {
			continue
		}
		result[domain] = json.RawMessage(value)
	}
	return result, nil
}

// Reset deletes every document of the namespace.
func (r *Repository) Reset(ctx context.Context, ns Namespace) (int, error) {
	deleted, err := r.store.DeletePrefix(ctx, ns.Prefix())
	if err != nil {
		return 0, fmt.Errorf("reset %s: %w", ns.Prefix(), err)
	}
	return deleted, nil
}

func (r *Repository) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *Repository) putJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.store.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
