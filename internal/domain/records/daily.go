package records

import "context"

// DailyReset clears the date-scoped fields of a collection once per calendar
// day. The day stamp lives under its own domain key.
type DailyReset[T any] struct {
	Stamp Domain
	Clear func(T) T
	// ClearWhenUnstamped clears even when no stamp was ever written.
	ClearWhenUnstamped bool
}

// pending reports whether the stamp lags behind today. cleared is the list
// to store before the stamp moves, or nil when items stay as they are.
func (d *DailyReset[T]) pending(ctx context.Context, repo *Repository, ns Namespace, items []T) (bool, []T, error) {
	var stamp string
	found, err := repo.getJSON(ctx, ns.Key(d.Stamp), &stamp)
	if err != nil {
		return false, nil, err
	}
	if found && stamp == repo.Today() {
		return false, nil, nil
	}
	if items == nil || (!found && !d.ClearWhenUnstamped) {
		return true, nil, nil
	}

	cleared := make([]T, len(items))
	for i, item := range items {
		cleared[i] = d.Clear(item)
	}
	return true, cleared, nil
}

func (d *DailyReset[T]) stamp(ctx context.Context, repo *Repository, ns Namespace) error {
	return repo.putJSON(ctx, ns.Key(d.Stamp), repo.Today())
}
