package user

import (
	"context"

	"aurora-app-go/internal/domain/subscription"
)

// Repository is the remote profile record keyed by user id. GetProfile and
// UpdateSubscription return ErrProfileNotFound when no row matches.
type Repository interface {
	GetProfile(ctx context.Context, id string) (*Profile, error)
	CreateProfile(ctx context.Context, profile *Profile) error
	UpdateSubscription(ctx context.Context, id string, plan subscription.Plan) error
}
