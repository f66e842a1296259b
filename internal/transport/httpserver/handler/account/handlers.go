package account

import (
	"context"

	"aurora-app-go/internal/domain/records"
	userdomain "aurora-app-go/internal/domain/user"
	"aurora-app-go/internal/identity/supabase"
	"aurora-app-go/pkg/logger"
)

// Authenticator is the remote credential flow. It is nil in local mode.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*supabase.Session, error)
	SignUp(ctx context.Context, email, password, name string) (*supabase.SignUpResult, error)
	SignOut(ctx context.Context, token string) error
}

type Handlers struct {
	Users   *userdomain.Service
	Records *records.Repository
	Auth    Authenticator
	log     logger.Logger
}

func New(users *userdomain.Service, recs *records.Repository, auth Authenticator, log logger.Logger) *Handlers {
	return &Handlers{
		Users:   users,
		Records: recs,
		Auth:    auth,
		log:     log,
	}
}
