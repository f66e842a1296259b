package supabase

import (
	"context"
	"net/http"
	"net/url"

	"aurora-app-go/internal/domain/subscription"
	"aurora-app-go/internal/domain/user"
)

var _ user.Repository = (*ProfileStore)(nil)

// ProfileStore reads and writes the profiles table through PostgREST. The
// caller's token is taken from the context, see WithAccessToken.
type ProfileStore struct {
	client *Client
}

func NewProfileStore(client *Client) *ProfileStore {
	return &ProfileStore{client: client}
}

func (s *ProfileStore) GetProfile(ctx context.Context, id string) (*user.Profile, error) {
	query := url.Values{}
	query.Set("id", "eq."+id)
	query.Set("select", "*")

	var rows []user.Profile
	err := s.client.do(ctx, http.MethodGet, "/rest/v1/profiles?"+query.Encode(), accessToken(ctx), nil, nil, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, user.ErrProfileNotFound
	}
	return &rows[0], nil
}

func (s *ProfileStore) CreateProfile(ctx context.Context, profile *user.Profile) error {
	headers := map[string]string{"Prefer": "return=minimal"}
	return s.client.do(ctx, http.MethodPost, "/rest/v1/profiles", accessToken(ctx), profile, headers, nil)
}

func (s *ProfileStore) UpdateSubscription(ctx context.Context, id string, plan subscription.Plan) error {
	query := url.Values{}
	query.Set("id", "eq."+id)

	body := map[string]subscription.Plan{"subscription": plan}
	headers := map[string]string{"Prefer": "return=representation"}
	var rows []user.Profile
	err := s.client.do(ctx, http.MethodPatch, "/rest/v1/profiles?"+query.Encode(), accessToken(ctx), body, headers, &rows)
	if err != nil {
		return err
	}
	// row-level security hides rows the caller may not touch, so a
	// denied update looks like an empty match
	if len(rows) == 0 {
		return user.ErrProfileNotFound
	}
	return nil
}
