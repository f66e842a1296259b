package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"aurora-app-go/internal/config"
	"aurora-app-go/internal/domain/user"
	"aurora-app-go/internal/identity/supabase"
	"aurora-app-go/pkg/logger"
)

const defaultAuthTimeout = 5 * time.Second

// IdentityVerifier resolves a bearer token to its owner.
type IdentityVerifier interface {
	User(ctx context.Context, token string) (supabase.User, error)
}

type SupabaseAuth struct {
	verifier IdentityVerifier
	local    bool
	mockUser *user.Identity
	timeout  time.Duration
	log      logger.Logger
}

type contextKey int

const (
	identityKey contextKey = iota
	tokenKey
	profileKey
)

func NewSupabaseAuth(cfg config.SupabaseConfig, verifier IdentityVerifier, log logger.Logger) *SupabaseAuth {
	timeout := cfg.AuthTimeout
	if timeout == 0 {
		timeout = defaultAuthTimeout
	}

	auth := &SupabaseAuth{
		verifier: verifier,
		local:    cfg.LocalMode(),
		timeout:  timeout,
		log:      log,
	}
	if cfg.SkipAuth && strings.TrimSpace(cfg.MockUserEmail) != "" {
		auth.mockUser = &user.Identity{
			ID:    strings.TrimSpace(cfg.MockUserID),
			Email: strings.TrimSpace(cfg.MockUserEmail),
			Name:  strings.TrimSpace(cfg.MockUserName),
		}
	}
	return auth
}

func (a *SupabaseAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.local {
			identity := user.Identity{}
			if a.mockUser != nil {
				identity = *a.mockUser
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
			return
		}

		if a.verifier == nil {
			writeError(w, http.StatusInternalServerError, "auth_not_configured", "auth not configured")
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), a.timeout)
		found, err := a.verifier.User(ctx, token)
		cancel()
		if err != nil {
			if isTimeout(err) {
				a.log.BusinessError("auth: verification timed out", err)
				writeError(w, http.StatusGatewayTimeout, "auth_timeout", "authentication timed out, please try again")
				return
			}
			if !errors.Is(err, supabase.ErrUnauthorized) {
				a.log.BusinessError("auth: verification failed", err)
			}
			unauthorized(w)
			return
		}

		identity := user.Identity{ID: found.ID, Email: found.Email, Name: found.Name}
		ctx = WithIdentity(r.Context(), identity)
		ctx = WithAccessToken(ctx, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

// WithIdentity stores the caller. An empty identity is the device-local user.
func WithIdentity(ctx context.Context, identity user.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (user.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(user.Identity)
	return identity, ok
}

// WithAccessToken keeps the raw bearer token for sign-out and forwards it to
// the profile store.
func WithAccessToken(ctx context.Context, token string) context.Context {
	ctx = context.WithValue(ctx, tokenKey, token)
	return supabase.WithAccessToken(ctx, token)
}

func AccessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

type errorEnvelope struct {
	Error    errorBody `json:"error"`
	Redirect string    `json:"redirect,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeEnvelope(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeEnvelope(w http.ResponseWriter, status int, payload errorEnvelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
