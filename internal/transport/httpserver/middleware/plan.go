package middleware

import (
	"context"
	"net/http"

	"aurora-app-go/internal/domain/subscription"
	"aurora-app-go/internal/domain/user"
	"aurora-app-go/pkg/logger"
)

// ProfileResolver loads the caller's profile.
type ProfileResolver interface {
	Resolve(ctx context.Context, identity user.Identity) (user.Resolved, error)
}

// Profiles attaches the resolved profile to every request after auth.
func Profiles(resolver ProfileResolver, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}

			resolved, err := resolver.Resolve(r.Context(), identity)
			if err != nil {
				log.InternalError("profile: resolve failed", err, "user_id", identity.ID)
				writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
				return
			}

			ctx := context.WithValue(r.Context(), profileKey, resolved)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ProfileFromContext(ctx context.Context) (user.Resolved, bool) {
	resolved, ok := ctx.Value(profileKey).(user.Resolved)
	return resolved, ok
}

// RequirePlan answers 402 with a pricing redirect when the caller's plan
// cannot open tab.
func RequirePlan(tab subscription.Tab) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			plan := subscription.PlanFree
			if resolved, ok := ProfileFromContext(r.Context()); ok {
				plan = resolved.Profile.Subscription
			}

			decision := subscription.Decide(plan, tab)
			if !decision.Allowed {
				writeEnvelope(w, http.StatusPaymentRequired, errorEnvelope{
					Error: errorBody{
						Code:    "upgrade_required",
						Message: subscription.ErrUpgradeRequired.Error(),
					},
					Redirect: decision.Redirect,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
