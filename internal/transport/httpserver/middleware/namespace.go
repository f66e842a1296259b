package middleware

import (
	"context"
	"net/http"

	"aurora-app-go/internal/domain/records"
	"aurora-app-go/internal/domain/user"
)

// NamespaceResolver maps a caller to the key namespace of their records.
type NamespaceResolver interface {
	Namespace(identity user.Identity) records.Namespace
}

type namespaceKey struct{}

func Namespaces(resolver NamespaceResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), namespaceKey{}, resolver.Namespace(identity))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NamespaceFromContext(ctx context.Context) (records.Namespace, bool) {
	ns, ok := ctx.Value(namespaceKey{}).(records.Namespace)
	return ns, ok
}
