// internal/handlers/middleware/actor.go
package middleware

import (
	"context"
	"net/http"
	"strconv"
)

type actorContextKey struct{}

// ActorFromContext returns the acting user id placed by the Actor middleware
func ActorFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(actorContextKey{}).(int64)
	return id, ok
}

// WithActor stores an actor id in the context. Exposed for tests.
func WithActor(ctx context.Context, actorID int64) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actorID)
}

// Actor reads the gateway-set identity header and stores the parsed actor id
// in the request context. Identity is trusted as-is; validation happened at
// the gateway.
func Actor(header string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(header)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			actorID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || actorID <= 0 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":"invalid actor id header"}`))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actorID)))
		})
	}
}

// RequireActor rejects requests that reached a ledger-affecting handler
// without an actor id in context
func RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ActorFromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"missing actor identity"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
