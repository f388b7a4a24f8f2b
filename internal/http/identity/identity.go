// Package identity resolves the acting user for API requests. The engine
// sits behind a gateway that authenticates and forwards the user id in the
// X-User-ID header.
package identity

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey struct{}

// Header carries the authenticated user's id.
const Header = "X-User-ID"

// Middleware rejects requests without a valid user id and stores the
// parsed id on the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get(Header))
		if err != nil {
			http.Error(w, "missing or invalid "+Header, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, id)))
	})
}

// FromContext returns the user id stored by Middleware.
func FromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(contextKey{}).(uuid.UUID)
	return id
}
