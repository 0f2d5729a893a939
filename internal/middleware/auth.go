// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const userKey ctxKey = "user"

// TokenResolver resolves an authorization token to a user id.
type TokenResolver interface {
	UserIDByToken(ctx context.Context, token string) (string, error)
}

// TokenAuth is a middleware that enforces bearer-style token authentication.
//
// It reads the Authorization header (with or without a "Bearer " prefix),
// resolves it to a user id, and stores the id in the request context so it
// can be used downstream as the authenticated user. Requests with a missing
// or unknown token are rejected with 401.
func TokenAuth(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if token == "" {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}
			userID, err := resolver.UserIDByToken(r.Context(), token)
			if err != nil || userID == "" {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), userKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext extracts the authenticated user id
// from the request context. Returns an empty string if not found.
func GetUserIDFromContext(ctx context.Context) string {
	val := ctx.Value(userKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
