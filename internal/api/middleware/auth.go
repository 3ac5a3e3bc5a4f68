package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mcoot/mcmonitor/internal/api/apierr"
)

type contextKey string

const tokenContextKey contextKey = "token"

// Auth requires a bearer token. The token is opaque here; the bot API
// decides whether it is valid when it is forwarded.
func Auth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ctx := context.WithValue(r.Context(), tokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken reads the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// GetToken returns the bearer token from the request context
func GetToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// MustGetToken returns the bearer token or panics
func MustGetToken(ctx context.Context) string {
	token := GetToken(ctx)
	if token == "" {
		panic("no token in context - auth middleware not applied?")
	}
	return token
}
