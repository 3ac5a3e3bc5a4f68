package middleware

import (
	"context"
	"net/http"

	"github.com/mcoot/mcmonitor/internal/session"
)

const (
	tokenContextKey = contextKey("token")
	// TokenParam is the query parameter the login flow returns the token in
	TokenParam = "token"
)

// GetToken returns the session token for the request, or "" if none
func GetToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// Session returns middleware that requires a session token.
// A token in the URL is persisted to the cookie, then a GET is redirected to
// the same URL without it. With no token at all the browser is sent to
// loginURL.
func Session(store *session.CookieStore, loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			urlToken := query.Get(TokenParam)

			token, ok := session.Resolve(urlToken, store.For(w, r))
			if !ok {
				http.Redirect(w, r, loginURL, http.StatusFound)
				return
			}

			if urlToken != "" && r.Method == http.MethodGet {
				query.Del(TokenParam)
				clean := *r.URL
				clean.RawQuery = query.Encode()
				http.Redirect(w, r, clean.RequestURI(), http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), tokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalSession exposes a stored token, if any, without requiring one
func OptionalSession(store *session.CookieStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _ := store.For(w, r).Get()
			ctx := context.WithValue(r.Context(), tokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
