package handler

import (
	"net/http"

	"github.com/mcoot/mcmonitor/internal/session"
	"github.com/mcoot/mcmonitor/internal/web/middleware"
)

// AuthHandler starts and ends dashboard sessions. Login itself happens on the
// bot API, which redirects back to /dashboard?token=...
type AuthHandler struct {
	sessions *session.CookieStore
	loginURL string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(sessions *session.CookieStore, loginURL string) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		loginURL: loginURL,
	}
}

// Login sends the browser to the external Discord login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.loginURL, http.StatusFound)
}

// Logout clears the session token
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.For(w, r).Clear()

	middleware.SetFlash(w, middleware.FlashInfo, "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
