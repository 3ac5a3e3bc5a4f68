package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/mcmonitor/internal/services/dashboard"
	"github.com/mcoot/mcmonitor/internal/web/templates/pages"
)

// HomeHandler handles the landing page and unmatched routes
type HomeHandler struct {
	logger *slog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(logger *slog.Logger) *HomeHandler {
	return &HomeHandler{logger: logger}
}

// Home renders the landing page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: pageData(r.Context(), "Minecraft Server Dashboard", "home"),
		LoginURL: "/login",
		Features: pages.Features(),
		Plans:    dashboard.Pricing(),
	}
	render(w, r, h.logger, http.StatusOK, pages.Home(data))
}

// NotFound renders the generic 404 page
func (h *HomeHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := pages.NotFoundData{
		PageData:  pageData(r.Context(), "Not Found", ""),
		Message:   "This page does not exist.",
		BackURL:   "/",
		BackLabel: "Go Home",
	}
	render(w, r, h.logger, http.StatusNotFound, pages.NotFound(data))
}
