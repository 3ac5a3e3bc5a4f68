package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mcoot/mcmonitor/internal/web/middleware"
	"github.com/mcoot/mcmonitor/internal/web/templates/layout"
)

// pageData builds the shell data every page shares
func pageData(ctx context.Context, title, nav string) layout.PageData {
	return layout.PageData{
		Title:    title,
		Flash:    middleware.GetFlash(ctx),
		LoggedIn: middleware.GetToken(ctx) != "",
		Nav:      nav,
	}
}

func render(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		logger.Error("failed to render page",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
}
