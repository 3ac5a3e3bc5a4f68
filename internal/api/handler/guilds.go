package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mcoot/mcmonitor/internal/api/apierr"
	"github.com/mcoot/mcmonitor/internal/api/middleware"
	"github.com/mcoot/mcmonitor/internal/api/response"
	"github.com/mcoot/mcmonitor/internal/model"
)

// GuildFetcher fetches the guilds a token can manage
type GuildFetcher interface {
	Fetch(ctx context.Context, token string) ([]model.Guild, error)
}

// GuildHandler handles guild endpoints
type GuildHandler struct {
	guilds GuildFetcher
	logger *slog.Logger
}

// NewGuildHandler creates a new guild handler
func NewGuildHandler(guilds GuildFetcher, logger *slog.Logger) *GuildHandler {
	return &GuildHandler{
		guilds: guilds,
		logger: logger,
	}
}

// List handles GET /api/v1/guilds. Unlike the dashboard, a failed fetch is
// reported so that API clients can tell it from an empty account.
func (h *GuildHandler) List(w http.ResponseWriter, r *http.Request) {
	token := middleware.MustGetToken(r.Context())

	guilds, err := h.guilds.Fetch(r.Context(), token)
	if err != nil {
		h.logger.Warn("guild fetch failed", slog.String("error", err.Error()))
		apierr.WriteError(w, apierr.NewUpstreamError())
		return
	}

	response.JSON(w, http.StatusOK, response.GuildListFromModels(guilds))
}
