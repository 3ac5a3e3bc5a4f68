package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/mcmonitor/internal/api/handler"
	"github.com/mcoot/mcmonitor/internal/api/middleware"
	"github.com/mcoot/mcmonitor/internal/api/response"
	coremw "github.com/mcoot/mcmonitor/internal/middleware"
	"github.com/mcoot/mcmonitor/internal/services/directory"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger    *slog.Logger
	Guilds    handler.GuildFetcher
	Directory *directory.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	serverHandler := handler.NewServerHandler(cfg.Directory)
	guildHandler := handler.NewGuildHandler(cfg.Guilds, cfg.Logger)

	// Create middleware
	authMiddleware := middleware.Auth()
	loggingMiddleware := coremw.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Directory routes (reads are public)
	api.HandleFunc("/servers", serverHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/servers/{id}", serverHandler.Get).Methods(http.MethodGet)

	// Routes acting for a Discord user
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/servers", serverHandler.Publish).Methods(http.MethodPost)
	protected.HandleFunc("/guilds", guildHandler.List).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
