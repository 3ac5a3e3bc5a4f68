package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/mcmonitor/internal/dependencies/clock"
	coremw "github.com/mcoot/mcmonitor/internal/middleware"
	"github.com/mcoot/mcmonitor/internal/services/directory"
	"github.com/mcoot/mcmonitor/internal/session"
	"github.com/mcoot/mcmonitor/internal/web/handler"
	"github.com/mcoot/mcmonitor/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger    *slog.Logger
	Sessions  *session.CookieStore
	Guilds    handler.GuildSource
	Directory *directory.Service
	Clock     clock.Clock
	// LoginURL is the external URL that starts the Discord login
	LoginURL  string
	StaticDir string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := coremw.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	sessionMiddleware := middleware.Session(cfg.Sessions, cfg.LoginURL)
	optionalSessionMiddleware := middleware.OptionalSession(cfg.Sessions)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.Logger)
	authHandler := handler.NewAuthHandler(cfg.Sessions, cfg.LoginURL)
	dashboardHandler := handler.NewDashboardHandler(cfg.Guilds, cfg.Directory, cfg.Clock, cfg.Logger)
	directoryHandler := handler.NewDirectoryHandler(cfg.Directory, cfg.Clock, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public pages (a stored session only changes the nav)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalSessionMiddleware)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/servers", directoryHandler.List).Methods(http.MethodGet)
	public.HandleFunc("/servers/{id}", directoryHandler.Detail).Methods(http.MethodGet)

	// Session actions
	r.HandleFunc("/login", authHandler.Login).Methods(http.MethodGet)
	r.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Dashboard (requires a session token)
	protected := r.PathPrefix("/dashboard").Subrouter()
	protected.Use(sessionMiddleware)
	protected.Use(flashMiddleware)
	protected.HandleFunc("", dashboardHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/{guildID}", dashboardHandler.Manage).Methods(http.MethodGet)
	protected.HandleFunc("/{guildID}/publish", dashboardHandler.Publish).Methods(http.MethodPost)

	// Router-level middleware does not run for unmatched routes
	r.NotFoundHandler = recoveryMiddleware(loggingMiddleware(flashMiddleware(optionalSessionMiddleware(http.HandlerFunc(homeHandler.NotFound)))))

	return r
}
