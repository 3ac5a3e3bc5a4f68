package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/mcmonitor/internal/api"
	"github.com/mcoot/mcmonitor/internal/config"
	"github.com/mcoot/mcmonitor/internal/factory"
	"github.com/mcoot/mcmonitor/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	app, err := factory.New(ctx, factory.FromConfig(cfg, logger))
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	logger.Info("application configured",
		slog.String("storage", cfg.StorageType),
		slog.String("api_base", cfg.APIBase),
		slog.Bool("sealed_sessions", cfg.SessionSecret != ""),
	)

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:    logger,
		Guilds:    app.Guilds,
		Directory: app.Directory,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:    logger,
		Sessions:  app.Sessions,
		Guilds:    app.Guilds,
		Directory: app.Directory,
		Clock:     app.Clock,
		LoginURL:  cfg.LoginURL(),
		StaticDir: findStaticDir(),
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(mux, serverConfig, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")
		return server.Shutdown(context.Background())
	})
	return g.Wait()
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	candidates := []string{
		"internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	return "internal/web/static"
}
