package factory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/mcmonitor/internal/config"
	"github.com/mcoot/mcmonitor/internal/dependencies/clock"
	"github.com/mcoot/mcmonitor/internal/services/directory"
	"github.com/mcoot/mcmonitor/internal/services/guilds"
	"github.com/mcoot/mcmonitor/internal/session"
	"github.com/mcoot/mcmonitor/internal/storage"
	dynamostorage "github.com/mcoot/mcmonitor/internal/storage/dynamodb"
	"github.com/mcoot/mcmonitor/internal/storage/memory"
	redisstorage "github.com/mcoot/mcmonitor/internal/storage/redis"
	"github.com/mcoot/mcmonitor/internal/storage/supabase"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.ServerStore

	// External dependencies
	Clock  clock.Clock
	Guilds *guilds.Client

	// Services
	Directory *directory.Service
	Sessions  *session.CookieStore

	closers []func() error
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the directory backend, one of the config.StorageType* values
	// If empty, defaults to memory
	StorageType string
	// Backend settings, required for the matching StorageType
	RedisConfig    *redisstorage.Config
	SupabaseConfig *supabase.Config
	DynamoDBConfig *dynamostorage.Config
	// GuildsEndpoint is the absolute URL of the bot API guild listing
	GuildsEndpoint string
	// HTTPTimeout bounds outbound requests (optional)
	HTTPTimeout time.Duration
	// SessionSecret seals the session cookie when set
	SessionSecret string
	CookieSecure  bool
}

// FromConfig maps the resolved process configuration onto a factory Config
func FromConfig(c config.Config, logger *slog.Logger) Config {
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = c.Redis.URL
	redisCfg.Timeout = c.HTTPTimeout

	return Config{
		Logger:      logger,
		StorageType: c.StorageType,
		RedisConfig: &redisCfg,
		SupabaseConfig: &supabase.Config{
			URL:     c.Supabase.URL,
			Key:     c.Supabase.Key,
			Table:   c.Supabase.Table,
			Timeout: c.HTTPTimeout,
		},
		DynamoDBConfig: &dynamostorage.Config{
			Region:    c.DynamoDB.Region,
			TableName: c.DynamoDB.Table,
			Endpoint:  c.DynamoDB.Endpoint,
		},
		GuildsEndpoint: c.GuildsURL(),
		HTTPTimeout:    c.HTTPTimeout,
		SessionSecret:  c.SessionSecret,
		CookieSecure:   c.CookieSecure,
	}
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, closer, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	guildClient := guilds.New(guilds.Config{
		Endpoint: cfg.GuildsEndpoint,
		Timeout:  cfg.HTTPTimeout,
	}, logger)

	app := newWithDependencies(store, clock.New(), guildClient, session.NewCookieStore(cfg.SessionSecret, cfg.CookieSecure), logger)
	if closer != nil {
		app.closers = append(app.closers, closer)
	}
	return app, nil
}

func newStore(ctx context.Context, cfg Config) (storage.ServerStore, func() error, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		return memory.New(), nil, nil
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, nil, fmt.Errorf("RedisConfig required when StorageType is %s", storageType)
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, nil, err
		}
		return redisStore, redisStore.Close, nil
	case config.StorageTypeSupabase:
		if cfg.SupabaseConfig == nil {
			return nil, nil, fmt.Errorf("SupabaseConfig required when StorageType is %s", storageType)
		}
		supabaseStore, err := supabase.New(*cfg.SupabaseConfig)
		if err != nil {
			return nil, nil, err
		}
		return supabaseStore, nil, nil
	case config.StorageTypeDynamoDB:
		if cfg.DynamoDBConfig == nil {
			return nil, nil, fmt.Errorf("DynamoDBConfig required when StorageType is %s", storageType)
		}
		dynamoStore, err := dynamostorage.New(ctx, *cfg.DynamoDBConfig)
		if err != nil {
			return nil, nil, err
		}
		return dynamoStore, nil, nil
	default:
		return nil, nil, fmt.Errorf("invalid StorageType %q", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.ServerStore, clk clock.Clock, guildClient *guilds.Client, sessions *session.CookieStore, logger *slog.Logger) *App {
	return &App{
		Store:     store,
		Clock:     clk,
		Guilds:    guildClient,
		Directory: directory.New(store, clk, logger),
		Sessions:  sessions,
	}
}

// Close releases backend connections
func (a *App) Close() error {
	var firstErr error
	for _, closer := range a.closers {
		if err := closer(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
