package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
	StorageTypeSupabase = "supabase"
	StorageTypeDynamoDB = "dynamodb"
)

// Config holds all application configuration, resolved once at startup
type Config struct {
	// External bot API
	APIBase    string `yaml:"api_base"`
	LoginPath  string `yaml:"login_path"`
	GuildsPath string `yaml:"guilds_path"`

	// HTTP server
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Session cookie
	SessionSecret string `yaml:"session_secret"`
	CookieSecure  bool   `yaml:"cookie_secure"`

	// Directory storage
	StorageType string   `yaml:"storage_type"`
	Redis       Redis    `yaml:"redis"`
	Supabase    Supabase `yaml:"supabase"`
	DynamoDB    DynamoDB `yaml:"dynamodb"`

	// HTTPTimeout bounds every outbound request to the bot API and hosted store
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

// Redis holds Redis connection settings
type Redis struct {
	URL string `yaml:"url"`
}

// Supabase holds the hosted table store settings
type Supabase struct {
	URL   string `yaml:"url"`
	Key   string `yaml:"key"`
	Table string `yaml:"table"`
}

// DynamoDB holds the DynamoDB table settings
type DynamoDB struct {
	Region   string `yaml:"region"`
	Table    string `yaml:"table"`
	Endpoint string `yaml:"endpoint"`
}

// Default returns a Config with default values
func Default() Config {
	return Config{
		APIBase:     "http://localhost:8000",
		LoginPath:   "/auth/login",
		GuildsPath:  "/user/guilds",
		Host:        "",
		Port:        8080,
		LogLevel:    "INFO",
		StorageType: StorageTypeMemory,
		Redis:       Redis{URL: "redis://localhost:6379"},
		Supabase:    Supabase{Table: "servers"},
		DynamoDB:    DynamoDB{Region: "us-east-1", Table: "servers"},
		HTTPTimeout: 10 * time.Second,
	}
}

// Load resolves configuration from, in increasing precedence: defaults, the
// YAML file named by MCMON_CONFIG, a .env file in the working directory, and
// the process environment.
func Load() (Config, error) {
	// .env values never override variables already set in the environment
	_ = godotenv.Load(filepath.Join(".", ".env"))

	cfg := Default()

	if path := os.Getenv("MCMON_CONFIG"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays values from a YAML file onto the config
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	setString(&c.APIBase, getenv("MCMON_API_BASE"))
	setString(&c.LoginPath, getenv("MCMON_LOGIN_PATH"))
	setString(&c.GuildsPath, getenv("MCMON_GUILDS_PATH"))
	setString(&c.Host, getenv("HOST"))
	setString(&c.LogLevel, getenv("LOG_LEVEL"))
	setString(&c.SessionSecret, getenv("SESSION_SECRET"))
	setString(&c.StorageType, getenv("STORAGE_TYPE"))
	setString(&c.Redis.URL, getenv("REDIS_URL"))
	setString(&c.Supabase.URL, getenv("SUPABASE_URL"))
	setString(&c.Supabase.Key, getenv("SUPABASE_KEY"))
	setString(&c.Supabase.Table, getenv("SUPABASE_TABLE"))
	setString(&c.DynamoDB.Region, getenv("AWS_REGION"))
	setString(&c.DynamoDB.Table, getenv("DYNAMODB_TABLE"))
	setString(&c.DynamoDB.Endpoint, getenv("DYNAMODB_ENDPOINT"))

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT must be a number (got %q)", v)
		}
		c.Port = port
	}
	if v := getenv("COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("COOKIE_SECURE must be a boolean (got %q)", v)
		}
		c.CookieSecure = secure
	}
	if v := getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("HTTP_TIMEOUT must be a duration (got %q)", v)
		}
		c.HTTPTimeout = d
	}
	return nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.APIBase)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("api base must be an absolute http(s) URL (got %q)", c.APIBase))
	}
	if !strings.HasPrefix(c.LoginPath, "/") {
		errs = append(errs, fmt.Errorf("login path must start with / (got %q)", c.LoginPath))
	}
	if !strings.HasPrefix(c.GuildsPath, "/") {
		errs = append(errs, fmt.Errorf("guilds path must start with / (got %q)", c.GuildsPath))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port out of range: %d", c.Port))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, errors.New("http timeout must be positive"))
	}

	switch c.StorageType {
	case StorageTypeMemory:
	case StorageTypeRedis:
		if c.Redis.URL == "" {
			errs = append(errs, errors.New("REDIS_URL required when STORAGE_TYPE=redis"))
		}
	case StorageTypeSupabase:
		if c.Supabase.URL == "" || c.Supabase.Key == "" {
			errs = append(errs, errors.New("SUPABASE_URL and SUPABASE_KEY required when STORAGE_TYPE=supabase"))
		}
	case StorageTypeDynamoDB:
		if c.DynamoDB.Table == "" {
			errs = append(errs, errors.New("DYNAMODB_TABLE required when STORAGE_TYPE=dynamodb"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid storage type %q", c.StorageType))
	}

	return errors.Join(errs...)
}

// LoginURL is the external URL that starts the Discord login flow
func (c *Config) LoginURL() string {
	return strings.TrimSuffix(c.APIBase, "/") + c.LoginPath
}

// GuildsURL is the external endpoint listing the user's guilds
func (c *Config) GuildsURL() string {
	return strings.TrimSuffix(c.APIBase, "/") + c.GuildsPath
}

// SlogLevel converts LogLevel to a slog.Level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
