package redis

import "time"

// Config holds the settings of the Redis directory backend
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string

	PoolSize     int
	MinIdleConns int

	// Timeout bounds the startup ping and every read and write. Zero keeps
	// the go-redis defaults for commands.
	Timeout time.Duration
}

// DefaultConfig returns the settings used when only a URL is configured.
// The directory sees a handful of writes and one scan per page view, so the
// pool stays small.
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		Timeout:      5 * time.Second,
	}
}
