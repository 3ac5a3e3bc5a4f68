package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcoot/mcmonitor/internal/session"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Token     string
	TokenFile string
	Output    string
}

// DefaultConfig returns a Config with defaults taken from the environment
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("MCMON_SERVER", "http://localhost:8080"),
		Token:     os.Getenv("MCMON_TOKEN"),
		TokenFile: getEnvOrDefault("MCMON_TOKEN_FILE", defaultTokenFile()),
		Output:    OutputText,
	}
}

// Tokens is the session store backing the CLI, a file under the home directory
func (c *Config) Tokens() session.Accessor {
	return session.NewFileAccessor(c.TokenFile)
}

// ResolveToken picks the explicit token when one was given, otherwise the
// saved one, the same precedence the dashboard gives a URL token over its
// cookie. An explicit token is not persisted; use login for that.
func (c *Config) ResolveToken() {
	if c.Token != "" {
		return
	}
	if token, ok := c.Tokens().Get(); ok {
		c.Token = token
	}
}

func errInvalidOutput(format string) error {
	return fmt.Errorf("invalid output format %q (want text or json)", format)
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".mcmon", "token")
	}
	return filepath.Join(home, ".mcmon", "token")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
