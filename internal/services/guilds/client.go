package guilds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mcoot/mcmonitor/internal/model"
)

// maxBodySize caps how much of a guilds response is read
const maxBodySize = 4 << 20

// Config holds configuration for the guild fetcher
type Config struct {
	// Endpoint is the absolute URL of the guild listing, without query
	Endpoint string
	Timeout  time.Duration
}

// Client fetches the authenticated user's guilds from the bot API
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a new guild Client
func New(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return NewWithHTTPClient(cfg.Endpoint, &http.Client{Timeout: timeout}, logger)
}

// NewWithHTTPClient creates a Client with an existing http.Client (for testing)
func NewWithHTTPClient(endpoint string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// guildDTO is a guild as the bot API reports it
type guildDTO struct {
	ID          json.RawMessage `json:"id"`
	Name        string          `json:"name"`
	Icon        *string         `json:"icon"`
	Status      string          `json:"status"`
	MemberCount *int            `json:"member_count"`
	Plan        string          `json:"plan"`
}

// envelope covers both response shapes; total_admin_guilds is informational
type envelope struct {
	TotalAdminGuilds *int       `json:"total_admin_guilds"`
	Guilds           []guildDTO `json:"guilds"`
}

// Fetch performs a single request for the token's guilds.
// A non-2xx status or an unparseable body is an error.
func (c *Client) Fetch(ctx context.Context, token string) ([]model.Guild, error) {
	if token == "" {
		return nil, model.ErrNoToken
	}

	u := c.endpoint + "?" + url.Values{"token": {token}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("guilds endpoint returned HTTP %d", resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	guilds := make([]model.Guild, 0, len(env.Guilds))
	for _, dto := range env.Guilds {
		id := parseID(dto.ID)
		if id == "" {
			continue
		}
		g := model.Guild{
			ID:          id,
			Name:        dto.Name,
			Status:      model.ParseGuildStatus(dto.Status),
			MemberCount: dto.MemberCount,
			Plan:        model.ParsePlan(dto.Plan),
		}
		if dto.Icon != nil {
			g.Icon = *dto.Icon
		}
		guilds = append(guilds, g)
	}
	return guilds, nil
}

// Guilds returns the token's guilds, degrading every failure to an empty
// list. Failures are logged and never surfaced to the caller.
func (c *Client) Guilds(ctx context.Context, token string) []model.Guild {
	guilds, err := c.Fetch(ctx, token)
	if err != nil {
		c.logger.Warn("guild fetch failed", slog.String("error", err.Error()))
		return []model.Guild{}
	}
	return guilds
}

// Find returns the guild with the given id from a fresh fetch
func (c *Client) Find(ctx context.Context, token, id string) (model.Guild, error) {
	for _, g := range c.Guilds(ctx, token) {
		if g.ID == id {
			return g, nil
		}
	}
	return model.Guild{}, model.ErrGuildNotFound
}

// parseID accepts Discord snowflakes encoded either as strings or numbers
func parseID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
