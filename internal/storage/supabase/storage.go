// Package supabase stores directory rows in a hosted Supabase table through
// its PostgREST interface.
package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/supabase-community/postgrest-go"

	"github.com/mcoot/mcmonitor/internal/model"
	"github.com/mcoot/mcmonitor/internal/storage"
)

// codeNoRows is the PostgREST error code for a single-object request that
// matched nothing
const codeNoRows = "PGRST116"

// Config holds the hosted table settings
type Config struct {
	// URL is the project URL, e.g. https://xyz.supabase.co
	URL string
	// Key is the anon or service key sent as apikey and bearer token
	Key string
	// Table defaults to "servers"
	Table   string
	Timeout time.Duration
}

// Storage is a Supabase-backed implementation of the storage interface
type Storage struct {
	client  *postgrest.Client
	table   string
	timeout time.Duration
}

// New creates a new Supabase storage instance
func New(cfg Config) (*Storage, error) {
	table := cfg.Table
	if table == "" {
		table = "servers"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	client := postgrest.NewClient(strings.TrimSuffix(cfg.URL, "/")+"/rest/v1", "public", map[string]string{
		"apikey": cfg.Key,
	})
	if client.ClientError != nil {
		return nil, fmt.Errorf("supabase client: %w", client.ClientError)
	}
	client.SetAuthToken(cfg.Key)

	return &Storage{
		client:  client,
		table:   table,
		timeout: timeout,
	}, nil
}

// Ensure Storage implements the interface
var _ storage.ServerStore = (*Storage)(nil)

// row is a servers row as PostgREST returns it; the primary key may be a
// bigint or a uuid depending on how the table was created
type row struct {
	ID            json.RawMessage `json:"id"`
	Name          string          `json:"name"`
	IP            string          `json:"ip"`
	Status        string          `json:"status"`
	PlayersOnline *int            `json:"players_online"`
	Plan          string          `json:"plan"`
	Type          string          `json:"type"`
	Version       *string         `json:"version"`
	CreatedAt     *time.Time      `json:"created_at"`
}

// insertRow omits the columns the database fills in
type insertRow struct {
	Name          string `json:"name"`
	IP            string `json:"ip"`
	Status        string `json:"status"`
	PlayersOnline int    `json:"players_online"`
	Plan          string `json:"plan"`
	Type          string `json:"type"`
}

func (r row) toModel() *model.Server {
	s := &model.Server{
		ID:     model.ServerID(rawID(r.ID)),
		Name:   r.Name,
		IP:     r.IP,
		Status: r.Status,
		Plan:   model.Plan(r.Plan),
		Type:   model.Category(r.Type),
	}
	if r.PlayersOnline != nil {
		s.PlayersOnline = *r.PlayersOnline
	}
	if r.Version != nil {
		s.Version = *r.Version
	}
	if r.CreatedAt != nil {
		s.CreatedAt = *r.CreatedAt
	}
	return s
}

func (s *Storage) ListServers(ctx context.Context) ([]*model.Server, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var rows []row
	_, err := s.client.From(s.table).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		ExecuteToWithContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("supabase: list servers: %w", err)
	}

	servers := make([]*model.Server, 0, len(rows))
	for _, r := range rows {
		servers = append(servers, r.toModel())
	}
	return servers, nil
}

func (s *Storage) GetServer(ctx context.Context, id model.ServerID) (*model.Server, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var r row
	_, err := s.client.From(s.table).
		Select("*", "", false).
		Eq("id", string(id)).
		Single().
		ExecuteToWithContext(ctx, &r)
	if err != nil {
		if strings.Contains(err.Error(), codeNoRows) {
			return nil, model.ErrServerNotFound
		}
		return nil, fmt.Errorf("supabase: get server %s: %w", id, err)
	}
	return r.toModel(), nil
}

func (s *Storage) InsertServer(ctx context.Context, server *model.Server) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body := []insertRow{{
		Name:          server.Name,
		IP:            server.IP,
		Status:        server.Status,
		PlayersOnline: server.PlayersOnline,
		Plan:          string(server.Plan),
		Type:          string(server.Type),
	}}

	var rows []row
	_, err := s.client.From(s.table).
		Insert(body, false, "", "representation", "").
		ExecuteToWithContext(ctx, &rows)
	if err != nil {
		return fmt.Errorf("supabase: insert server: %w", err)
	}
	if len(rows) != 1 {
		return fmt.Errorf("supabase: insert returned %d rows", len(rows))
	}

	inserted := rows[0].toModel()
	server.ID = inserted.ID
	if !inserted.CreatedAt.IsZero() {
		server.CreatedAt = inserted.CreatedAt
	}
	return nil
}

// rawID renders a numeric or string primary key as text
func rawID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
