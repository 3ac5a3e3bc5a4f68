package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mcoot/mcmonitor/internal/model"
	"github.com/mcoot/mcmonitor/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	if cfg.Timeout > 0 {
		opts.ReadTimeout = cfg.Timeout
		opts.WriteTimeout = cfg.Timeout
	}

	client := redis.NewClient(opts)

	pingTimeout := cfg.Timeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.ServerStore = (*Storage)(nil)

func (s *Storage) ListServers(ctx context.Context) ([]*model.Server, error) {
	ids, err := s.client.ZRange(ctx, serverIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.Server{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = serverKey(model.ServerID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	servers := make([]*model.Server, 0, len(values))
	for _, val := range values {
		str, ok := val.(string)
		if !ok {
			continue // Index entry without a row
		}
		var server model.Server
		if err := json.Unmarshal([]byte(str), &server); err != nil {
			continue // Skip invalid data
		}
		servers = append(servers, &server)
	}

	return servers, nil
}

func (s *Storage) GetServer(ctx context.Context, id model.ServerID) (*model.Server, error) {
	data, err := s.client.Get(ctx, serverKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrServerNotFound
		}
		return nil, err
	}

	var server model.Server
	if err := json.Unmarshal(data, &server); err != nil {
		return nil, err
	}
	return &server, nil
}

func (s *Storage) InsertServer(ctx context.Context, server *model.Server) error {
	id := model.ServerID(uuid.NewString())
	row := *server
	row.ID = id

	data, err := json.Marshal(row)
	if err != nil {
		return err
	}

	// Sequence number keeps listing order stable regardless of clock resolution
	seq, err := s.client.Incr(ctx, serverSeqKey()).Result()
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, serverKey(id), data, 0)
	pipe.ZAdd(ctx, serverIndexKey(), redis.Z{
		Score:  float64(seq),
		Member: string(id),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	server.ID = id
	return nil
}
