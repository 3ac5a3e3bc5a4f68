package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mcoot/mcmonitor/internal/model"
	"github.com/mcoot/mcmonitor/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	servers map[model.ServerID]*model.Server
	order   []model.ServerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		servers: make(map[model.ServerID]*model.Server),
	}
}

// Ensure Storage implements the interface
var _ storage.ServerStore = (*Storage)(nil)

func (s *Storage) ListServers(ctx context.Context) ([]*model.Server, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	servers := make([]*model.Server, 0, len(s.order))
	for _, id := range s.order {
		copied := *s.servers[id]
		servers = append(servers, &copied)
	}
	return servers, nil
}

func (s *Storage) GetServer(ctx context.Context, id model.ServerID) (*model.Server, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	server, ok := s.servers[id]
	if !ok {
		return nil, model.ErrServerNotFound
	}
	copied := *server
	return &copied, nil
}

func (s *Storage) InsertServer(ctx context.Context, server *model.Server) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	server.ID = model.ServerID(uuid.NewString())
	copied := *server
	s.servers[server.ID] = &copied
	s.order = append(s.order, server.ID)
	return nil
}
