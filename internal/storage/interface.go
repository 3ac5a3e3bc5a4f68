package storage

import (
	"context"

	"github.com/mcoot/mcmonitor/internal/model"
)

// ServerStore is the table of published directory servers.
// Rows are only ever inserted; there is no update or delete path.
type ServerStore interface {
	// ListServers returns every row, oldest first
	ListServers(ctx context.Context) ([]*model.Server, error)
	// GetServer returns the row with the given id or model.ErrServerNotFound
	GetServer(ctx context.Context, id model.ServerID) (*model.Server, error)
	// InsertServer stores a new row. The store assigns the primary key and
	// writes it back to server.ID.
	InsertServer(ctx context.Context, server *model.Server) error
}
