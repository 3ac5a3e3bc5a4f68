// Package directory lists, looks up and publishes servers in the public
// server directory.
package directory

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mcoot/mcmonitor/internal/dependencies/clock"
	"github.com/mcoot/mcmonitor/internal/model"
	"github.com/mcoot/mcmonitor/internal/storage"
)

// CategoryAll is the filter value matching every category
const CategoryAll = "all"

// ErrorKind classifies a failed publish
type ErrorKind string

const (
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindStore      ErrorKind = "store"
)

// Messages shown for publish outcomes
const (
	MessagePublished    = "Server published to the directory."
	MessageIPRequired   = "A server IP is required to publish."
	MessageBadCategory  = "Choose one of the listed categories."
	MessageStoreFailure = "Could not publish the server right now. Please try again."
)

// PublishRequest is the form submitted from the settings tab
type PublishRequest struct {
	Name     string `json:"name"`
	IP       string `json:"ip"`
	Category string `json:"type"`
}

// Result is the outcome of a publish. On success Server is the stored row.
type Result struct {
	OK        bool
	Server    *model.Server
	ErrorKind ErrorKind
	Message   string
}

// Service reads and writes the directory table
type Service struct {
	store  storage.ServerStore
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new directory Service
func New(store storage.ServerStore, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// List returns every published server. Store errors are logged and yield an
// empty list.
func (s *Service) List(ctx context.Context) []*model.Server {
	servers, err := s.store.ListServers(ctx)
	if err != nil {
		s.logger.Warn("failed to list servers", slog.String("error", err.Error()))
		return []*model.Server{}
	}
	if servers == nil {
		return []*model.Server{}
	}
	return servers
}

// Get looks up one server. A missing row and a store failure both surface
// as model.ErrServerNotFound.
func (s *Service) Get(ctx context.Context, id model.ServerID) (*model.Server, error) {
	server, err := s.store.GetServer(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrServerNotFound) {
			s.logger.Warn("failed to get server",
				slog.String("id", string(id)),
				slog.String("error", err.Error()),
			)
		}
		return nil, model.ErrServerNotFound
	}
	return server, nil
}

// Filter returns the servers whose name or IP contains term, case
// insensitively, restricted to category unless it is empty or "all".
func Filter(servers []*model.Server, term, category string) []*model.Server {
	needle := strings.ToLower(term)
	category = strings.ToLower(strings.TrimSpace(category))

	result := make([]*model.Server, 0, len(servers))
	for _, server := range servers {
		if category != "" && category != CategoryAll && string(server.Type) != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(server.Name), needle) &&
			!strings.Contains(strings.ToLower(server.IP), needle) {
			continue
		}
		result = append(result, server)
	}
	return result
}

// Publish validates req and inserts a new directory row
func (s *Service) Publish(ctx context.Context, req PublishRequest) Result {
	ip := strings.TrimSpace(req.IP)
	if ip == "" {
		return Result{ErrorKind: ErrorKindValidation, Message: MessageIPRequired}
	}

	category, ok := model.ParseCategory(req.Category)
	if !ok {
		return Result{ErrorKind: ErrorKindValidation, Message: MessageBadCategory}
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = ip
	}

	server := &model.Server{
		Name:          name,
		IP:            ip,
		Status:        model.ServerOnline,
		PlayersOnline: 0,
		Plan:          model.PlanPremium,
		Type:          category,
		CreatedAt:     s.clock.Now(),
	}

	if err := s.store.InsertServer(ctx, server); err != nil {
		s.logger.Error("failed to publish server",
			slog.String("ip", ip),
			slog.String("error", err.Error()),
		)
		return Result{ErrorKind: ErrorKindStore, Message: MessageStoreFailure}
	}

	s.logger.Info("server published",
		slog.String("id", string(server.ID)),
		slog.String("ip", ip),
		slog.String("type", string(category)),
	)

	return Result{OK: true, Server: server, Message: MessagePublished}
}
