package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mcmonitor/internal/dependencies/mocks"
	"github.com/mcoot/mcmonitor/internal/model"
	"github.com/mcoot/mcmonitor/internal/storage"
	"github.com/mcoot/mcmonitor/internal/storage/memory"
	"github.com/mcoot/mcmonitor/internal/testutil"
)

// countingStore wraps a store, counts inserts and can be made to fail
type countingStore struct {
	storage.ServerStore
	inserts int
	fail    error
}

func (c *countingStore) ListServers(ctx context.Context) ([]*model.Server, error) {
	if c.fail != nil {
		return nil, c.fail
	}
	return c.ServerStore.ListServers(ctx)
}

func (c *countingStore) GetServer(ctx context.Context, id model.ServerID) (*model.Server, error) {
	if c.fail != nil {
		return nil, c.fail
	}
	return c.ServerStore.GetServer(ctx, id)
}

func (c *countingStore) InsertServer(ctx context.Context, server *model.Server) error {
	c.inserts++
	if c.fail != nil {
		return c.fail
	}
	return c.ServerStore.InsertServer(ctx, server)
}

type ServiceSuite struct {
	suite.Suite
	store   *countingStore
	clock   *mocks.MockClock
	service *Service
	logs    *testutil.LogBuffer
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = &countingStore{ServerStore: memory.New()}
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger, logs := testutil.BufferLogger()
	s.logs = logs
	s.service = New(s.store, s.clock, logger)
	s.ctx = context.Background()
}

// Publish tests

func (s *ServiceSuite) TestPublishEmptyIPSkipsStore() {
	for _, ip := range []string{"", "   ", "\t\n"} {
		result := s.service.Publish(s.ctx, PublishRequest{Name: "Alpha", IP: ip, Category: "survival"})
		s.False(result.OK)
		s.Equal(ErrorKindValidation, result.ErrorKind)
		s.Equal(MessageIPRequired, result.Message)
	}
	s.Equal(0, s.store.inserts)
}

func (s *ServiceSuite) TestPublishUnknownCategory() {
	result := s.service.Publish(s.ctx, PublishRequest{IP: "play.example.com", Category: "pvp"})
	s.False(result.OK)
	s.Equal(ErrorKindValidation, result.ErrorKind)
	s.Equal(0, s.store.inserts)
}

func (s *ServiceSuite) TestPublishAppliesDefaults() {
	result := s.service.Publish(s.ctx, PublishRequest{Name: " Alpha ", IP: " play.example.com ", Category: "Skyblock"})
	s.Require().True(result.OK)
	s.Equal(MessagePublished, result.Message)

	server := result.Server
	s.NotEmpty(server.ID)
	s.Equal("Alpha", server.Name)
	s.Equal("play.example.com", server.IP)
	s.Equal(model.ServerOnline, server.Status)
	s.Equal(0, server.PlayersOnline)
	s.Equal(model.PlanPremium, server.Plan)
	s.Equal(model.CategorySkyblock, server.Type)
	s.Empty(server.Version)
	s.Equal(s.clock.Now(), server.CreatedAt)

	stored, err := s.service.Get(s.ctx, server.ID)
	s.Require().NoError(err)
	s.Equal("Alpha", stored.Name)
}

func (s *ServiceSuite) TestPublishNameDefaultsToIP() {
	result := s.service.Publish(s.ctx, PublishRequest{IP: "mc.example.net", Category: "other"})
	s.Require().True(result.OK)
	s.Equal("mc.example.net", result.Server.Name)
}

func (s *ServiceSuite) TestPublishStoreFailureIsSanitised() {
	s.store.fail = errors.New("pq: connection refused to 10.0.0.7")

	result := s.service.Publish(s.ctx, PublishRequest{IP: "mc.example.net", Category: "other"})
	s.False(result.OK)
	s.Equal(ErrorKindStore, result.ErrorKind)
	s.Equal(MessageStoreFailure, result.Message)
	s.NotContains(result.Message, "10.0.0.7")
	s.Equal(1, s.store.inserts)
	s.Contains(s.logs.String(), "10.0.0.7")
}

// List and Get tests

func (s *ServiceSuite) TestListEmpty() {
	servers := s.service.List(s.ctx)
	s.NotNil(servers)
	s.Empty(servers)
}

func (s *ServiceSuite) TestListStoreFailureIsEmpty() {
	s.service.Publish(s.ctx, PublishRequest{IP: "a.example.com", Category: "survival"})
	s.store.fail = errors.New("down")

	servers := s.service.List(s.ctx)
	s.NotNil(servers)
	s.Empty(servers)
}

func (s *ServiceSuite) TestGetMissing() {
	_, err := s.service.Get(s.ctx, "nope")
	s.ErrorIs(err, model.ErrServerNotFound)
	s.NotContains(s.logs.String(), "failed to get server")
}

func (s *ServiceSuite) TestGetStoreFailureIsNotFound() {
	s.store.fail = errors.New("down")
	_, err := s.service.Get(s.ctx, "any")
	s.ErrorIs(err, model.ErrServerNotFound)
	s.Contains(s.logs.String(), "failed to get server")
}

func TestFilter(t *testing.T) {
	servers := []*model.Server{
		{ID: "1", Name: "Hypixel", IP: "mc.hypixel.net", Type: model.CategoryMinigames},
		{ID: "2", Name: "SkyLand", IP: "play.skyland.gg", Type: model.CategorySkyblock},
		{ID: "3", Name: "Vanilla Plus", IP: "vp.example.com", Type: model.CategorySurvival},
	}

	ids := func(list []*model.Server) []model.ServerID {
		out := []model.ServerID{}
		for _, s := range list {
			out = append(out, s.ID)
		}
		return out
	}

	tests := []struct {
		name     string
		term     string
		category string
		want     []model.ServerID
	}{
		{"empty term returns all", "", "", []model.ServerID{"1", "2", "3"}},
		{"matches name case-insensitively", "SKY", "", []model.ServerID{"2"}},
		{"matches ip", "example.com", "", []model.ServerID{"3"}},
		{"all category", "", "all", []model.ServerID{"1", "2", "3"}},
		{"category only", "", "survival", []model.ServerID{"3"}},
		{"term and category", "sky", "survival", []model.ServerID{}},
		{"no match", "zzz", "", []model.ServerID{}},
		{"leading space is part of the term", " plus", "", []model.ServerID{"3"}},
		{"blank term is not empty", "   ", "", []model.ServerID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(servers, tt.term, tt.category)))
		})
	}
}
