package factory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mcmonitor/internal/config"
	"github.com/mcoot/mcmonitor/internal/model"
	"github.com/mcoot/mcmonitor/internal/services/directory"
	redisstorage "github.com/mcoot/mcmonitor/internal/storage/redis"
	"github.com/mcoot/mcmonitor/internal/testutil"
)

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := New(context.Background(), Config{})
	require.NoError(t, err)
	defer app.Close()

	assert.NotNil(t, app.Store)
	assert.NotNil(t, app.Directory)
	assert.NotNil(t, app.Sessions)
	assert.NotNil(t, app.Guilds)
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	_, err := New(context.Background(), Config{StorageType: "postgres"})
	assert.ErrorContains(t, err, "invalid StorageType")
}

func TestNewRequiresBackendConfig(t *testing.T) {
	for _, storageType := range []string{config.StorageTypeRedis, config.StorageTypeSupabase, config.StorageTypeDynamoDB} {
		_, err := New(context.Background(), Config{StorageType: storageType})
		assert.Error(t, err, storageType)
	}
}

func TestNewWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mr.Addr()

	app, err := New(context.Background(), Config{StorageType: config.StorageTypeRedis, RedisConfig: &redisCfg})
	require.NoError(t, err)
	defer app.Close()

	result := app.Directory.Publish(context.Background(), directory.PublishRequest{IP: "mc.example.com", Category: "survival"})
	require.True(t, result.OK)
	assert.True(t, mr.Exists("mcmon:server:"+string(result.Server.ID)))
}

func TestFromConfig(t *testing.T) {
	c := config.Default()
	c.APIBase = "https://bot.example.com"
	c.StorageType = config.StorageTypeSupabase
	c.Supabase.URL = "https://proj.supabase.co"
	c.Supabase.Key = "anon"
	c.SessionSecret = "s3cret"

	cfg := FromConfig(c, testutil.NopLogger())

	assert.Equal(t, "https://bot.example.com/user/guilds", cfg.GuildsEndpoint)
	assert.Equal(t, config.StorageTypeSupabase, cfg.StorageType)
	assert.Equal(t, "https://proj.supabase.co", cfg.SupabaseConfig.URL)
	assert.Equal(t, "servers", cfg.DynamoDBConfig.TableName)
	assert.Equal(t, c.Redis.URL, cfg.RedisConfig.URL)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
}

type IntegrationSuite struct {
	suite.Suite
	api *httptest.Server
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.api = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("token") != "abc123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"guilds":[{"id":"1","name":"Test","status":"online","plan":"premium"}]}`))
	}))
	s.app = NewTestApp(s.api.URL + "/user/guilds")
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TearDownTest() {
	s.api.Close()
}

func (s *IntegrationSuite) TestGuildsThenPublishThenBrowse() {
	guildList := s.app.Guilds.Guilds(s.ctx, "abc123")
	s.Require().Len(guildList, 1)
	s.Equal(model.PlanPremium, guildList[0].Plan)

	s.Empty(s.app.Guilds.Guilds(s.ctx, "wrong"))

	result := s.app.Directory.Publish(s.ctx, directory.PublishRequest{Name: guildList[0].Name, IP: "play.test.gg", Category: "minigames"})
	s.Require().True(result.OK)
	s.Equal(s.app.MockClock.Now(), result.Server.CreatedAt)

	listed := s.app.Directory.List(s.ctx)
	s.Require().Len(listed, 1)
	s.Equal("Test", listed[0].Name)

	detail, err := s.app.Directory.Get(s.ctx, result.Server.ID)
	s.Require().NoError(err)
	s.Equal("play.test.gg", detail.IP)
}
