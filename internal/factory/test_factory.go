package factory

import (
	"time"

	"github.com/mcoot/mcmonitor/internal/dependencies/mocks"
	"github.com/mcoot/mcmonitor/internal/services/guilds"
	"github.com/mcoot/mcmonitor/internal/session"
	"github.com/mcoot/mcmonitor/internal/storage/memory"
	"github.com/mcoot/mcmonitor/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	Memory    *memory.Storage
}

// NewTestApp creates an App backed by memory storage and a mocked clock.
// guildsEndpoint is usually an httptest server standing in for the bot API.
func NewTestApp(guildsEndpoint string) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := testutil.NopLogger()

	guildClient := guilds.New(guilds.Config{Endpoint: guildsEndpoint, Timeout: 5 * time.Second}, logger)
	app := newWithDependencies(store, mockClock, guildClient, session.NewCookieStore("", false), logger)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		Memory:    store,
	}
}
