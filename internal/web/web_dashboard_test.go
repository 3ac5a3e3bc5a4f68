package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mcmonitor/internal/services/directory"
)

func TestDashboardWithoutTokenRedirectsToLogin(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/dashboard")

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, testLoginURL, rr.Header().Get("Location"))
	assert.False(t, ts.cookies.hasSession())
}

func TestDashboardTokenFromURLIsPersistedAndStripped(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/dashboard?token=abc123&q=te")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/dashboard?q=te", rr.Header().Get("Location"))
	require.True(t, ts.cookies.hasSession())
	assert.Equal(t, "abc123", ts.storedToken())

	rr = ts.followRedirect(rr)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"abc123"}, ts.botAPI.seenTokens())
}

func TestDashboardListsGuildWithManageAction(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.login("abc123")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	rows := doc.Find(".guild-row")
	require.Equal(t, 1, rows.Length())
	assert.Equal(t, "Test", rows.Find(".guild-name").Text())
	assert.Equal(t, "Manage", rows.Find("a.manage").Text())
	href, _ := rows.Find("a.manage").Attr("href")
	assert.Equal(t, "/dashboard/1", href)
}

func TestDashboardLaterURLTokenWins(t *testing.T) {
	ts := newWebTestServer(t)
	ts.botAPI.respond("other", `{"guilds":[{"id":"2","name":"Other","status":"offline"}]}`)

	ts.login("abc123")
	rr := ts.login("other")

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".guild-list", "Other")
	assert.Equal(t, "other", ts.storedToken())
}

func TestDashboardFetchFailureRendersNoRows(t *testing.T) {
	for name, body := range map[string]string{
		"malformed": `{"guilds":`,
		"empty":     `{"guilds":[]}`,
		"no field":  `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			ts := newWebTestServer(t)
			ts.botAPI.respond("tok", body)

			rr := ts.login("tok")
			assert.Equal(t, http.StatusOK, rr.Code)

			doc := parseHTML(rr.Body)
			assertNotContainsElement(t, doc, ".guild-row")
			assertContainsElement(t, doc, ".empty-state")
			assertNotContainsElement(t, doc, ".flash-error")
		})
	}
}

func TestDashboardRejectedTokenRendersNoRows(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.login("expired")
	assert.Equal(t, http.StatusOK, rr.Code)
	assertNotContainsElement(t, parseHTML(rr.Body), ".guild-row")
}

func TestDashboardSearchFilters(t *testing.T) {
	ts := newWebTestServer(t)
	ts.botAPI.respond("tok", `{"total_admin_guilds":3,"guilds":[
		{"id":"1","name":"Survival Land"},
		{"id":"2","name":"Creative Hub"},
		{"id":"3","name":"survival two"}]}`)
	ts.login("tok")

	doc := parseHTML(ts.get("/dashboard?q=SURVIVAL").Body)
	names := doc.Find(".guild-row .guild-name").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"Survival Land", "survival two"}, names)

	doc = parseHTML(ts.get("/dashboard?q=nomatch").Body)
	assertNotContainsElement(t, doc, ".guild-row")
	assertContainsText(t, doc, ".empty-state", "nomatch")
}

func TestManageUnknownGuildRedirectsToList(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("abc123")

	rr := ts.get("/dashboard/999")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/dashboard", rr.Header().Get("Location"))
}

func TestManageStartsOnOverview(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("abc123")

	for _, path := range []string{"/dashboard/1", "/dashboard/1?tab=bogus"} {
		doc := parseHTML(ts.get(path).Body)
		assertContainsText(t, doc, "h1.guild-name", "Test")
		assertContainsText(t, doc, ".tab.active", "Overview")
		assertContainsElement(t, doc, `[data-panel="metrics"]`)
	}
}

func TestPlanGating(t *testing.T) {
	tests := []struct {
		plan          string
		metricsLocked bool
		consoleLocked bool
		historyLocked bool
	}{
		{"free", true, true, true},
		{"", true, true, true},
		{"gold", true, true, true},
		{"premium", false, false, true},
		{"premium_plus", false, false, false},
	}

	for _, tt := range tests {
		t.Run("plan "+tt.plan, func(t *testing.T) {
			ts := newWebTestServer(t)
			ts.botAPI.respond("tok", `{"guilds":[{"id":"7","name":"Gated","plan":"`+tt.plan+`"}]}`)
			ts.login("tok")

			overview := parseHTML(ts.get("/dashboard/7?tab=overview").Body)
			console := parseHTML(ts.get("/dashboard/7?tab=console").Body)

			assert.Equal(t, tt.metricsLocked, overview.Find(`[data-panel="metrics"] .locked-overlay`).Length() > 0, "metrics")
			assert.Equal(t, tt.historyLocked, overview.Find(`[data-panel="history"] .locked-overlay`).Length() > 0, "history")
			assert.Equal(t, tt.consoleLocked, console.Find(`[data-panel="console"] .locked-overlay`).Length() > 0, "console")
		})
	}
}

func TestPublishEmptyIPShowsValidationMessage(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("abc123")

	rr := ts.post("/dashboard/1/publish", url.Values{"name": {"Test"}, "ip": {"  "}, "type": {"survival"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/dashboard/1?tab=settings", rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", directory.MessageIPRequired)
	assertContainsElement(t, doc, `[data-panel="publish"] form`)

	assert.Empty(t, ts.app.Directory.List(t.Context()))
}

func TestPublishListsServerInDirectory(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("abc123")

	rr := ts.post("/dashboard/1/publish", url.Values{"name": {"Test SMP"}, "ip": {"play.test.gg"}, "type": {"skyblock"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-success", directory.MessagePublished)

	doc = parseHTML(ts.get("/servers").Body)
	assertContainsText(t, doc, ".server-row .server-name", "Test SMP")
	assertContainsText(t, doc, ".server-row .server-ip", "play.test.gg")
	assertContainsText(t, doc, ".server-row .plan-badge", "Premium")
}

func TestPublishRequiresSession(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/dashboard/1/publish", url.Values{"ip": {"play.test.gg"}, "type": {"survival"}})
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Empty(t, ts.app.Directory.List(t.Context()))
}

func TestLogoutClearsSession(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("abc123")

	rr := ts.post("/logout", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, ts.cookies.hasSession())

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-info", "logged out")

	rr = ts.get("/dashboard")
	assert.Equal(t, http.StatusFound, rr.Code)
}
