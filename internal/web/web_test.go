package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/mcmonitor/internal/factory"
	"github.com/mcoot/mcmonitor/internal/session"
	"github.com/mcoot/mcmonitor/internal/testutil"
	"github.com/mcoot/mcmonitor/internal/web"
)

const testLoginURL = "https://bot.example.com/auth/login"

// fakeBotAPI stands in for the external guild listing. Responses are keyed
// by token; unknown tokens get a 401.
type fakeBotAPI struct {
	mu        sync.Mutex
	responses map[string]string
	tokens    []string
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	token := r.URL.Query().Get("token")
	f.tokens = append(f.tokens, token)

	body, ok := f.responses[token]
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (f *fakeBotAPI) respond(token, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[token] = body
}

func (f *fakeBotAPI) seenTokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tokens...)
}

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	botAPI  *fakeBotAPI
	cookies *cookieJar
}

// newWebTestServer creates a new test server with all dependencies wired
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	botAPI := &fakeBotAPI{responses: map[string]string{
		"abc123": `{"guilds":[{"id":"1","name":"Test","status":"online"}]}`,
	}}
	api := httptest.NewServer(botAPI)
	t.Cleanup(api.Close)

	app := factory.NewTestApp(api.URL + "/user/guilds")

	router := web.NewRouter(web.RouterConfig{
		Logger:    testutil.NopLogger(),
		Sessions:  app.Sessions,
		Guilds:    app.Guilds,
		Directory: app.Directory,
		Clock:     app.Clock,
		LoginURL:  testLoginURL,
		StaticDir: "", // No static files in tests
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		botAPI:  botAPI,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// Add cookies from jar
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	// Extract Set-Cookie headers into jar
	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// followRedirect follows a redirect and returns the response
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// login arrives at the dashboard the way the bot API's callback does and
// follows the token-stripping redirect
func (ts *webTestServer) login(token string) *httptest.ResponseRecorder {
	ts.t.Helper()
	rr := ts.get("/dashboard?token=" + url.QueryEscape(token))
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect dropping the token parameter")
	require.True(ts.t, ts.cookies.hasSession(), "Expected session cookie to be set")
	return ts.followRedirect(rr)
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// storedToken reads the session token the jar would send, the way the site does
func (ts *webTestServer) storedToken() string {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ts.cookies.addTo(req)
	token, _ := ts.app.Sessions.For(httptest.NewRecorder(), req).Get()
	return token
}

// hasSession returns true if the session cookie is set
func (j *cookieJar) hasSession() bool {
	_, ok := j.cookies[session.TokenKey]
	return ok
}

// Assertion helpers

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertNotContainsElement asserts that the document does not contain an element matching the selector
func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, doc.Find(selector).Length())
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}
