// Package session holds the single opaque bearer token that authorises
// calls to the bot API, and the page-shell rule for choosing it.
package session

// TokenKey is the fixed key the token is stored under
const TokenKey = "discord_token"

// Accessor reads and writes the session token. Implementations do not report
// storage failures: a failed write simply leaves the previous state.
type Accessor interface {
	// Get returns the last persisted token, or false if there is none
	Get() (string, bool)
	// Set persists the token with no expiry, replacing any previous one
	Set(token string)
	// Clear removes the token
	Clear()
}

// Resolve picks the token for a page load. A token carried in the URL is
// persisted and wins over whatever was stored before; otherwise the stored
// token is used. When neither exists ok is false and the caller should send
// the browser to the external login URL.
func Resolve(urlToken string, store Accessor) (token string, ok bool) {
	if urlToken != "" {
		store.Set(urlToken)
		return urlToken, true
	}
	return store.Get()
}

// Memory is an in-process Accessor
type Memory struct {
	token string
	set   bool
}

// NewMemory creates a Memory accessor, optionally holding a token
func NewMemory(token string) *Memory {
	return &Memory{token: token, set: token != ""}
}

func (m *Memory) Get() (string, bool) {
	return m.token, m.set
}

func (m *Memory) Set(token string) {
	m.token = token
	m.set = true
}

func (m *Memory) Clear() {
	m.token = ""
	m.set = false
}

var _ Accessor = (*Memory)(nil)
