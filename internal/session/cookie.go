package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var errUnsealable = errors.New("session cookie cannot be opened")

// CookieStore keeps the token in a browser cookie named after TokenKey.
// Values are always base64url encoded, since net/http drops bytes a cookie
// may not carry. With a secret they are also sealed with NaCl secretbox so
// the raw token never reaches the browser.
type CookieStore struct {
	key    *[32]byte
	secure bool
}

// NewCookieStore creates a CookieStore. An empty secret stores the token
// encoded but unsealed.
func NewCookieStore(secret string, secure bool) *CookieStore {
	s := &CookieStore{secure: secure}
	if secret != "" {
		key := sha256.Sum256([]byte(secret))
		s.key = &key
	}
	return s
}

// For binds the store to a single request/response exchange
func (s *CookieStore) For(w http.ResponseWriter, r *http.Request) Accessor {
	return &cookieAccessor{store: s, w: w, r: r}
}

type cookieAccessor struct {
	store *CookieStore
	w     http.ResponseWriter
	r     *http.Request

	// pending reflects writes made during this exchange
	pending *string
}

func (a *cookieAccessor) Get() (string, bool) {
	if a.pending != nil {
		return *a.pending, *a.pending != ""
	}
	cookie, err := a.r.Cookie(TokenKey)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	token, err := a.store.open(cookie.Value)
	if err != nil {
		return "", false
	}
	return token, true
}

func (a *cookieAccessor) Set(token string) {
	value, err := a.store.seal(token)
	if err != nil {
		return
	}
	a.pending = &token
	http.SetCookie(a.w, &http.Cookie{
		Name:     TokenKey,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.store.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *cookieAccessor) Clear() {
	empty := ""
	a.pending = &empty
	http.SetCookie(a.w, &http.Cookie{
		Name:     TokenKey,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   a.store.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *CookieStore) seal(token string) (string, error) {
	if s.key == nil {
		return base64.RawURLEncoding.EncodeToString([]byte(token)), nil
	}
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", err
	}
	sealed := secretbox.Seal(nonce[:], []byte(token), &nonce, s.key)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (s *CookieStore) open(value string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return "", errUnsealable
	}
	if s.key == nil {
		return string(raw), nil
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return "", errUnsealable
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, s.key)
	if !ok {
		return "", errUnsealable
	}
	return string(plain), nil
}
