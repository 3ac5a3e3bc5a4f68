package model

import "errors"

// Common errors used across the application
var (
	// Directory errors
	ErrServerNotFound = errors.New("server not found")
	ErrInvalidServer  = errors.New("invalid server")

	// Guild errors
	ErrGuildNotFound = errors.New("guild not found")

	// Session errors
	ErrNoToken = errors.New("no session token")
)
