// Package service defines the domain service interfaces that the use cases
// depend on. Concrete implementations live under internal/infra.
package service

import "context"

// TokenStore is the durable home of the session token, the one piece of
// client state that survives restarts.
//
// Single-writer rule: only the session manager calls Save and Clear. Every
// other component, the REST client included, reads the token and nothing
// else, so concurrent requests never race on writes.
type TokenStore interface {
	// Load returns the stored token, or "" when none is stored. A corrupt
	// or unreadable store reads as absent, never as an error the caller
	// has to handle specially.
	Load(ctx context.Context) (string, error)

	// Save persists the token, replacing any previous one.
	Save(ctx context.Context, token string) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
