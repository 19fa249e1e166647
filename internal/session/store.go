package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// Data is what a session carries server-side. The cookie token only
// names the session; this is where the identity actually lives.
type Data struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Store persists session data keyed by session ID. Implementations
// must expire entries after the given TTL; the TTL is absolute, not
// sliding.
type Store interface {
	// Set stores data under the session ID with the given TTL
	Set(ctx context.Context, sid string, data Data, ttl time.Duration) error
	// Get retrieves data for a session ID, ErrNotFound if missing or expired
	Get(ctx context.Context, sid string) (Data, error)
	// Delete removes a session; deleting a missing session is not an error
	Delete(ctx context.Context, sid string) error
}
