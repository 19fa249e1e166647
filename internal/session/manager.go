package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for tokens that fail signature or
// structural checks. Callers treat it the same as a missing session.
var ErrInvalidToken = errors.New("invalid session token")

// Manager issues and resolves session tokens. The token handed to the
// client is a signed JWT that carries only the session ID; identity
// data stays in the Store. Expiry is absolute from login, it is not
// refreshed on activity.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

// NewManager creates a new Manager
func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the absolute session lifetime, used for the cookie Max-Age.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create starts a new session for the given identity and returns the
// signed token to hand to the client.
func (m *Manager) Create(ctx context.Context, data Data) (string, error) {
	sid := uuid.New().String()

	if err := m.store.Set(ctx, sid, data, m.ttl); err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"exp": now.Add(m.ttl).Unix(),
		"iat": now.Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		// Token could not be issued; do not leave an orphan session behind.
		_ = m.store.Delete(ctx, sid)
		return "", err
	}
	return signed, nil
}

// Resolve returns the session data for a client token. Tampered,
// expired and unknown tokens all yield ErrNotFound so callers only
// distinguish "logged in" from "not logged in".
func (m *Manager) Resolve(ctx context.Context, tokenString string) (Data, error) {
	sid, err := m.parseSID(tokenString)
	if err != nil {
		return Data{}, ErrNotFound
	}
	return m.store.Get(ctx, sid)
}

// Destroy ends the session named by the token. It is idempotent:
// destroying a bogus or already-expired token succeeds silently.
func (m *Manager) Destroy(ctx context.Context, tokenString string) error {
	sid, err := m.parseSID(tokenString)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, sid)
}

func (m *Manager) parseSID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidToken
	}
	return sid, nil
}
