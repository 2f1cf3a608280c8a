// Package session tracks whether the admin is currently authenticated.
//
// The flag lives in the same key-value store as everything else, so an admin
// login deliberately survives process restarts. It gates rendering of the
// admin panel only; it is a UI-trust boundary, not a security boundary.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/life-promo/studio-site/internal/store"
)

// activeFlag is the literal value persisted under the session key.
// Plain string, not JSON.
const activeFlag = "true"

// CookieName is the browser cookie marking the authenticated admin browser.
const CookieName = "admin_session"

// Manager reads and writes the admin-authenticated flag.
type Manager struct {
	store store.Store
}

// NewManager creates a session manager over the given store.
func NewManager(s store.Store) *Manager {
	return &Manager{store: s}
}

// IsActive reports whether the admin is currently authenticated.
func (m *Manager) IsActive() bool {
	raw, err := m.store.Get(store.KeyAdminSession)
	if err != nil {
		return false
	}

	return string(raw) == activeFlag
}

// Matches reports whether the given cookie token is the one handed out by
// the last Activate. An empty token never matches.
func (m *Manager) Matches(token string) bool {
	if token == "" {
		return false
	}

	raw, err := m.store.Get(store.KeyAdminSessionToken)
	if err != nil {
		return false
	}

	return string(raw) == token
}

// Activate marks the admin as authenticated and returns a fresh cookie
// token. The token is persisted alongside the flag, so only the browser
// that completed the login passes Matches.
func (m *Manager) Activate() (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}

	if err := m.store.Set(store.KeyAdminSession, []byte(activeFlag)); err != nil {
		return "", err
	}

	if err := m.store.Set(store.KeyAdminSessionToken, []byte(token)); err != nil {
		return "", err
	}

	return token, nil
}

// Deactivate clears the authenticated flag and the stored token. A missing
// key is not an error; the session is simply already inactive.
func (m *Manager) Deactivate() error {
	for _, key := range []string{store.KeyAdminSession, store.KeyAdminSessionToken} {
		if err := m.store.Remove(key); err != nil && !errors.Is(err, store.ErrKeyNotFound) {
			return err
		}
	}

	return nil
}

// GenerateToken generates a new secure random session token.
func GenerateToken() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
