// Package credential guards the admin panel with a single shared secret.
//
// The secret is persisted as an argon2id hash under its fixed key. While no
// credential has ever been set, Verify falls back to the publicly documented
// default password, so a fresh install is reachable.
package credential

import (
	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"

	"github.com/life-promo/studio-site/internal/store"
)

// DefaultPassword is the publicly known secret of a fresh install. It stops
// working the moment an admin changes the password.
const DefaultPassword = "admin123"

// MinLength is the minimum accepted password length.
const MinLength = 6

// Repository persists the admin credential under its fixed key.
type Repository struct {
	store store.Store
}

// NewRepository creates a credential repository over the given store.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// Verify reports whether attempt matches the persisted secret, or the
// default password while no secret was ever persisted.
func (r *Repository) Verify(attempt string) bool {
	raw, err := r.store.Get(store.KeyAdminPassword)
	if err != nil || len(raw) == 0 {
		return attempt == DefaultPassword
	}

	match, err := argon2id.ComparePasswordAndHash(attempt, string(raw))
	if err != nil {
		log.Error().Err(err).Msg("failed to verify admin password")
		return false
	}

	return match
}

// Change validates and persists a new secret. The confirmation value must
// equal the new secret; prior state is unchanged on any error.
func (r *Repository) Change(newSecret, confirm string) error {
	if newSecret == "" {
		return ErrEmpty
	}

	if len(newSecret) < MinLength {
		return ErrTooShort
	}

	if newSecret != confirm {
		return ErrMismatch
	}

	hash, err := argon2id.CreateHash(newSecret, argon2id.DefaultParams)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash admin password")
		return err
	}

	if err := r.store.Set(store.KeyAdminPassword, []byte(hash)); err != nil {
		return err
	}

	log.Info().Msg("admin password changed")

	return nil
}
