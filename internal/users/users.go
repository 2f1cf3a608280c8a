// Package users implements the visitor directory: registration and the
// username-only login used by the chat. The whole collection is persisted
// as one JSON sequence and replaced wholesale on every change.
package users

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/life-promo/studio-site/internal/codec"
	"github.com/life-promo/studio-site/internal/store"
)

// User is one registered visitor. Username is the login key and is unique
// case-sensitively across the collection.
type User struct {
	ID           string `json:"id"`
	Username     string `form:"username" json:"username"`
	Phone        string `form:"phone"    json:"phone,omitempty"`
	Email        string `form:"email"    json:"email,omitempty"`
	Telegram     string `form:"telegram" json:"telegram,omitempty"`
	Avatar       string `form:"avatar"   json:"avatar"`
	RegisteredAt string `json:"registeredAt"`
	LastLogin    string `json:"lastLogin"`
}

// Repository persists the users collection under its fixed key.
type Repository struct {
	store store.Store
	now   func() time.Time
}

// NewRepository creates a users repository over the given store.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s, now: time.Now}
}

// List returns all registered users, empty when none registered yet.
func (r *Repository) List() []User {
	return codec.Load(r.store, store.KeyUsers, []User{})
}

// Register validates the candidate and appends it with a fresh id and
// registration timestamps. Identity is established by username alone; there
// is no password for ordinary users.
func (r *Repository) Register(candidate User) (User, error) {
	if strings.TrimSpace(candidate.Username) == "" {
		return User{}, ErrMissingUsername
	}

	if candidate.Phone == "" && candidate.Email == "" && candidate.Telegram == "" {
		return User{}, ErrMissingContactMethod
	}

	all := r.List()

	for _, u := range all {
		if u.Username == candidate.Username {
			return User{}, ErrDuplicateUsername
		}
	}

	now := r.now()
	candidate.ID = strconv.FormatInt(now.UnixNano(), 10)
	candidate.RegisteredAt = now.UTC().Format(time.RFC3339)
	candidate.LastLogin = candidate.RegisteredAt

	if candidate.Avatar == "" {
		candidate.Avatar = DefaultAvatar
	}

	all = append(all, candidate)

	if err := codec.Save(r.store, store.KeyUsers, all); err != nil {
		return User{}, err
	}

	log.Info().Str("username", candidate.Username).Msg("user registered")

	return candidate, nil
}

// Login looks the user up by exact username match, bumps its LastLogin and
// persists the whole collection with that one record replaced.
func (r *Repository) Login(username string) (User, error) {
	all := r.List()

	for i, u := range all {
		if u.Username == username {
			u.LastLogin = r.now().UTC().Format(time.RFC3339)
			all[i] = u

			if err := codec.Save(r.store, store.KeyUsers, all); err != nil {
				return User{}, err
			}

			log.Info().Str("username", username).Msg("user logged in")

			return u, nil
		}
	}

	return User{}, ErrNotFound
}

// Get looks the user up by id.
func (r *Repository) Get(id string) (User, error) {
	for _, u := range r.List() {
		if u.ID == id {
			return u, nil
		}
	}

	return User{}, ErrNotFound
}
