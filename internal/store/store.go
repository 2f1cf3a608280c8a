// Package store provides the persistent key-value substrate all collections
// are built on. Values are written wholesale per key; there are no
// transactions across keys.
package store

import (
	"errors"
)

// Well-known keys of the persisted collections.
const (
	KeySiteContent   = "site_content"
	KeyUsers         = "users"
	KeyChatMessages  = "chat_messages"
	KeyAdminPassword = "admin_password"
	KeyAdminSession  = "admin_authenticated"
	// KeyAdminSessionToken holds the cookie token of the browser that
	// completed the admin login. Not part of backup documents.
	KeyAdminSessionToken = "admin_session_token"
)

var (
	// ErrKeyNotFound is returned when a key is not present in the store.
	ErrKeyNotFound = errors.New("key not found")
	// ErrKeyEmpty is returned when attempting an operation with an empty key.
	ErrKeyEmpty = errors.New("key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Store is a string-keyed byte-value store durable across restarts.
type Store interface {
	// Get retrieves the value under key, ErrKeyNotFound if absent.
	Get(key string) ([]byte, error)
	// Set creates or replaces the value under key.
	Set(key string, value []byte) error
	// Remove deletes the key, ErrKeyNotFound if absent.
	Remove(key string) error
}
