// Package models contains database model definitions.
package models

// Entry represents one persisted key of the site's key-value store.
// Collections (content, users, chat transcript, admin credential) are
// serialized wholesale into Value under their fixed key name.
type Entry struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"unique"`
	Value []byte `gorm:"type:blob"`
}
