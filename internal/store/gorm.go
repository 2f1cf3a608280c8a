package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/life-promo/studio-site/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

// Gorm is a Store over a gorm database with a single entries table.
type Gorm struct {
	db *gorm.DB
}

// NewGorm creates a Store backed by the given gorm database.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Get retrieves the value stored under key.
func (g *Gorm) Get(key string) ([]byte, error) {
	if g.db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrKeyEmpty
	}

	var entry models.Entry
	result := g.db.Where(nameQueryPattern, key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, result.Error
	}

	return entry.Value, nil
}

// Set creates or updates the value under key (upsert operation).
func (g *Gorm) Set(key string, value []byte) error {
	if g.db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrKeyEmpty
	}

	var entry models.Entry
	result := g.db.Where(nameQueryPattern, key).First(&entry)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// Key doesn't exist, create it
		entry = models.Entry{Name: key, Value: value}
		return g.db.Create(&entry).Error
	}
	if result.Error != nil {
		return result.Error
	}

	// Key exists, update it
	entry.Value = value

	return g.db.Save(&entry).Error
}

// Remove deletes the key from the store.
func (g *Gorm) Remove(key string) error {
	if g.db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrKeyEmpty
	}

	result := g.db.Where(nameQueryPattern, key).Delete(&models.Entry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrKeyNotFound
	}

	return nil
}
