package content

import (
	"github.com/rs/zerolog/log"

	"github.com/life-promo/studio-site/internal/codec"
	"github.com/life-promo/studio-site/internal/store"
)

// Repository persists the Content collection under its fixed key and fans
// saved values out to subscribers in the same process.
type Repository struct {
	store       store.Store
	subscribers []func(Content)
}

// NewRepository creates a content repository over the given store.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

// Default returns a deep copy of the built-in seed content.
func Default() Content {
	return codec.Clone(defaultContent)
}

// Load reads the persisted content, falling back to a fresh copy of the
// built-in seed when nothing is stored or the stored value fails to decode.
func (r *Repository) Load() Content {
	return codec.Load(r.store, store.KeySiteContent, defaultContent)
}

// Save replaces the persisted content wholesale and notifies subscribers.
func (r *Repository) Save(c Content) error {
	if err := codec.Save(r.store, store.KeySiteContent, c); err != nil {
		return err
	}

	log.Info().
		Int("services", len(c.Services)).
		Int("blog_posts", len(c.Blog)).
		Msg("site content saved")

	for _, notify := range r.subscribers {
		notify(c)
	}

	return nil
}

// Refresh re-reads the persisted content and notifies subscribers. Call it
// after the store was written behind the repository's back, such as a
// backup restore.
func (r *Repository) Refresh() {
	c := r.Load()

	for _, notify := range r.subscribers {
		notify(c)
	}
}

// Subscribe registers a callback invoked with the new value after every
// successful Save. Not safe for registration after the web service started.
func (r *Repository) Subscribe(fn func(Content)) {
	r.subscribers = append(r.subscribers, fn)
}
