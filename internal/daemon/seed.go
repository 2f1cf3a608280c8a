package daemon

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/life-promo/studio-site/internal/codec"
	"github.com/life-promo/studio-site/internal/content"
	"github.com/life-promo/studio-site/internal/store"
)

// seed writes the default site content on first start. An already present
// value, even a corrupted one, is left alone.
func seed(kv store.Store) {
	_, err := kv.Get(store.KeySiteContent)
	if err == nil {
		return
	}

	if !errors.Is(err, store.ErrKeyNotFound) && !errors.Is(err, store.ErrKeyEmpty) {
		log.Error().Err(err).Msg("failed to check site content, skipping seed")
		return
	}

	if err := codec.Save(kv, store.KeySiteContent, content.Default()); err != nil {
		log.Error().Err(err).Msg("failed to seed default site content")
		return
	}

	log.Info().Msg("seeded default site content")
}
