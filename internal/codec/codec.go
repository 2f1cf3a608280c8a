// Package codec maps typed collections to and from the stored JSON strings.
//
// Decoding fails soft: a missing key or malformed blob yields the supplied
// default instead of an error, so corrupted persisted state silently resets
// rather than blocking the site.
package codec

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/life-promo/studio-site/internal/store"
)

// Decode parses raw JSON into T. On empty or malformed input it returns a
// fresh copy of def; the parse error is only logged at debug level.
func Decode[T any](raw []byte, def T) T {
	if len(raw) == 0 {
		return Clone(def)
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Debug().Err(err).Msg("malformed persisted value, substituting default")

		return Clone(def)
	}

	return v
}

// Encode serializes v to JSON. Model values are assumed serializable; a
// marshal failure is logged and yields nil.
func Encode[T any](v T) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode value")

		return nil
	}

	return data
}

// Clone returns a deep copy of v via a JSON round trip, so that mutating a
// decoded value never corrupts a shared default template.
func Clone[T any](v T) T {
	var out T

	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to clone value")

		return v
	}

	if err := json.Unmarshal(data, &out); err != nil {
		log.Error().Err(err).Msg("failed to clone value")

		return v
	}

	return out
}

// Load reads and decodes the collection under key, substituting def when the
// key is absent or its value malformed.
func Load[T any](s store.Store, key string, def T) T {
	raw, err := s.Get(key)
	if err != nil {
		return Clone(def)
	}

	return Decode(raw, def)
}

// Save encodes v and writes it wholesale under key.
func Save[T any](s store.Store, key string, v T) error {
	return s.Set(key, Encode(v))
}
