// Package transfer bundles the four persisted collections into one JSON
// document for backup download, and restores them from such a document.
// Partial documents are accepted on import: keys absent from the document
// leave the corresponding stored values untouched.
package transfer

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/life-promo/studio-site/internal/store"
)

// Document is the export/import wire format. The collection fields carry the
// stored blobs verbatim; AdminPassword is the stored secret string (a hash
// once the default password was changed).
type Document struct {
	ExportedAt    string          `json:"exportedAt"`
	SiteContent   json.RawMessage `json:"site_content,omitempty"`
	Users         json.RawMessage `json:"users,omitempty"`
	ChatMessages  json.RawMessage `json:"chat_messages,omitempty"`
	AdminPassword string          `json:"admin_password,omitempty"`
}

// Export serializes whichever of the four keys exist into one document.
func Export(s store.Store) ([]byte, error) {
	doc := Document{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if raw, err := s.Get(store.KeySiteContent); err == nil {
		doc.SiteContent = json.RawMessage(raw)
	}

	if raw, err := s.Get(store.KeyUsers); err == nil {
		doc.Users = json.RawMessage(raw)
	}

	if raw, err := s.Get(store.KeyChatMessages); err == nil {
		doc.ChatMessages = json.RawMessage(raw)
	}

	if raw, err := s.Get(store.KeyAdminPassword); err == nil {
		doc.AdminPassword = string(raw)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize export document")
	}

	return out, nil
}

// Import restores the keys present in the document, overwriting their stored
// values; absent keys are left untouched.
func Import(s store.Store, data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "failed to parse import document")
	}

	if doc.SiteContent != nil {
		if err := s.Set(store.KeySiteContent, doc.SiteContent); err != nil {
			return err
		}
	}

	if doc.Users != nil {
		if err := s.Set(store.KeyUsers, doc.Users); err != nil {
			return err
		}
	}

	if doc.ChatMessages != nil {
		if err := s.Set(store.KeyChatMessages, doc.ChatMessages); err != nil {
			return err
		}
	}

	if doc.AdminPassword != "" {
		if err := s.Set(store.KeyAdminPassword, []byte(doc.AdminPassword)); err != nil {
			return err
		}
	}

	return nil
}
