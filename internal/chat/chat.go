// Package chat implements the shared visitor chat transcript. There is one
// global channel: all users and the admin see the same append-only sequence,
// distinguished only by the IsAdmin flag on each message.
package chat

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/life-promo/studio-site/internal/codec"
	"github.com/life-promo/studio-site/internal/store"
)

// ErrEmptyText is returned when an appended message has no visible text.
var ErrEmptyText = errors.New("message text cannot be empty")

// Message is one transcript entry. Messages are never edited, deleted or
// reordered once appended; insertion order is the total order.
type Message struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	IsAdmin   bool   `json:"isAdmin"`
}

// Repository persists the transcript under its fixed key.
type Repository struct {
	store store.Store
	now   func() time.Time
}

// NewRepository creates a chat repository over the given store.
func NewRepository(s store.Store) *Repository {
	return &Repository{store: s, now: time.Now}
}

// List returns the full transcript in insertion order.
func (r *Repository) List() []Message {
	return codec.Load(r.store, store.KeyChatMessages, []Message{})
}

// Append assigns id and timestamp, adds the message to the end of the
// transcript and persists the whole sequence.
func (r *Repository) Append(msg Message) (Message, error) {
	msg.Text = strings.TrimSpace(msg.Text)
	if msg.Text == "" {
		return Message{}, ErrEmptyText
	}

	msg.ID = uuid.NewString()
	msg.Timestamp = r.now().UTC().Format(time.RFC3339)

	all := append(r.List(), msg)

	if err := codec.Save(r.store, store.KeyChatMessages, all); err != nil {
		return Message{}, err
	}

	return msg, nil
}

// UserMessageCount returns how many non-admin messages the transcript holds,
// shown as the unread badge on the minimized chat.
func (r *Repository) UserMessageCount() int {
	count := 0

	for _, m := range r.List() {
		if !m.IsAdmin {
			count++
		}
	}

	return count
}
