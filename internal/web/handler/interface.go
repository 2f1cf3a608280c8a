package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/life-promo/studio-site/internal/chat"
	"github.com/life-promo/studio-site/internal/config"
	"github.com/life-promo/studio-site/internal/content"
	"github.com/life-promo/studio-site/internal/credential"
	"github.com/life-promo/studio-site/internal/session"
	"github.com/life-promo/studio-site/internal/store"
	"github.com/life-promo/studio-site/internal/users"
)

// Deps bundles the collection repositories handlers operate on. Call sites
// never touch raw store keys directly.
type Deps struct {
	Store      store.Store
	Content    *content.Repository
	Users      *users.Repository
	Chat       *chat.Repository
	Credential *credential.Repository
	Session    *session.Manager
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, deps *Deps) error
}
