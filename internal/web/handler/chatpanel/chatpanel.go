// Package chatpanel serves the shared chat transcript for visitors and for
// the admin. Everyone sees the same global channel; only the IsAdmin flag
// on each message differs.
package chatpanel

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/life-promo/studio-site/internal/chat"
	"github.com/life-promo/studio-site/internal/config"
	"github.com/life-promo/studio-site/internal/session"
	"github.com/life-promo/studio-site/internal/users"
	"github.com/life-promo/studio-site/internal/web/handler"
	"github.com/life-promo/studio-site/internal/web/handler/account"
)

const (
	// Path is the base path of the chat page.
	Path = "/chat"

	// TemplateName is the name of the chat template.
	TemplateName = "chat"

	// AdminUsername labels transcript entries written by the admin.
	AdminUsername = "Life-Promo"

	// AdminAvatar is the glyph shown next to admin messages.
	AdminAvatar = "👨‍💼"
)

// Service is the chat handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	deps *handler.Deps
}

// Handler is the chat handler.
var Handler = Service{}

// Init initializes the chat handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// isAdmin reports whether the request comes from the authenticated admin
// browser: the persisted flag must be set and the cookie token must match.
func (s *Service) isAdmin(c *fiber.Ctx) bool {
	return s.deps.Session.IsActive() && s.deps.Session.Matches(c.Cookies(session.CookieName))
}

// currentUser resolves the visitor from the uid cookie.
func (s *Service) currentUser(c *fiber.Ctx) (users.User, bool) {
	id := c.Cookies(account.CookieName)
	if id == "" {
		return users.User{}, false
	}

	user, err := s.deps.Users.Get(id)
	if err != nil {
		return users.User{}, false
	}

	return user, true
}

// Get handles the chat page rendering. The transcript is not filtered per
// viewer: admin and visitors read the same sequence.
func (s *Service) Get(c *fiber.Ctx) error {
	isAdmin := s.isAdmin(c)

	user, ok := s.currentUser(c)
	if !ok && !isAdmin {
		return c.Redirect(account.Path)
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":       s.cfg.Title,
		"Messages":    s.deps.Chat.List(),
		"User":        user,
		"IsAdmin":     isAdmin,
		"UnreadCount": s.deps.Chat.UserMessageCount(),
	}, handler.BaseLayout)
}

// Post appends a message to the transcript.
func (s *Service) Post(c *fiber.Ctx) error {
	isAdmin := s.isAdmin(c)

	msg := chat.Message{
		Text:    c.FormValue("text"),
		IsAdmin: isAdmin,
	}

	if isAdmin {
		msg.Username = AdminUsername
		msg.Avatar = AdminAvatar
	} else {
		user, ok := s.currentUser(c)
		if !ok {
			return c.Redirect(account.Path)
		}

		msg.UserID = user.ID
		msg.Username = user.Username
		msg.Avatar = user.Avatar
	}

	if _, err := s.deps.Chat.Append(msg); err != nil && !errors.Is(err, chat.ErrEmptyText) {
		log.Error().Err(err).Msg("failed to append chat message")
	}

	return c.Redirect(Path)
}
