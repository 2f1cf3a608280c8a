// Package logout deactivates the admin session.
package logout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/life-promo/studio-site/internal/config"
	"github.com/life-promo/studio-site/internal/session"
	"github.com/life-promo/studio-site/internal/web/handler"
	"github.com/life-promo/studio-site/internal/web/handler/admin/login"
)

const (
	// Path is the path to the admin logout action.
	Path = "/admin/logout"
)

// Service is the admin logout handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	deps *handler.Deps
}

// Handler is the admin logout handler.
var Handler = Service{}

// Init initializes the admin logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps

	app.Get(Path, s.Get)

	return nil
}

// Get deactivates the session and clears the admin cookie.
func (s *Service) Get(c *fiber.Ctx) error {
	if err := s.deps.Session.Deactivate(); err != nil {
		log.Error().Err(err).Msg("failed to deactivate admin session")
	}

	c.ClearCookie(session.CookieName)

	return c.Redirect(login.Path)
}
