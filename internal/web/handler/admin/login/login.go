// Package login provides the admin panel login handler.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/life-promo/studio-site/internal/config"
	"github.com/life-promo/studio-site/internal/session"
	"github.com/life-promo/studio-site/internal/web/handler"
)

const (
	// Path is the path to the admin login page.
	Path = "/admin/login"

	// TemplateName is the name of the admin login template.
	TemplateName = "admin/login"
)

// Service is the admin login handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	deps *handler.Deps
}

// Handler is the admin login handler.
var Handler = Service{}

// Init initializes the admin login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get handles the admin login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"Title": s.cfg.Title,
	}, handler.BaseLayout)
}

// Post handles the admin login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	password := c.FormValue("password")

	if !s.deps.Credential.Verify(password) {
		log.Warn().Str("ip", c.IP()).Msg("failed admin login attempt")

		return c.Render(TemplateName, fiber.Map{
			"Title": s.cfg.Title,
			"Error": "Неверный пароль",
		}, handler.BaseLayout)
	}

	token, err := s.deps.Session.Activate()
	if err != nil {
		log.Error().Err(err).Msg("failed to activate admin session")

		return c.Render(TemplateName, fiber.Map{
			"Title": s.cfg.Title,
			"Error": "Внутренняя ошибка сервера",
		}, handler.BaseLayout)
	}

	cookieSettings := &fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	log.Info().Str("ip", c.IP()).Msg("admin logged in")

	return c.Redirect("/admin/content")
}
