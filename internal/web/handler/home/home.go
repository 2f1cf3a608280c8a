// Package home serves the public marketing page rendered from the content
// collection.
package home

import (
	"errors"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"

	"github.com/life-promo/studio-site/internal/config"
	"github.com/life-promo/studio-site/internal/content"
	"github.com/life-promo/studio-site/internal/web/handler"
)

const (
	// Path is the path to the public page.
	Path = handler.RootPath

	// TemplateName is the name of the public page template.
	TemplateName = "home"
)

// Service is the public page handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	deps *handler.Deps

	// current holds the latest saved content so admin saves propagate to
	// public renders without a store read per request.
	current atomic.Pointer[content.Content]
}

// Handler is the public page handler.
var Handler = Service{}

// Init initializes the public page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps

	loaded := deps.Content.Load()
	s.current.Store(&loaded)

	// keep the cached copy warm on every admin save
	deps.Content.Subscribe(func(c content.Content) {
		s.current.Store(&c)
	})

	app.Get(Path, s.Get)

	return nil
}

// Get handles the public page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	data := s.current.Load()

	return c.Render(TemplateName, fiber.Map{
		"Title":   s.cfg.Title,
		"Content": data,
	}, handler.BaseLayout)
}
