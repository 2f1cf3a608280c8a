// Package transferpanel implements the admin backup page: export of all
// persisted collections as one JSON document and restore from such a
// document.
package transferpanel

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/life-promo/studio-site/internal/config"
	"github.com/life-promo/studio-site/internal/transfer"
	"github.com/life-promo/studio-site/internal/web/handler"
	"github.com/life-promo/studio-site/internal/web/navigation"
)

const (
	// Path is the base path of the backup page.
	Path = "/admin/transfer"

	// TemplateName is the name of the backup page template.
	TemplateName = "admin/transfer"

	// ExportFileName is the attachment name of the downloaded document.
	ExportFileName = "studio-site-backup.json"
)

// Service is the backup page handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	deps *handler.Deps
}

// Handler is the backup page handler.
var Handler = Service{}

// Init initializes the backup page handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Get("/export", s.Export)
		router.Post("/import", s.Import)
	})

	return nil
}

func nav() *navigation.Context {
	return navigation.NewContext("Резервная копия", "admin", "transfer").
		AddBreadcrumb("Админка", "/admin/content", false).
		AddBreadcrumb("Резервная копия", Path, true)
}

// Get handles the backup page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav(),
	}, handler.BaseLayout)
}

// Export streams all persisted collections as one JSON document download.
func (s *Service) Export(c *fiber.Ctx) error {
	doc, err := transfer.Export(s.deps.Store)
	if err != nil {
		log.Error().Err(err).Msg("failed to export collections")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateName, fiber.Map{
			"Title":      s.cfg.Title,
			"Navigation": nav(),
			"Error":      "Не удалось создать резервную копию",
		}, handler.BaseLayout)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+ExportFileName+`"`)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return c.Send(doc)
}

// Import restores collections from an uploaded document. Keys absent from
// the document are left untouched.
func (s *Service) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("backup")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).Render(TemplateName, fiber.Map{
			"Title":      s.cfg.Title,
			"Navigation": nav(),
			"Error":      "Файл не выбран",
		}, handler.BaseLayout)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open import upload")

		return c.Status(fiber.StatusBadRequest).Render(TemplateName, fiber.Map{
			"Title":      s.cfg.Title,
			"Navigation": nav(),
			"Error":      "Не удалось прочитать файл",
		}, handler.BaseLayout)
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("failed to read import upload")

		return c.Status(fiber.StatusBadRequest).Render(TemplateName, fiber.Map{
			"Title":      s.cfg.Title,
			"Navigation": nav(),
			"Error":      "Не удалось прочитать файл",
		}, handler.BaseLayout)
	}

	if err := transfer.Import(s.deps.Store, data); err != nil {
		log.Error().Err(err).Msg("failed to import collections")

		return c.Status(fiber.StatusBadRequest).Render(TemplateName, fiber.Map{
			"Title":      s.cfg.Title,
			"Navigation": nav(),
			"Error":      "Файл повреждён или имеет неверный формат",
		}, handler.BaseLayout)
	}

	// the document bypasses the content repository, so subscribers have to
	// be told about the restored value themselves
	s.deps.Content.Refresh()

	log.Info().Str("file", fileHeader.Filename).Msg("collections imported")

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav(),
		"Success":    "Данные восстановлены",
	}, handler.BaseLayout)
}
