// Package contentpanel implements the content-admin panel: the tabbed
// editor for services, blog posts and contact details.
package contentpanel

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/life-promo/studio-site/internal/config"
	"github.com/life-promo/studio-site/internal/content"
	"github.com/life-promo/studio-site/internal/upload"
	"github.com/life-promo/studio-site/internal/web/handler"
	"github.com/life-promo/studio-site/internal/web/navigation"
)

const (
	// Path is the base path of the content panel.
	Path = "/admin/content"

	// TemplateName is the name of the content panel template.
	TemplateName = "admin/content"

	// TabServices is the services editor tab.
	TabServices = "services"

	// TabBlog is the blog editor tab.
	TabBlog = "blog"

	// TabContact is the contact editor tab.
	TabContact = "contact"
)

// Service is the content panel handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	deps *handler.Deps
}

// Handler is the content panel handler.
var Handler = Service{}

// Init initializes the content panel handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps

	// redirect the bare admin root into the panel
	app.Get("/admin", func(c *fiber.Ctx) error {
		return c.Redirect(Path)
	})

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)

		router.Post("/services/add", s.AddService)
		router.Post("/services/:index/delete", s.DeleteService)
		router.Post("/services/:index/image", s.UploadServiceImage)
		router.Post("/services/:index", s.UpdateService)

		router.Post("/blog/add", s.AddBlogPost)
		router.Post("/blog/:index/delete", s.DeleteBlogPost)
		router.Post("/blog/:index/image", s.UploadBlogPostImage)
		router.Post("/blog/:index", s.UpdateBlogPost)

		router.Post("/contact", s.UpdateContact)
	})

	return nil
}

func nav(tab string) *navigation.Context {
	return navigation.NewContext("Панель администратора", "admin", tab).
		AddBreadcrumb("Сайт", handler.RootPath, false).
		AddBreadcrumb("Админка", Path, true)
}

func activeTab(c *fiber.Ctx) string {
	tab := c.Query("tab", TabServices)
	if tab != TabServices && tab != TabBlog && tab != TabContact {
		tab = TabServices
	}

	return tab
}

func redirectToTab(c *fiber.Ctx, tab string) error {
	return c.Redirect(Path + "?tab=" + tab)
}

// Get handles the panel rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	tab := activeTab(c)

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav(tab),
		"ActiveTab":  tab,
		"Content":    s.deps.Content.Load(),
		"Error":      c.Query("error", ""),
	}, handler.BaseLayout)
}

// AddService appends a default-valued service and persists.
func (s *Service) AddService(c *fiber.Ctx) error {
	if err := s.deps.Content.Save(content.AddService(s.deps.Content.Load())); err != nil {
		log.Error().Err(err).Msg("failed to add service")
	}

	return redirectToTab(c, TabServices)
}

// DeleteService removes the service at the posted index and persists.
// Indices into the list held from before the delete are invalid afterwards;
// the redirect forces the panel to re-read the renumbered sequence.
func (s *Service) DeleteService(c *fiber.Ctx) error {
	i, err := c.ParamsInt("index")
	if err != nil {
		return redirectToTab(c, TabServices)
	}

	if err := s.deps.Content.Save(content.DeleteService(s.deps.Content.Load(), i)); err != nil {
		log.Error().Err(err).Msg("failed to delete service")
	}

	return redirectToTab(c, TabServices)
}

// UpdateService replaces the editable fields of the service at the posted index.
func (s *Service) UpdateService(c *fiber.Ctx) error {
	i, err := c.ParamsInt("index")
	if err != nil {
		return redirectToTab(c, TabServices)
	}

	data := s.deps.Content.Load()
	for _, field := range []string{content.FieldIcon, content.FieldTitle, content.FieldDescription} {
		data = content.UpdateServiceField(data, i, field, c.FormValue(field))
	}

	if err := s.deps.Content.Save(data); err != nil {
		log.Error().Err(err).Msg("failed to update service")
	}

	return redirectToTab(c, TabServices)
}

// UploadServiceImage attaches an uploaded image to the service at the posted index.
func (s *Service) UploadServiceImage(c *fiber.Ctx) error {
	i, err := c.ParamsInt("index")
	if err != nil {
		return redirectToTab(c, TabServices)
	}

	uri, err := s.readImage(c)
	if err != nil {
		return c.Redirect(Path + "?tab=" + TabServices + "&error=" + uploadErrorMessage(err))
	}

	data := content.UpdateServiceField(s.deps.Content.Load(), i, content.FieldImage, uri)

	if err := s.deps.Content.Save(data); err != nil {
		log.Error().Err(err).Msg("failed to save service image")
	}

	return redirectToTab(c, TabServices)
}

// AddBlogPost appends a default-valued post and persists.
func (s *Service) AddBlogPost(c *fiber.Ctx) error {
	if err := s.deps.Content.Save(content.AddBlogPost(s.deps.Content.Load())); err != nil {
		log.Error().Err(err).Msg("failed to add blog post")
	}

	return redirectToTab(c, TabBlog)
}

// DeleteBlogPost removes the post at the posted index and persists.
func (s *Service) DeleteBlogPost(c *fiber.Ctx) error {
	i, err := c.ParamsInt("index")
	if err != nil {
		return redirectToTab(c, TabBlog)
	}

	if err := s.deps.Content.Save(content.DeleteBlogPost(s.deps.Content.Load(), i)); err != nil {
		log.Error().Err(err).Msg("failed to delete blog post")
	}

	return redirectToTab(c, TabBlog)
}

// UpdateBlogPost replaces the editable fields of the post at the posted index.
func (s *Service) UpdateBlogPost(c *fiber.Ctx) error {
	i, err := c.ParamsInt("index")
	if err != nil {
		return redirectToTab(c, TabBlog)
	}

	data := s.deps.Content.Load()
	fields := []string{
		content.FieldCategory,
		content.FieldTitle,
		content.FieldExcerpt,
		content.FieldDate,
		content.FieldIcon,
	}

	for _, field := range fields {
		data = content.UpdateBlogPostField(data, i, field, c.FormValue(field))
	}

	if err := s.deps.Content.Save(data); err != nil {
		log.Error().Err(err).Msg("failed to update blog post")
	}

	return redirectToTab(c, TabBlog)
}

// UploadBlogPostImage attaches an uploaded image to the post at the posted index.
func (s *Service) UploadBlogPostImage(c *fiber.Ctx) error {
	i, err := c.ParamsInt("index")
	if err != nil {
		return redirectToTab(c, TabBlog)
	}

	uri, err := s.readImage(c)
	if err != nil {
		return c.Redirect(Path + "?tab=" + TabBlog + "&error=" + uploadErrorMessage(err))
	}

	data := content.UpdateBlogPostField(s.deps.Content.Load(), i, content.FieldImage, uri)

	if err := s.deps.Content.Save(data); err != nil {
		log.Error().Err(err).Msg("failed to save blog post image")
	}

	return redirectToTab(c, TabBlog)
}

// UpdateContact replaces the contact block from the posted form.
func (s *Service) UpdateContact(c *fiber.Ctx) error {
	data := s.deps.Content.Load()
	fields := []string{
		content.FieldName,
		content.FieldEmail,
		content.FieldPhone,
		content.FieldAddress,
	}

	for _, field := range fields {
		data = content.UpdateContact(data, field, c.FormValue(field))
	}

	if err := s.deps.Content.Save(data); err != nil {
		log.Error().Err(err).Msg("failed to update contact")
	}

	return redirectToTab(c, TabContact)
}

// readImage reads the multipart "image" file and converts it to a data URI.
func (s *Service) readImage(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	return upload.DataURI(data)
}

func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, upload.ErrNotAnImage):
		return "not-an-image"
	case errors.Is(err, upload.ErrTooLarge):
		return "too-large"
	default:
		return "upload-failed"
	}
}
