// Package password implements the admin change-password form.
package password

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/life-promo/studio-site/internal/config"
	"github.com/life-promo/studio-site/internal/credential"
	"github.com/life-promo/studio-site/internal/web/handler"
	"github.com/life-promo/studio-site/internal/web/navigation"
)

const (
	// Path is the path to the change-password page.
	Path = "/admin/password"

	// TemplateName is the name of the change-password template.
	TemplateName = "admin/password"
)

// Form is the change-password form payload.
type Form struct {
	Password string `form:"password" validate:"required,min=6"`
	Confirm  string `form:"confirm"  validate:"required,eqfield=Password"`
}

// Service is the change-password handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	deps      *handler.Deps
	validator *validator.Validate
}

// Handler is the change-password handler.
var Handler = Service{}

// Init initializes the change-password handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return stderrors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps
	s.validator = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

func nav() *navigation.Context {
	return navigation.NewContext("Смена пароля", "admin", "password").
		AddBreadcrumb("Админка", "/admin/content", false).
		AddBreadcrumb("Пароль", Path, true)
}

// Get handles the change-password page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav(),
	}, handler.BaseLayout)
}

// Post handles the change-password form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)

	if err := c.BodyParser(form); err != nil {
		log.Error().Err(err).Msg("failed to parse change-password form")

		return c.Status(fiber.StatusBadRequest).Render(TemplateName, fiber.Map{
			"Title":      s.cfg.Title,
			"Navigation": nav(),
			"Error":      "Неверные данные формы",
		}, handler.BaseLayout)
	}

	// validator catches the same violations the credential layer rejects,
	// so the form re-renders with a message before any state changes
	if err := s.validator.Struct(form); err != nil {
		return c.Status(fiber.StatusBadRequest).Render(TemplateName, fiber.Map{
			"Title":      s.cfg.Title,
			"Navigation": nav(),
			"Error":      changeErrorMessage(credentialError(form)),
		}, handler.BaseLayout)
	}

	if err := s.deps.Credential.Change(form.Password, form.Confirm); err != nil {
		return c.Status(fiber.StatusBadRequest).Render(TemplateName, fiber.Map{
			"Title":      s.cfg.Title,
			"Navigation": nav(),
			"Error":      changeErrorMessage(err),
		}, handler.BaseLayout)
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":      s.cfg.Title,
		"Navigation": nav(),
		"Success":    "Пароль обновлён",
	}, handler.BaseLayout)
}

// credentialError maps a form violation to the credential sentinel that
// would have been returned had the form reached the repository.
func credentialError(form *Form) error {
	switch {
	case form.Password == "":
		return credential.ErrEmpty
	case len(form.Password) < credential.MinLength:
		return credential.ErrTooShort
	case form.Password != form.Confirm:
		return credential.ErrMismatch
	default:
		return credential.ErrEmpty
	}
}

func changeErrorMessage(err error) string {
	switch {
	case stderrors.Is(err, credential.ErrTooShort):
		return "Пароль должен содержать не менее 6 символов"
	case stderrors.Is(err, credential.ErrMismatch):
		return "Пароли не совпадают"
	case stderrors.Is(err, credential.ErrEmpty):
		return "Пароль не может быть пустым"
	default:
		return "Не удалось сменить пароль"
	}
}
