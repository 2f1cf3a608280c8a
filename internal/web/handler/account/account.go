// Package account implements visitor registration and the username-only
// login used by the chat.
package account

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/life-promo/studio-site/internal/config"
	"github.com/life-promo/studio-site/internal/upload"
	"github.com/life-promo/studio-site/internal/users"
	"github.com/life-promo/studio-site/internal/web/handler"
)

const (
	// Path is the base path of the account pages.
	Path = "/account"

	// TemplateName is the name of the auth template.
	TemplateName = "account"

	// CookieName is the browser cookie carrying the logged-in user id.
	CookieName = "uid"
)

// Service is the account handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	deps *handler.Deps
}

// Handler is the account handler.
var Handler = Service{}

// Init initializes the account handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.deps = deps

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post("/login", s.Login)
		router.Post("/register", s.Register)
		router.Get("/logout", s.Logout)
	})

	return nil
}

func (s *Service) render(c *fiber.Ctx, status int, data fiber.Map) error {
	data["Title"] = s.cfg.Title
	data["Avatars"] = users.Avatars

	return c.Status(status).Render(TemplateName, data, handler.BaseLayout)
}

// Get handles the auth page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, fiber.Map{})
}

// Login handles the username-only login form. Identity is established by
// username alone; there is no secret for ordinary users.
func (s *Service) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")

	user, err := s.deps.Users.Login(username)
	if err != nil {
		return s.render(c, fiber.StatusNotFound, fiber.Map{
			"Error": "Пользователь не найден. Пожалуйста, зарегистрируйтесь.",
		})
	}

	s.setUserCookie(c, user.ID)

	return c.Redirect("/chat")
}

// Register handles the registration form, including the avatar choice: a
// catalog glyph or an uploaded custom image.
func (s *Service) Register(c *fiber.Ctx) error {
	candidate := users.User{
		Username: c.FormValue("username"),
		Phone:    c.FormValue("phone"),
		Email:    c.FormValue("email"),
		Telegram: c.FormValue("telegram"),
		Avatar:   c.FormValue("avatar"),
	}

	// a custom uploaded avatar wins over the catalog choice
	if uri, err := s.readAvatar(c); err != nil {
		return s.render(c, fiber.StatusBadRequest, fiber.Map{
			"Error":      avatarErrorMessage(err),
			"RegisterOn": true,
		})
	} else if uri != "" {
		candidate.Avatar = uri
	}

	user, err := s.deps.Users.Register(candidate)
	if err != nil {
		return s.render(c, fiber.StatusBadRequest, fiber.Map{
			"Error":      registerErrorMessage(err),
			"RegisterOn": true,
		})
	}

	s.setUserCookie(c, user.ID)

	return c.Redirect("/chat")
}

// Logout clears the user cookie.
func (s *Service) Logout(c *fiber.Ctx) error {
	c.ClearCookie(CookieName)

	return c.Redirect(handler.RootPath)
}

func (s *Service) setUserCookie(c *fiber.Ctx, id string) {
	cookieSettings := &fiber.Cookie{
		Name:     CookieName,
		Value:    id,
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)
}

// readAvatar reads an optional custom avatar upload. An absent file is not
// an error; the catalog choice stays in effect.
func (s *Service) readAvatar(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("avatar_file")
	if err != nil {
		return "", nil
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

	uri, err := upload.DataURI(data)
	if err != nil {
		log.Debug().Err(err).Str("file", fileHeader.Filename).Msg("avatar upload rejected")

		return "", err
	}

	return uri, nil
}

func registerErrorMessage(err error) string {
	switch {
	case errors.Is(err, users.ErrMissingUsername):
		return "Введите имя пользователя"
	case errors.Is(err, users.ErrMissingContactMethod):
		return "Укажите хотя бы один способ связи: телефон, email или Telegram"
	case errors.Is(err, users.ErrDuplicateUsername):
		return "Пользователь с таким именем уже существует"
	default:
		return "Не удалось зарегистрироваться"
	}
}

func avatarErrorMessage(err error) string {
	switch {
	case errors.Is(err, upload.ErrNotAnImage):
		return "Пожалуйста, выберите изображение"
	case errors.Is(err, upload.ErrTooLarge):
		return "Размер файла не должен превышать 5 МБ"
	default:
		return "Не удалось загрузить изображение"
	}
}
