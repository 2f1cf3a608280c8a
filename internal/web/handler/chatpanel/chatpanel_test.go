package chatpanel

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/life-promo/studio-site/internal/chat"
	"github.com/life-promo/studio-site/internal/config"
	"github.com/life-promo/studio-site/internal/session"
	"github.com/life-promo/studio-site/internal/store"
	"github.com/life-promo/studio-site/internal/users"
	"github.com/life-promo/studio-site/internal/web/handler"
	"github.com/life-promo/studio-site/internal/web/handler/account"
)

func setupTestApp(t *testing.T) (*fiber.App, *handler.Deps) {
	t.Helper()

	s := store.NewMemory()
	deps := &handler.Deps{
		Store:   s,
		Users:   users.NewRepository(s),
		Chat:    chat.NewRepository(s),
		Session: session.NewManager(s),
	}

	app := fiber.New(fiber.Config{
		Views: &mockTemplateEngine{},
	})

	service := &Service{}
	require.NoError(t, service.Init(app, &config.Config{Title: "Life-Promo"}, deps))

	return app, deps
}

func registerUser(t *testing.T, deps *handler.Deps) users.User {
	t.Helper()

	user, err := deps.Users.Register(users.User{Username: "ivan", Email: "a@example.com"})
	require.NoError(t, err)

	return user
}

func postText(t *testing.T, app *fiber.App, text string, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	form := url.Values{"text": {text}}
	req := httptest.NewRequest(http.MethodPost, Path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestGetWithoutIdentityRedirects(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, account.Path, resp.Header.Get(fiber.HeaderLocation))
}

func TestGetAsUser(t *testing.T) {
	app, deps := setupTestApp(t)
	user := registerUser(t, deps)

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	req.AddCookie(&http.Cookie{Name: account.CookieName, Value: user.ID})

	resp, err := app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestPostAsUser(t *testing.T) {
	app, deps := setupTestApp(t)
	user := registerUser(t, deps)

	resp := postText(t, app, "Здравствуйте!",
		&http.Cookie{Name: account.CookieName, Value: user.ID})
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	transcript := deps.Chat.List()
	require.Len(t, transcript, 1)
	assert.Equal(t, user.ID, transcript[0].UserID)
	assert.Equal(t, "ivan", transcript[0].Username)
	assert.False(t, transcript[0].IsAdmin)
}

func TestPostAsAdmin(t *testing.T) {
	app, deps := setupTestApp(t)

	token, err := deps.Session.Activate()
	require.NoError(t, err)

	resp := postText(t, app, "Чем можем помочь?",
		&http.Cookie{Name: session.CookieName, Value: token})
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	transcript := deps.Chat.List()
	require.Len(t, transcript, 1)
	assert.True(t, transcript[0].IsAdmin)
	assert.Equal(t, AdminUsername, transcript[0].Username)
	assert.Equal(t, AdminAvatar, transcript[0].Avatar)
}

func TestPostWithForgedAdminCookie(t *testing.T) {
	app, deps := setupTestApp(t)

	_, err := deps.Session.Activate()
	require.NoError(t, err)

	// a made-up cookie value is not the admin and carries no user identity
	resp := postText(t, app, "привет",
		&http.Cookie{Name: session.CookieName, Value: "forged-token"})
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, account.Path, resp.Header.Get(fiber.HeaderLocation))
	assert.Empty(t, deps.Chat.List())
}

func TestPostEmptyTextIsDropped(t *testing.T) {
	app, deps := setupTestApp(t)
	user := registerUser(t, deps)

	resp := postText(t, app, "   ",
		&http.Cookie{Name: account.CookieName, Value: user.ID})
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Empty(t, deps.Chat.List())
}

func TestPostWithoutIdentityRedirects(t *testing.T) {
	app, deps := setupTestApp(t)

	resp := postText(t, app, "привет")
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, account.Path, resp.Header.Get(fiber.HeaderLocation))
	assert.Empty(t, deps.Chat.List())
}

type mockTemplateEngine struct{}

func (m *mockTemplateEngine) Load() error {
	return nil
}

func (m *mockTemplateEngine) Render(_ io.Writer, _ string, binding interface{}, _ ...string) error {
	if data, ok := binding.(fiber.Map); ok {
		if _, hasMessages := data["Messages"]; hasMessages {
			return nil
		}
	}

	return fiber.ErrInternalServerError
}
