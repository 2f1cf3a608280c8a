package transferpanel

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/life-promo/studio-site/internal/config"
	"github.com/life-promo/studio-site/internal/content"
	"github.com/life-promo/studio-site/internal/store"
	"github.com/life-promo/studio-site/internal/transfer"
	"github.com/life-promo/studio-site/internal/web/handler"
)

func setupTestApp(t *testing.T) (*fiber.App, *handler.Deps) {
	t.Helper()

	s := store.NewMemory()
	deps := &handler.Deps{
		Store:   s,
		Content: content.NewRepository(s),
	}

	app := fiber.New(fiber.Config{
		Views: &mockTemplateEngine{},
	})

	service := &Service{}
	require.NoError(t, service.Init(app, &config.Config{Title: "Life-Promo"}, deps))

	return app, deps
}

func TestGet(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil))
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestExport(t *testing.T) {
	app, deps := setupTestApp(t)
	require.NoError(t, deps.Store.Set(store.KeySiteContent, []byte(`{"services":[]}`)))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path+"/export", nil))
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ExportFileName)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var doc transfer.Document
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.JSONEq(t, `{"services":[]}`, string(doc.SiteContent))
}

func postBackup(t *testing.T, app *fiber.App, payload []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("backup", "backup.json")
	require.NoError(t, err)

	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, Path+"/import", &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestImport(t *testing.T) {
	app, deps := setupTestApp(t)

	doc := []byte(`{"exportedAt":"2024-12-15T10:00:00Z","users":[{"id":"1","username":"ivan"}]}`)

	resp := postBackup(t, app, doc)
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	users, err := deps.Store.Get(store.KeyUsers)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","username":"ivan"}]`, string(users))
}

func TestImportPublishesRestoredContent(t *testing.T) {
	app, deps := setupTestApp(t)

	var got []content.Content
	deps.Content.Subscribe(func(c content.Content) {
		got = append(got, c)
	})

	doc := []byte(`{"exportedAt":"2024-12-15T10:00:00Z","site_content":{"services":[{"title":"Импортированная услуга"}]}}`)

	resp := postBackup(t, app, doc)
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// subscribers see the restored value without a process restart
	require.Len(t, got, 1)
	require.Len(t, got[0].Services, 1)
	assert.Equal(t, "Импортированная услуга", got[0].Services[0].Title)
}

func TestImportMalformedFile(t *testing.T) {
	app, deps := setupTestApp(t)

	resp := postBackup(t, app, []byte("{broken"))
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	_, err := deps.Store.Get(store.KeyUsers)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestImportWithoutFile(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest(http.MethodPost, Path+"/import", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

type mockTemplateEngine struct{}

func (m *mockTemplateEngine) Load() error {
	return nil
}

func (m *mockTemplateEngine) Render(_ io.Writer, _ string, binding interface{}, _ ...string) error {
	if data, ok := binding.(fiber.Map); ok {
		if _, hasNav := data["Navigation"]; hasNav {
			return nil
		}
	}

	return fiber.ErrInternalServerError
}
