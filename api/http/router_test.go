package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artem13815/folio/api/http/handlers"
	"github.com/artem13815/folio/pkg/generator"
	"github.com/artem13815/folio/pkg/health"
)

func newTestApp(withAdmin bool) *fiber.App {
	app := fiber.New()
	h := Handlers{
		Health:   handlers.NewHealthHandler(health.NewService()),
		Generate: handlers.NewGenerateHandler(generator.NewService(nil, nil, nil), nil, time.Second),
		Resume:   handlers.NewResumeHandler(nil),
	}
	if withAdmin {
		h.Admin = handlers.NewAdminHandler(nil, nil)
		h.AuthMW = func(c *fiber.Ctx) error { return c.SendStatus(http.StatusUnauthorized) }
		h.AdminMW = func(c *fiber.Ctx) error { return c.Next() }
	}
	Register(app, h, zap.NewNop())
	return app
}

func status(t *testing.T, app *fiber.App, method, path, body string) (int, http.Header) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode, resp.Header
}

func TestRegister_Routes(t *testing.T) {
	app := newTestApp(false)

	code, hdr := status(t, app, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, hdr.Get(requestIDHeader))

	code, _ = status(t, app, http.MethodGet, "/api/ready", "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = status(t, app, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = status(t, app, http.MethodGet, "/api/resume/generate", "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = status(t, app, http.MethodPost, "/api/resume/generate", `{"customData":{"personalInfo":{"fullName":"Jane"}}}`)
	assert.Equal(t, http.StatusOK, code)

	// без базы нет ни хранилища, ни админки
	code, _ = status(t, app, http.MethodPost, "/api/resume/generate", `{}`)
	assert.Equal(t, http.StatusInternalServerError, code)
	code, _ = status(t, app, http.MethodGet, "/api/admin/skills", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRegister_AdminRoutesAreProtected(t *testing.T) {
	app := newTestApp(true)

	for _, path := range []string{"/api/admin/personal-info", "/api/admin/experience", "/api/admin/education", "/api/admin/skills"} {
		code, _ := status(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, code, path)
	}
}

func TestRequestLogger_KeepsIncomingID(t *testing.T) {
	app := newTestApp(false)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(requestIDHeader))
}

type panickingGenerator struct{}

func (panickingGenerator) Generate(context.Context, generator.Request) (generator.Result, error) {
	var parts []string
	_ = parts[3]
	return generator.Result{}, nil
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestGenerate_PanicHidesDetails(t *testing.T) {
	app := NewApp(time.Second, zap.NewNop())
	Register(app, Handlers{
		Health:   handlers.NewHealthHandler(health.NewService()),
		Generate: handlers.NewGenerateHandler(panickingGenerator{}, nil, time.Second),
		Resume:   handlers.NewResumeHandler(nil),
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/resume/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	code, got := send(t, app, req)

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.JSONEq(t, `{"error":"Failed to generate resume"}`, got)
}

func TestErrorHandler(t *testing.T) {
	app := NewApp(time.Second, zap.NewNop())
	app.Use(recover.New())
	app.Get("/boom", func(*fiber.Ctx) error { panic("index out of range [3] with length 3") })
	app.Get("/raw", func(*fiber.Ctx) error { return errors.New("pq: password authentication failed") })
	app.Get("/teapot", func(*fiber.Ctx) error { return fiber.NewError(http.StatusTeapot, "short and stout") })

	cases := []struct {
		path   string
		status int
		body   string
	}{
		{"/boom", http.StatusInternalServerError, `{"error":"internal server error"}`},
		{"/raw", http.StatusInternalServerError, `{"error":"internal server error"}`},
		{"/teapot", http.StatusTeapot, `{"error":"short and stout"}`},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			code, got := send(t, app, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.status, code)
			assert.JSONEq(t, tc.body, got)
		})
	}
}

func TestNewApp_AcceptsLargeUploads(t *testing.T) {
	app := NewApp(time.Second, zap.NewNop())
	app.Post("/upload", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	payload := strings.Repeat("x", 10<<20)
	code, _ := send(t, app, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(payload)))

	assert.Equal(t, http.StatusNoContent, code)
}
