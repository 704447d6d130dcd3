package jwt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/folio/pkg/auth"
)

const (
	testSecret = "test-secret"
	testIssuer = "folio-test"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin", NewAuthMiddleware(testSecret, testIssuer), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userId").(string))
	})
	return app
}

func call(t *testing.T, app *fiber.App, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func token(t *testing.T, g *Generator, admin bool) (string, uuid.UUID) {
	t.Helper()
	id := uuid.New()
	tok, err := g.Generate(context.Background(), auth.User{ID: id, IsAdmin: admin})
	require.NoError(t, err)
	return tok, id
}

func TestMiddleware_AdminToken(t *testing.T) {
	tok, id := token(t, NewGenerator(testSecret, testIssuer, time.Hour), true)

	status, body := call(t, newProtectedApp(), "Bearer "+tok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, id.String(), body)

	status, _ = call(t, newProtectedApp(), tok)
	assert.Equal(t, http.StatusOK, status)
}

func TestMiddleware_Rejects(t *testing.T) {
	nonAdmin, _ := token(t, NewGenerator(testSecret, testIssuer, time.Hour), false)
	wrongSecret, _ := token(t, NewGenerator("other", testIssuer, time.Hour), true)
	wrongIssuer, _ := token(t, NewGenerator(testSecret, "someone-else", time.Hour), true)
	expired, _ := token(t, NewGenerator(testSecret, testIssuer, -time.Minute), true)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage", "Bearer abc.def", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + wrongSecret, http.StatusUnauthorized},
		{"wrong issuer", "Bearer " + wrongIssuer, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"not admin", "Bearer " + nonAdmin, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := call(t, newProtectedApp(), tc.header)
			assert.Equal(t, tc.status, status)
		})
	}
}

func TestParse_Claims(t *testing.T) {
	g := NewGenerator(testSecret, testIssuer, time.Hour)
	id := uuid.New()
	tok, err := g.Generate(context.Background(), auth.User{ID: id, Email: "admin@example.com", IsAdmin: true})
	require.NoError(t, err)

	claims, err := Parse([]byte(testSecret), testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.Subject)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)

	_, err = Parse([]byte(testSecret), "other-issuer", tok)
	assert.ErrorIs(t, err, ErrWrongIssuer)

	_, err = Parse([]byte("wrong"), testIssuer, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
