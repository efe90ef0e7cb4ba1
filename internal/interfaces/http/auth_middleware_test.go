package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/construstock/internal/domain/entity"
	apphttp "github.com/tu-usuario/construstock/internal/interfaces/http"
	"github.com/tu-usuario/construstock/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

// buildTestApp monta una ruta protegida y otra solo-admin para ejercitar
// AuthMiddleware y RequireRole.
func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/", apphttp.AuthMiddleware(testSecret))
	protected.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"username": c.Locals(apphttp.LocalUsername),
			"role":     apphttp.GetRole(c),
		})
	})
	protected.Delete("/danger", apphttp.RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	protected.Post("/catalog", apphttp.RequireRole(entity.RoleAdmin, entity.RoleManager), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, 42, "maria", role, "construstock", 60)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, fiber.MethodGet, "/whoami", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, fiber.MethodGet, "/whoami", "no-es-un-token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaDeOtroSecreto(t *testing.T) {
	app := buildTestApp()
	token, err := jwt.Generate("otro-secreto", 42, "maria", entity.RoleAdmin, "construstock", 60)
	require.NoError(t, err)
	resp := doRequest(t, app, fiber.MethodGet, "/whoami", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildTestApp()
	token, err := jwt.Generate(testSecret, 42, "maria", entity.RoleAdmin, "construstock", -5)
	require.NoError(t, err)
	resp := doRequest(t, app, fiber.MethodGet, "/whoami", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, fiber.MethodGet, "/whoami", tokenForRole(t, entity.RoleUser))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_AdminPuedeBorrar(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, fiber.MethodDelete, "/danger", tokenForRole(t, entity.RoleAdmin))
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestRequireRole_ManagerNoPuedeBorrar(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, fiber.MethodDelete, "/danger", tokenForRole(t, entity.RoleManager))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_StaffEscribeCatalogo(t *testing.T) {
	app := buildTestApp()
	for _, role := range []string{entity.RoleAdmin, entity.RoleManager} {
		resp := doRequest(t, app, fiber.MethodPost, "/catalog", tokenForRole(t, role))
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode, "role=%s", role)
	}
}

func TestRequireRole_UsuarioComunNoEscribeCatalogo(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, fiber.MethodPost, "/catalog", tokenForRole(t, entity.RoleUser))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
