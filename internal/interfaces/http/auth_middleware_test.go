package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/panasystem/panasystem-api/internal/interfaces/http"
	pkgjwt "github.com/panasystem/panasystem-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "vendedora1"
	testIssuer    = "panasystem-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y un
// handler dummy que devuelve los locals cargados si el token pasa.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"user_id":  apphttp.GetUserID(c),
				"username": apphttp.GetUsername(c),
				"role":     apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido → 200 y los claims quedan en los locals.
func TestAuthMiddleware_TokenValidoCargaLocals(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenForRole(t, "admin"))

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUsername, body["username"])
	assert.Equal(t, "admin", body["role"])
}

// Caso 2: sin header Authorization → 401.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Caso 3: formato sin "Bearer " → 401.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Basic dXNlcjpwYXNz")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: "Bearer" con token vacío → 401.
func TestAuthMiddleware_TokenVacio(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer ")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token firmado con otro secret → 401.
func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testUserID, testUsername, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: token vencido → 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, "vendedor", testIssuer, -5)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Caso 7: "bearer" en minúsculas es aceptado (EqualFold).
func TestAuthMiddleware_BearerCaseInsensitive(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, "vendedor", testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, "bearer "+tok)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
