package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Empleados-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Empleados-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "ana"
	testIssuer    = "empleados-api-test"
	testExpMin    = 60
)

// buildProtectedApp construye una aplicación Fiber mínima con AuthMiddleware
// y un handler dummy que devuelve los claims extraídos.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id":  apphttp.GetUserID(c),
				"username": apphttp.GetUsername(c),
			})
		},
	)
	return app
}

// validToken genera un JWT válido con los datos de prueba.
func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doProtected lanza una petición GET /protected y devuelve la respuesta.
func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Token válido → pasa y los claims quedan en locals.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, validToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUsername, body["username"])
}

// Sin header Authorization → 401.
func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Esquema distinto de Bearer → 401.
func TestAuthMiddleware_EsquemaInvalido_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token malformado → 401.
func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token vencido → 401.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, testIssuer, -1)
	require.NoError(t, err)

	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token firmado con otro secret → 401.
func TestAuthMiddleware_OtroSecret_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testUserID, testUsername, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
