package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/kyc-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/kyc-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "kyc-api-test"
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT válido con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// expiredToken fabrica un token con firma válida pero ya vencido.
func expiredToken(t *testing.T) string {
	t.Helper()
	past := time.Now().Add(-2 * pkgjwt.TokenTTL)
	claims := pkgjwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   testUserID,
			IssuedAt:  jwtlib.NewNumericDate(past),
			ExpiresAt: jwtlib.NewNumericDate(past.Add(pkgjwt.TokenTTL)),
		},
		UserID: testUserID,
		Role:   "admin",
	}
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
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

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "admin", body["role"], "el role debe ser admin")
}

// Caso 2: Rol user en ruta admin → HTTP 403 Forbidden.
func TestRequireRole_UserBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "user"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"user no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 3: Sin header Authorization → HTTP 401, NUNCA 403: la ausencia de token
// se chequea antes que el rol y no puede reportarse como acceso denegado.
func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "FORBIDDEN",
		"la ausencia de token jamás debe reportarse como problema de rol")
}

// Caso 4: Token inválido / malformado → HTTP 401.
func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token vencido con firma válida → HTTP 401 con el MISMO cuerpo que
// cualquier otro 401 (el cliente no distingue la causa).
func TestRequireRole_TokenExpirado_Retorna401Identico(t *testing.T) {
	app := buildTestApp("admin")

	respExpired := doRequest(t, app, expiredToken(t))
	defer respExpired.Body.Close()
	respMissing := doRequest(t, app, "")
	defer respMissing.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respExpired.StatusCode)

	bodyExpired, _ := io.ReadAll(respExpired.Body)
	bodyMissing, _ := io.ReadAll(respMissing.Body)
	assert.Equal(t, string(bodyMissing), string(bodyExpired),
		"expirado, inválido y ausente deben colapsar en la misma respuesta")
}

// Caso 6: Token firmado con otro secret → HTTP 401.
func TestRequireRole_FirmaIncorrecta_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret-distinto", testUserID, "admin", testIssuer)
	require.NoError(t, err)

	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "admin", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la puerta pura Authenticate
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_OrdenDeChequeos(t *testing.T) {
	// Sin header: NoToken, no InvalidToken.
	d := apphttp.Authenticate("", testJWTSecret)
	assert.ErrorIs(t, d.Deny, apphttp.ErrNoToken)

	// Header "Bearer" sin token: también NoToken.
	d = apphttp.Authenticate("Bearer ", testJWTSecret)
	assert.ErrorIs(t, d.Deny, apphttp.ErrNoToken)

	// Token basura: InvalidToken con la causa interna encadenada.
	d = apphttp.Authenticate("Bearer basura", testJWTSecret)
	assert.ErrorIs(t, d.Deny, apphttp.ErrInvalidToken)
	assert.ErrorIs(t, d.Deny, pkgjwt.ErrMalformed)
}

func TestAuthenticate_TokenValido_AdjuntaIdentidad(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "user", testIssuer)
	require.NoError(t, err)

	d := apphttp.Authenticate("Bearer "+tok, testJWTSecret)
	require.NoError(t, d.Deny)
	assert.Equal(t, testUserID, d.Identity.UserID)
	assert.Equal(t, "user", d.Identity.Role)
}
