package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/dulceria/sweetshop-api/pkg/jwt"
)

func TestRegister_CreaUsuarioSinExponerHash(t *testing.T) {
	app, _, _ := newTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "",
		fiber.Map{"email": "ana@example.com", "password": "secreta123"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password", "la respuesta nunca incluye password ni hash")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "ana@example.com", body["email"])
	assert.Equal(t, "USER", body["role"], "el rol se asigna por defecto a USER")
	assert.Equal(t, float64(1), body["id"])
}

func TestRegister_CamposFaltantes_400(t *testing.T) {
	app, _, _ := newTestApp()

	for _, in := range []fiber.Map{
		{},
		{"email": "ana@example.com"},
		{"password": "secreta123"},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", in)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "cuerpo %v debe rechazarse", in)
		resp.Body.Close()
	}
}

func TestRegister_EmailDuplicado_409(t *testing.T) {
	app, _, _ := newTestApp()
	in := fiber.Map{"email": "ana@example.com", "password": "secreta123"}

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", "", in)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLogin_CredencialesCorrectas_DevuelveTokenVerificable(t *testing.T) {
	app, _, _ := newTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "",
		fiber.Map{"email": "ana@example.com", "password": "secreta123"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		fiber.Map{"email": "ana@example.com", "password": "secreta123"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body["token"])

	userID, role, err := pkgjwt.Parse(testJWTSecret, body["token"])
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
	assert.Equal(t, "USER", role)
}

func TestLogin_CredencialesInvalidas_MismoMensaje(t *testing.T) {
	app, _, _ := newTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "",
		fiber.Map{"email": "ana@example.com", "password": "secreta123"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Password incorrecto y email desconocido: mismo status y mismo cuerpo,
	// para no permitir enumerar usuarios.
	respWrongPass := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		fiber.Map{"email": "ana@example.com", "password": "incorrecta"})
	defer respWrongPass.Body.Close()
	respNoUser := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		fiber.Map{"email": "nadie@example.com", "password": "secreta123"})
	defer respNoUser.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respWrongPass.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respNoUser.StatusCode)

	body1, err := io.ReadAll(respWrongPass.Body)
	require.NoError(t, err)
	body2, err := io.ReadAll(respNoUser.Body)
	require.NoError(t, err)
	assert.Equal(t, string(body1), string(body2))
}

func TestLogin_CamposFaltantes_400(t *testing.T) {
	app, _, _ := newTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		fiber.Map{"email": "ana@example.com"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
