package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwshop/storefront-api/internal/application/auth"
	"github.com/hwshop/storefront-api/internal/application/dto"
	"github.com/hwshop/storefront-api/internal/domain/entity"
	"github.com/hwshop/storefront-api/internal/infrastructure/localstore"
	apphttp "github.com/hwshop/storefront-api/internal/interfaces/http"
	"github.com/hwshop/storefront-api/pkg/logger"
)

func buildAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "hwshop.json"), logger.Nop())
	require.NoError(t, err)

	uc := auth.NewAuthUseCase(
		localstore.NewUserRepository(store),
		localstore.NewSessionRepository(store),
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
	)
	h := apphttp.NewAuthHandler(uc)

	app := fiber.New()
	app.Post("/api/auth/register", h.Register)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// El registro público no acepta rol: un body con "role":"admin" crea un
// customer igual, sin escalar privilegios del back-office.
func TestRegister_IgnoraRolDelBody(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/auth/register",
		`{"email":"intruso@gmail.com","password":"secreto123","name":"Intruso","role":"admin"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, entity.RoleCustomer, out.User.Role,
		"el rol del body se ignora: el registro siempre crea customer")
	assert.NotEmpty(t, out.Token)
}

func TestRegister_ValidaCampos(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/auth/register",
		`{"email":"corto@gmail.com","password":"123","name":"Corto"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "password mínimo de 6 caracteres")

	resp = postJSON(t, app, "/api/auth/register", `{"email":"","password":"secreto123","name":""}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
