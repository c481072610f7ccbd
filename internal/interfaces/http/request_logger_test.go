package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/tienda-inventario/internal/interfaces/http"
)

func TestRequestLogger_RegistraEstadoYRuta(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.New(&buf)))
	app.Get("/falta", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/falta", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "/falta", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
}

func TestRequestLogger_ErrorInternoRegistraCausa(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(apphttp.RequestLogger(zerolog.New(&buf)))
	app.Get("/roto", func(c *fiber.Ctx) error {
		c.Locals(apphttp.LocalErrorCause, errors.New("list ventas: conn closed"))
		return c.Status(fiber.StatusInternalServerError).SendString("error interno del servidor")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/roto", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "list ventas: conn closed", entry["error"])
}
