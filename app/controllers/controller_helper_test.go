package controllers

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmk307/hellmap-api/internal/pkg/timefmt"
)

type envelopeBody struct {
	Timestamp string      `json:"timestamp"`
	Status    int         `json:"status"`
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Message   string      `json:"message"`
}

func decodeEnvelope(t *testing.T, body io.Reader) envelopeBody {
	t.Helper()

	raw, err := io.ReadAll(body)
	require.NoError(t, err)

	var e envelopeBody
	require.NoError(t, sonic.Unmarshal(raw, &e))
	return e
}

func TestRespondOK(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return RespondOK(c, fiber.Map{"hello": "world"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	e := decodeEnvelope(t, resp.Body)
	assert.Equal(t, fiber.StatusOK, e.Status)
	assert.True(t, e.Success)
	assert.Empty(t, e.Message)

	data, ok := e.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "world", data["hello"])

	_, err = time.Parse(time.RFC3339, e.Timestamp)
	assert.NoError(t, err, "timestamp must be RFC3339")
}

func TestRespondCreated(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		return RespondCreated(c, true)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	e := decodeEnvelope(t, resp.Body)
	assert.Equal(t, fiber.StatusCreated, e.Status)
	assert.True(t, e.Success)
	assert.Equal(t, true, e.Data)
}

func TestRespondError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return RespondError(c, fiber.StatusNotFound, "no such report")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	e := decodeEnvelope(t, resp.Body)
	assert.Equal(t, fiber.StatusNotFound, e.Status)
	assert.False(t, e.Success)
	assert.Nil(t, e.Data)
	assert.Equal(t, "no such report", e.Message)
}

func TestFormatTimePtr(t *testing.T) {
	t.Parallel()

	assert.Nil(t, formatTimePtr(nil, timefmt.Date))

	ts := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025년 6월 15일", formatTimePtr(&ts, timefmt.Date))
}
