package logger

import (
	"net/http/httptest"
	"testing"

	"nursery-monitor/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("Debug Enables Debug Level", func(t *testing.T) {
		log, err := New(&Config{Level: "debug", Format: "console"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("Warn Raises Threshold", func(t *testing.T) {
		log, err := New(&Config{Level: "warn", Format: "json"})
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("Unknown Level Falls Back To Info", func(t *testing.T) {
		log, err := New(&Config{Level: "loud", Format: "json"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		WithRayID(base, c).Info("handled")
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.HeaderName, "trace-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "trace-123", entries[0].ContextMap()["ray_id"])
}

func TestWithRayID_NoID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		WithRayID(base, c).Info("handled")
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "ray_id")
}
