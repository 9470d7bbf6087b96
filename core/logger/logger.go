package logger

import (
	"nursery-monitor/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger from the configuration. The "debug" level selects
// the development preset; any other recognized level adjusts the production
// preset, and an unrecognized level falls back to info.
func New(cfg *Config) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	return config.Build()
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals(rayid.LocalsKey).(string); ok && rid != "" {
		return l.With(zap.String("ray_id", rid))
	}
	return l
}
