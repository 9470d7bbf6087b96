package inventory

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the inventory feature around an assembled service.
func NewFeature(service *Service, logger *zap.Logger) *Feature {
	return &Feature{
		service: service,
		handler: NewHandler(service, logger),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "inventory"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes and starts the background poller.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	f.service.Start()
	return nil
}

// Service exposes the underlying service, used for shutdown.
func (f *Feature) Service() *Service {
	return f.service
}
