package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature is the contract every loadable module implements.
type Feature interface {
	// Name returns the feature's identifier, used in logs and errors.
	Name() string
	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool
	// Load registers the feature's routes on the given router.
	Load(app fiber.Router) error
}

// Manager holds the registry of available features.
type Manager struct {
	features []Feature
}

// NewManager creates an empty feature manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature to the registry. Registration order is load order.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll loads every enabled feature. The first load failure aborts startup;
// a half-loaded application is worse than a failed one.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			zap.L().Info("Feature disabled, skipping", zap.String("feature", f.Name()))
			continue
		}

		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %q: %w", f.Name(), err)
		}
		zap.L().Info("Feature loaded", zap.String("feature", f.Name()))
	}
	return nil
}
