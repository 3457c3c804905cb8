package loader

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

// Feature is a module that registers its own routes on the application.
type Feature interface {
	// Name returns the feature's name, used in error messages.
	Name() string
	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool
	// Load registers the feature's routes.
	Load(app fiber.Router) error
}

// Manager holds the registered features.
type Manager struct {
	features []Feature
}

// NewManager creates an empty feature manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature to the manager.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll loads every enabled feature in registration order and stops at the
// first failure.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			continue
		}
		if err := f.Load(app); err != nil {
			return errors.Wrapf(err, "failed to load feature %s", f.Name())
		}
	}
	return nil
}
