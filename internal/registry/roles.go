package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/panelgrid/internal/module"
)

// RegisteredModule holds the compiled Go roles of one module type. View
// and Bind are connected only through the qualified identifier namespace;
// the mounter wires them when a unit is instantiated.
type RegisteredModule struct {
	// View produces the unit's markup. May be nil for headless module
	// types that contribute behavior without controls.
	View module.ViewFunc

	// Bind registers the unit's reactive computations. Required.
	Bind module.BindFunc
}

// RegisterModule registers the Go roles for a module type. Registering the
// same type twice is a programmer error.
func (r *Registry) RegisterModule(moduleType string, registered *RegisteredModule) {
	if _, exists := r.ModuleRegistry[moduleType]; exists {
		panic(fmt.Sprintf("module with type '%s' already registered", moduleType))
	}
	slog.Debug("Registering module roles.", "type", moduleType)
	r.ModuleRegistry[moduleType] = registered
}
