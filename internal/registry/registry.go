package registry

import (
	"fmt"

	"github.com/vk/panelgrid/internal/manifest"
)

// Module is the interface every pluggable module package implements to be
// linked into an application instance.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered roles and contract definitions for a
// single application instance.
type Registry struct {
	ModuleRegistry     map[string]*RegisteredModule
	DefinitionRegistry map[string]*manifest.Module
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		ModuleRegistry:     make(map[string]*RegisteredModule),
		DefinitionRegistry: make(map[string]*manifest.Module),
	}
}

// PopulateDefinitionsFromModel copies the loaded module contracts from the
// manifest model into the registry for easy access during mounting.
func (r *Registry) PopulateDefinitionsFromModel(model *manifest.Model) {
	for key, val := range model.Modules {
		r.DefinitionRegistry[key] = val
	}
}

// Lookup resolves a module type to its registered roles and contract.
func (r *Registry) Lookup(moduleType string) (*RegisteredModule, *manifest.Module, error) {
	registered, ok := r.ModuleRegistry[moduleType]
	if !ok {
		return nil, nil, fmt.Errorf("module type %q has no registered Go roles", moduleType)
	}
	definition, ok := r.DefinitionRegistry[moduleType]
	if !ok {
		return nil, nil, fmt.Errorf("module type %q has no manifest definition", moduleType)
	}
	return registered, definition, nil
}
