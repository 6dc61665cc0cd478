package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/panelgrid/internal/ctxlog"
)

// Validate performs a strict parity check between manifests and Go code.
// Every registered module type must have a manifest contract and a bind
// role; contracts without Go roles are tolerated (declared but not linked
// into this binary) and only logged.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for moduleType, registered := range r.ModuleRegistry {
		def, ok := r.DefinitionRegistry[moduleType]
		if !ok {
			errs = append(errs, fmt.Sprintf("module '%s': Go roles registered, but no manifest declares the contract", moduleType))
			continue
		}

		if registered.Bind == nil {
			errs = append(errs, fmt.Sprintf("module '%s': no behavior binder registered; a view without behavior has no contract to satisfy", moduleType))
		}

		if registered.View == nil && len(def.Outputs) == 0 {
			errs = append(errs, fmt.Sprintf("module '%s': headless module declares no outputs, so mounting it can have no effect", moduleType))
		}
	}

	for moduleType := range r.DefinitionRegistry {
		if _, ok := r.ModuleRegistry[moduleType]; !ok {
			logger.Warn("Manifest declares a module type with no Go roles linked in.", "type", moduleType)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
