package mount

import (
	"context"
	"fmt"

	"github.com/vk/panelgrid/internal/ctxlog"
	"github.com/vk/panelgrid/internal/manifest"
	"github.com/vk/panelgrid/internal/registry"
	"github.com/vk/panelgrid/internal/scopedview"
	"github.com/vk/panelgrid/internal/scopeid"
	"github.com/vk/panelgrid/internal/session"
)

// Mounter instantiates units of registered module types into one session.
type Mounter struct {
	Registry *registry.Registry
	Session  *session.Session
}

// New creates a Mounter bound to a registry and a session.
func New(reg *registry.Registry, sess *session.Session) *Mounter {
	return &Mounter{Registry: reg, Session: sess}
}

// Mount instantiates moduleType as a root-tracked unit under the caller's
// scope path. The leaf identifier is validated before anything else
// happens: a malformed leaf never reaches the registries.
func (m *Mounter) Mount(ctx context.Context, parent scopeid.Path, leaf, moduleType string) (*Unit, error) {
	unit, err := m.mount(ctx, parent, leaf, moduleType)
	if err != nil {
		return nil, err
	}
	m.Session.Track(unit)
	return unit, nil
}

// MountRoot is shorthand for mounting directly under the application root.
func (m *Mounter) MountRoot(ctx context.Context, leaf, moduleType string) (*Unit, error) {
	return m.Mount(ctx, scopeid.Root(), leaf, moduleType)
}

// mount does the actual instantiation. Nested mounts come through here
// without session tracking; the parent unit owns their teardown.
func (m *Mounter) mount(ctx context.Context, parent scopeid.Path, leaf, moduleType string) (*Unit, error) {
	logger := ctxlog.FromContext(ctx)

	scope, err := parent.Child(leaf)
	if err != nil {
		return nil, err
	}

	registered, definition, err := m.Registry.Lookup(moduleType)
	if err != nil {
		return nil, err
	}

	qualified := scope.String()
	if !m.Session.ClaimScope(qualified) {
		return nil, fmt.Errorf("scope %q is already mounted in this session", qualified)
	}
	logger.Debug("Mounting unit.", "scope", qualified, "module_type", moduleType)

	unit := &Unit{
		scope:      scope,
		moduleType: moduleType,
		session:    m.Session,
		inputs:     scopedview.New(m.Session.Inputs(), scope),
		outputs:    scopedview.New(m.Session.Outputs(), scope),
	}

	if err := m.applyDefaults(ctx, unit, definition); err != nil {
		unit.Close(ctx)
		return nil, err
	}

	if registered.View != nil {
		vc := &viewContext{mounter: m, unit: unit}
		fragment, err := registered.View(ctx, vc)
		if err != nil {
			unit.Close(ctx)
			return nil, fmt.Errorf("view builder for %q failed: %w", qualified, err)
		}
		unit.markup = fragment
	}

	bc := &bindContext{
		unit:    unit,
		reactor: &scopedReactor{unit: unit},
	}
	if err := registered.Bind(ctx, bc); err != nil {
		unit.Close(ctx)
		return nil, fmt.Errorf("behavior binder for %q failed: %w", qualified, err)
	}

	logger.Debug("Unit mounted.", "scope", qualified)
	return unit, nil
}

// applyDefaults materializes the contract's declared input defaults into
// the unit's scoped input view, without overwriting values the caller
// pre-seeded.
func (m *Mounter) applyDefaults(ctx context.Context, unit *Unit, definition *manifest.Module) error {
	for name, input := range definition.Inputs {
		if input.Default == nil {
			continue
		}
		_, exists, err := unit.inputs.Get(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := unit.inputs.Set(ctx, name, *input.Default); err != nil {
			return err
		}
	}
	return nil
}
