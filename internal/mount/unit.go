package mount

import (
	"context"
	"sync"

	"github.com/vk/panelgrid/internal/ctxlog"
	"github.com/vk/panelgrid/internal/markup"
	"github.com/vk/panelgrid/internal/scopedview"
	"github.com/vk/panelgrid/internal/scopeid"
	"github.com/vk/panelgrid/internal/session"
)

// Unit is one mounted instance of a module type. Its scope path is fixed
// at mount time and immutable for the unit's lifetime.
type Unit struct {
	scope      scopeid.Path
	moduleType string
	markup     markup.Fragment
	session    *session.Session
	inputs     *scopedview.View
	outputs    *scopedview.View

	mu          sync.Mutex
	children    []*Unit
	computedIDs []string // qualified identifiers with registered computations
	closed      bool
}

// Scope returns the unit's scope path.
func (u *Unit) Scope() scopeid.Path { return u.scope }

// ModuleType returns the module type this unit instantiates.
func (u *Unit) ModuleType() string { return u.moduleType }

// Markup returns the fragment the unit's view builder produced, including
// the markup of any nested units embedded during the build.
func (u *Unit) Markup() markup.Fragment { return u.markup }

// Inputs returns the unit's restricted view over the input registry.
func (u *Unit) Inputs() *scopedview.View { return u.inputs }

// Outputs returns the unit's restricted view over the output registry.
func (u *Unit) Outputs() *scopedview.View { return u.outputs }

func (u *Unit) addChild(child *Unit) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.children = append(u.children, child)
}

func (u *Unit) recordOutput(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.computedIDs = append(u.computedIDs, id)
}

// Close tears the unit down: nested units first (reverse mount order),
// then the unit's registered computations, then every registry entry under
// its scope. The scope is released last so it can be remounted afterwards.
// Close is idempotent.
func (u *Unit) Close(ctx context.Context) error {
	u.mu.Lock()
	if u.closed {
		u.mu.Unlock()
		return nil
	}
	u.closed = true
	children := u.children
	registered := u.computedIDs
	u.children = nil
	u.computedIDs = nil
	u.mu.Unlock()

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Closing unit.", "scope", u.scope.String())

	var firstErr error
	for i := len(children) - 1; i >= 0; i-- {
		if err := children[i].Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for _, id := range registered {
		if err := u.session.Reactor().UnregisterOutput(ctx, id); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if err := u.inputs.Clear(ctx); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := u.outputs.Clear(ctx); err != nil && firstErr == nil {
		firstErr = err
	}

	u.session.ReleaseScope(u.scope.String())
	return firstErr
}
