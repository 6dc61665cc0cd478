package mount

import (
	"context"

	"github.com/vk/panelgrid/internal/host"
	"github.com/vk/panelgrid/internal/markup"
	"github.com/vk/panelgrid/internal/module"
	"github.com/vk/panelgrid/internal/scopedview"
	"github.com/vk/panelgrid/internal/scopeid"
	"github.com/vk/panelgrid/internal/valuestore"
	"github.com/zclconf/go-cty/cty"
)

// viewContext implements module.ViewContext for one unit being mounted.
type viewContext struct {
	mounter *Mounter
	unit    *Unit
}

func (vc *viewContext) Scope() scopeid.Path {
	return vc.unit.scope
}

func (vc *viewContext) ID(leaf string) (string, error) {
	return vc.unit.scope.Qualify(leaf)
}

// Mount instantiates a nested unit beneath this unit's scope. The child is
// owned by this unit: it is torn down with the parent, not with the
// session's root list. A unit can only ever mount under its own prefix —
// there is no way to name a scope outside it from here.
func (vc *viewContext) Mount(ctx context.Context, leaf, moduleType string) (markup.Fragment, error) {
	child, err := vc.mounter.mount(ctx, vc.unit.scope, leaf, moduleType)
	if err != nil {
		return nil, err
	}
	vc.unit.addChild(child)
	return child.Markup(), nil
}

// bindContext implements module.BindContext for one unit being mounted.
type bindContext struct {
	unit    *Unit
	reactor *scopedReactor
}

func (bc *bindContext) Scope() scopeid.Path       { return bc.unit.scope }
func (bc *bindContext) Inputs() *scopedview.View  { return bc.unit.inputs }
func (bc *bindContext) Outputs() *scopedview.View { return bc.unit.outputs }
func (bc *bindContext) Reactor() module.Reactor   { return bc.reactor }

// scopedReactor adapts the host's qualified-identifier reactor to the
// leaf-identifier surface a behavior binder sees. Registration qualifies
// the leaf, and the computation's input reader is substituted with the
// unit's restricted view, so a computation can never read outside its own
// scope regardless of what the host passes in.
type scopedReactor struct {
	unit *Unit
}

func (r *scopedReactor) RegisterOutput(ctx context.Context, leaf string, compute host.ComputeFunc) error {
	id, err := r.unit.scope.Qualify(leaf)
	if err != nil {
		return err
	}

	scoped := r.unit.inputs
	wrapped := func(ctx context.Context, _ valuestore.Reader) (cty.Value, error) {
		return compute(ctx, scoped)
	}
	if err := r.unit.session.Reactor().RegisterOutput(ctx, id, wrapped); err != nil {
		return err
	}
	r.unit.recordOutput(id)
	return nil
}
