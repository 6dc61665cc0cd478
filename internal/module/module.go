// Package module defines the two roles a composition module implements.
//
// A module type contributes a view builder, which produces markup whose
// controls carry qualified identifiers, and a behavior binder, which
// registers reactive computations under the same identifiers. The two
// roles never reference each other directly — they are connected only by
// the shared identifier namespace, and the mounter is responsible for
// wiring them when a unit is instantiated. Keeping them separate is
// deliberate: fusing them into one object breaks down as soon as the data
// a view depends on must itself be computed by the behavior side.
package module

import (
	"context"

	"github.com/vk/panelgrid/internal/host"
	"github.com/vk/panelgrid/internal/markup"
	"github.com/vk/panelgrid/internal/scopedview"
	"github.com/vk/panelgrid/internal/scopeid"
)

// ViewContext is what a view builder sees of its surroundings: its own
// scope, identifier composition under that scope, and the ability to mount
// nested units beneath it.
type ViewContext interface {
	// Scope returns the unit's scope path.
	Scope() scopeid.Path

	// ID composes the qualified identifier for a leaf under the unit's
	// scope. Fails with scopeid.ErrInvalidIdentifier on a malformed leaf.
	ID(leaf string) (string, error)

	// Mount instantiates a nested unit under this unit's scope and
	// returns its markup for embedding. The nested unit's behavior binder
	// runs as part of the mount; its teardown is tied to the parent's.
	Mount(ctx context.Context, leaf, moduleType string) (markup.Fragment, error)
}

// Reactor registers reactive computations by leaf identifier. The binding
// qualifies the leaf against the unit's scope and restricts the
// computation's input reader to that scope before delegating to the host.
type Reactor interface {
	RegisterOutput(ctx context.Context, leaf string, compute host.ComputeFunc) error
}

// BindContext is what a behavior binder sees: scoped views over the two
// ambient registries and a scoped reactor.
type BindContext interface {
	// Scope returns the unit's scope path.
	Scope() scopeid.Path

	// Inputs is the unit's restricted view over the session's input
	// value registry.
	Inputs() *scopedview.View

	// Outputs is the unit's restricted view over the session's output
	// directive registry.
	Outputs() *scopedview.View

	// Reactor registers computations under the unit's scope.
	Reactor() Reactor
}

// ViewFunc is the view-builder role.
type ViewFunc func(ctx context.Context, vc ViewContext) (markup.Fragment, error)

// BindFunc is the behavior-binder role.
type BindFunc func(ctx context.Context, bc BindContext) error
