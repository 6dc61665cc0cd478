// Package host declares the boundary with the host framework's reactive
// execution engine. The engine itself — dependency tracking, invalidation,
// scheduling, rendering — is out of scope for this library; the host hands
// a Reactor to each session and the composition layer only registers and
// unregisters computations keyed by qualified identifier.
package host

import (
	"context"

	"github.com/vk/panelgrid/internal/valuestore"
	"github.com/zclconf/go-cty/cty"
)

// ComputeFunc is a reactive computation. The host invokes it whenever it
// decides the output must be recomputed, passing a reader over the input
// registry. For computations registered through a scoped binding the
// reader is already restricted to the owning unit's scope and keyed by
// leaf identifier.
type ComputeFunc func(ctx context.Context, inputs valuestore.Reader) (cty.Value, error)

// Reactor is the host-supplied mechanism to register reactive computations
// keyed by qualified identifier. Implementations must tolerate concurrent
// registration from sibling units.
type Reactor interface {
	// RegisterOutput installs the computation producing the output
	// directive for a qualified identifier. Registering the same
	// identifier twice is an error.
	RegisterOutput(ctx context.Context, id string, compute ComputeFunc) error

	// UnregisterOutput removes a previously registered computation.
	// Unregistering an unknown identifier is not an error.
	UnregisterOutput(ctx context.Context, id string) error
}
