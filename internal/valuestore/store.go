// Package valuestore defines the interface for the ambient registries the
// host maintains for a session: live mappings from qualified identifier to
// value. Two instances exist per session, one for input values and one for
// output directives. Implementations must be safe for concurrent use by
// multiple composition units.
package valuestore

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Store is a live mapping from qualified identifier to cty.Value.
type Store interface {
	// Set records the current value for a qualified identifier.
	Set(ctx context.Context, id string, value cty.Value) error

	// Get retrieves the current value for a qualified identifier. The
	// boolean reports whether an entry exists.
	Get(ctx context.Context, id string) (cty.Value, bool, error)

	// Delete removes the entry for a qualified identifier. Deleting a
	// missing entry is not an error.
	Delete(ctx context.Context, id string) error

	// Range calls fn for each entry until fn returns false. The iteration
	// order is unspecified.
	Range(ctx context.Context, fn func(id string, value cty.Value) bool) error
}

// Reader is the read-only subset of Store handed to reactive computations.
type Reader interface {
	Get(ctx context.Context, id string) (cty.Value, bool, error)
}
