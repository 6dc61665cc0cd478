// Package scopedview restricts a composition unit's view of an ambient
// value registry to the entries under the unit's own scope path.
//
// A View with scope path P can read and write only qualified identifiers
// that start with P plus the reserved separator; sibling and ancestor
// entries are invisible to it. The View itself is stateless — all mutable
// state and all synchronization live in the wrapped store — so any number
// of sibling views over the same store are race-free.
package scopedview

import (
	"context"
	"strings"

	"github.com/vk/panelgrid/internal/scopeid"
	"github.com/vk/panelgrid/internal/valuestore"
	"github.com/zclconf/go-cty/cty"
)

// View is a prefix-restricted window onto a valuestore.Store. Leaf
// identifiers observed through the view are unqualified; the view
// qualifies them against its scope path before touching the store.
type View struct {
	store valuestore.Store
	scope scopeid.Path
}

// New wraps store so that only entries under scope are visible. The root
// scope exposes the whole store.
func New(store valuestore.Store, scope scopeid.Path) *View {
	return &View{store: store, scope: scope}
}

// Scope returns the scope path this view is restricted to.
func (v *View) Scope() scopeid.Path {
	return v.scope
}

// Narrow derives a view restricted to a child scope of this one.
func (v *View) Narrow(leaf string) (*View, error) {
	child, err := v.scope.Child(leaf)
	if err != nil {
		return nil, err
	}
	return &View{store: v.store, scope: child}, nil
}

// Get retrieves the value for a leaf identifier within the view's scope.
func (v *View) Get(ctx context.Context, leaf string) (cty.Value, bool, error) {
	id, err := v.scope.Qualify(leaf)
	if err != nil {
		return cty.NilVal, false, err
	}
	return v.store.Get(ctx, id)
}

// Set records the value for a leaf identifier within the view's scope.
func (v *View) Set(ctx context.Context, leaf string, value cty.Value) error {
	id, err := v.scope.Qualify(leaf)
	if err != nil {
		return err
	}
	return v.store.Set(ctx, id, value)
}

// Delete removes the entry for a leaf identifier within the view's scope.
func (v *View) Delete(ctx context.Context, leaf string) error {
	id, err := v.scope.Qualify(leaf)
	if err != nil {
		return err
	}
	return v.store.Delete(ctx, id)
}

// Snapshot returns exactly the subset of the store whose qualified
// identifiers fall under the view's scope, keyed by the identifier with
// the scope prefix stripped. For the root scope the snapshot is the whole
// store keyed as-is.
func (v *View) Snapshot(ctx context.Context) (map[string]cty.Value, error) {
	snapshot := make(map[string]cty.Value)
	prefix := v.prefix()
	err := v.store.Range(ctx, func(id string, value cty.Value) bool {
		if prefix == "" {
			snapshot[id] = value
			return true
		}
		if strings.HasPrefix(id, prefix) {
			snapshot[strings.TrimPrefix(id, prefix)] = value
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Clear deletes every entry under the view's scope. Used at unit teardown.
func (v *View) Clear(ctx context.Context) error {
	prefix := v.prefix()
	var ids []string
	err := v.store.Range(ctx, func(id string, _ cty.Value) bool {
		if prefix == "" || strings.HasPrefix(id, prefix) {
			ids = append(ids, id)
		}
		return true
	})
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := v.store.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// prefix is the qualified-identifier prefix entries must carry to be
// visible, including the trailing separator. Empty for the root scope.
func (v *View) prefix() string {
	if v.scope.IsRoot() {
		return ""
	}
	return v.scope.String() + scopeid.Separator
}
