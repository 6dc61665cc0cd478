package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vk/panelgrid/internal/host"
	"github.com/zclconf/go-cty/cty"
)

// FakeReactor is a minimal host.Reactor for tests. It records registered
// computations and lets a test force a recomputation on demand — no
// dependency tracking, no scheduling, just the registration surface the
// composition layer relies on.
type FakeReactor struct {
	mu           sync.Mutex
	computations map[string]host.ComputeFunc
}

// NewFakeReactor creates an empty FakeReactor.
func NewFakeReactor() *FakeReactor {
	return &FakeReactor{computations: make(map[string]host.ComputeFunc)}
}

// RegisterOutput implements host.Reactor.
func (r *FakeReactor) RegisterOutput(ctx context.Context, id string, compute host.ComputeFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.computations[id]; exists {
		return fmt.Errorf("computation for %q already registered", id)
	}
	r.computations[id] = compute
	return nil
}

// UnregisterOutput implements host.Reactor.
func (r *FakeReactor) UnregisterOutput(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.computations, id)
	return nil
}

// Registered returns the sorted qualified identifiers with live
// computations.
func (r *FakeReactor) Registered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.computations))
	for id := range r.computations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Compute forces the computation registered under id to run. The reader
// argument is nil because scoped registrations substitute their own
// restricted view.
func (r *FakeReactor) Compute(ctx context.Context, id string) (cty.Value, error) {
	r.mu.Lock()
	compute, ok := r.computations[id]
	r.mu.Unlock()
	if !ok {
		return cty.NilVal, fmt.Errorf("no computation registered for %q", id)
	}
	return compute(ctx, nil)
}
