// Package inmemorystore provides an ephemeral, thread-safe, in-memory
// implementation of the valuestore.Store interface.
//
// A fresh store is created for each session and discarded with it; nothing
// is persisted. It uses sync.Map because the workload is many independent
// qualified-identifier keys written and read concurrently by sibling
// composition units, which benefits from fine-grained access without a
// global lock.
package inmemorystore

import (
	"context"
	"sync"

	"github.com/vk/panelgrid/internal/valuestore"
	"github.com/zclconf/go-cty/cty"
)

// Store is an in-memory implementation of valuestore.Store.
type Store struct {
	values sync.Map // Key: qualified identifier string, Value: cty.Value
}

// New creates a new, empty in-memory value store.
func New() valuestore.Store {
	return &Store{}
}

// Set records the current value for a qualified identifier.
func (s *Store) Set(ctx context.Context, id string, value cty.Value) error {
	s.values.Store(id, value)
	return nil
}

// Get retrieves the current value for a qualified identifier.
func (s *Store) Get(ctx context.Context, id string) (cty.Value, bool, error) {
	v, ok := s.values.Load(id)
	if !ok {
		return cty.NilVal, false, nil
	}
	return v.(cty.Value), true, nil
}

// Delete removes the entry for a qualified identifier.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.values.Delete(id)
	return nil
}

// Range calls fn for each entry until fn returns false.
func (s *Store) Range(ctx context.Context, fn func(id string, value cty.Value) bool) error {
	s.values.Range(func(k, v any) bool {
		return fn(k.(string), v.(cty.Value))
	})
	return nil
}
