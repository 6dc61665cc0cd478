// Package session owns the per-session lifecycle of the ambient
// registries. A session is created when the host starts serving one user
// session: it gets a fresh input value registry, a fresh output directive
// registry, and the host's reactor handle. Closing the session tears down
// every mounted unit and discards the registries.
package session

import (
	"context"
	"sync"

	"github.com/vk/panelgrid/internal/ctxlog"
	"github.com/vk/panelgrid/internal/host"
	"github.com/vk/panelgrid/internal/inmemorystore"
	"github.com/vk/panelgrid/internal/valuestore"
)

// Closer is anything the session tears down on Close. Mounted root units
// register themselves here.
type Closer interface {
	Close(ctx context.Context) error
}

// Session holds the live state for one host session.
type Session struct {
	inputs  valuestore.Store
	outputs valuestore.Store
	reactor host.Reactor

	mu      sync.Mutex
	units   []Closer
	scopes  map[string]struct{} // qualified scope paths currently mounted
	closed  bool
}

// New creates a session with fresh, empty registries backed by the given
// host reactor.
func New(ctx context.Context, reactor host.Reactor) *Session {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Creating new session.")
	return &Session{
		inputs:  inmemorystore.New(),
		outputs: inmemorystore.New(),
		reactor: reactor,
		scopes:  make(map[string]struct{}),
	}
}

// Inputs returns the session's input value registry.
func (s *Session) Inputs() valuestore.Store { return s.inputs }

// Outputs returns the session's output directive registry.
func (s *Session) Outputs() valuestore.Store { return s.outputs }

// Reactor returns the host's reactive registration mechanism.
func (s *Session) Reactor() host.Reactor { return s.reactor }

// ClaimScope reserves a qualified scope path for a unit. Mounting two
// units at the same scope within one session is rejected, since they would
// mint colliding qualified identifiers.
func (s *Session) ClaimScope(scope string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.scopes[scope]; taken {
		return false
	}
	s.scopes[scope] = struct{}{}
	return true
}

// ReleaseScope frees a previously claimed scope, at unit teardown.
func (s *Session) ReleaseScope(scope string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scopes, scope)
}

// Track registers a root unit for teardown when the session closes.
func (s *Session) Track(unit Closer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = append(s.units, unit)
}

// Close tears down every tracked unit in reverse mount order and discards
// the registries. Close is idempotent.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	units := s.units
	s.units = nil
	s.mu.Unlock()

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Closing session.", "units", len(units))

	var firstErr error
	for i := len(units) - 1; i >= 0; i-- {
		if err := units[i].Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	// Fresh empty stores: anything the host still holds sees no entries.
	s.inputs = inmemorystore.New()
	s.outputs = inmemorystore.New()
	return firstErr
}
