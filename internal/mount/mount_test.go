package mount_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/panelgrid/internal/manifest"
	"github.com/vk/panelgrid/internal/mount"
	"github.com/vk/panelgrid/internal/registry"
	"github.com/vk/panelgrid/internal/scopeid"
	"github.com/vk/panelgrid/internal/session"
	"github.com/vk/panelgrid/internal/testutil"
	"github.com/vk/panelgrid/modules/dashboard"
	"github.com/vk/panelgrid/modules/histogram"
	"github.com/vk/panelgrid/modules/textfilter"
	"github.com/zclconf/go-cty/cty"
)

const testManifests = `
module "histogram" {
  input "var"  { type = string }
  input "bins" {
    type    = number
    default = 30
  }
  output "plot" { type = string }
}

module "textfilter" {
  input "query" {
    type    = string
    default = ""
  }
  output "text" { type = string }
}

module "dashboard" {
  output "title" { type = string }
}
`

// newHarness builds a registry with the shipped modules over inline
// manifests, plus a fresh session on a fake reactor.
func newHarness(t *testing.T) (context.Context, *mount.Mounter, *session.Session, *testutil.FakeReactor) {
	t.Helper()
	ctx := context.Background()

	model, err := manifest.LoadBytes(ctx, []byte(testManifests), "test.hcl")
	require.NoError(t, err)

	reg := registry.New()
	for _, mod := range []registry.Module{
		&histogram.Module{},
		&textfilter.Module{},
		&dashboard.Module{},
	} {
		mod.Register(reg)
	}
	reg.PopulateDefinitionsFromModel(model)
	require.NoError(t, reg.Validate(ctx))

	reactor := testutil.NewFakeReactor()
	sess := session.New(ctx, reactor)
	return ctx, mount.New(reg, sess), sess, reactor
}

func TestMount_QualifiesEverything(t *testing.T) {
	ctx, m, sess, reactor := newHarness(t)

	unit, err := m.MountRoot(ctx, "hist1", "histogram")
	require.NoError(t, err)
	assert.Equal(t, "hist1", unit.Scope().String())

	// Every control in the markup carries a qualified identifier.
	ids := unit.Markup().ControlIDs()
	assert.Contains(t, ids, "hist1-var")
	assert.Contains(t, ids, "hist1-bins")
	assert.Contains(t, ids, "hist1-plot")

	// The behavior binder registered under the same namespace.
	assert.Equal(t, []string{"hist1-plot"}, reactor.Registered())

	// The contract's default landed in the session's input registry,
	// fully qualified.
	v, ok, err := sess.Inputs().Get(ctx, "hist1-bins")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, cty.NumberIntVal(30), v)
}

func TestMount_ComputationSeesOnlyItsScope(t *testing.T) {
	ctx, m, sess, reactor := newHarness(t)

	unit, err := m.MountRoot(ctx, "hist1", "histogram")
	require.NoError(t, err)

	// Seed the unit's own input plus a foreign entry with the same leaf.
	require.NoError(t, unit.Inputs().Set(ctx, "var", cty.StringVal("speed")))
	require.NoError(t, sess.Inputs().Set(ctx, "other-var", cty.StringVal("garbage")))

	directive, err := reactor.Compute(ctx, "hist1-plot")
	require.NoError(t, err)
	assert.Equal(t, cty.StringVal("histogram of speed with 30 bins"), directive)
}

func TestMount_MissingRequiredInputFailsComputation(t *testing.T) {
	ctx, m, _, reactor := newHarness(t)

	_, err := m.MountRoot(ctx, "hist1", "histogram")
	require.NoError(t, err)

	// "var" has no default and was never set.
	_, err = reactor.Compute(ctx, "hist1-plot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'var'")
}

func TestMount_InvalidLeafFailsFast(t *testing.T) {
	ctx, m, sess, reactor := newHarness(t)

	_, err := m.MountRoot(ctx, "bad-leaf", "histogram")
	require.Error(t, err)
	assert.ErrorIs(t, err, scopeid.ErrInvalidIdentifier)

	_, err = m.MountRoot(ctx, "", "histogram")
	assert.ErrorIs(t, err, scopeid.ErrInvalidIdentifier)

	// Nothing leaked into the session.
	assert.Empty(t, reactor.Registered())
	count := 0
	require.NoError(t, sess.Inputs().Range(ctx, func(string, cty.Value) bool {
		count++
		return true
	}))
	assert.Zero(t, count)
}

func TestMount_UnknownModuleType(t *testing.T) {
	ctx, m, _, _ := newHarness(t)

	_, err := m.MountRoot(ctx, "x", "sparkline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sparkline")
}

func TestMount_DuplicateScopeRejected(t *testing.T) {
	ctx, m, _, _ := newHarness(t)

	unit, err := m.MountRoot(ctx, "hist1", "histogram")
	require.NoError(t, err)

	_, err = m.MountRoot(ctx, "hist1", "histogram")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already mounted")

	// Tearing the unit down frees the scope for remounting.
	require.NoError(t, unit.Close(ctx))
	_, err = m.MountRoot(ctx, "hist1", "histogram")
	require.NoError(t, err)
}

func TestMount_NestedDashboard(t *testing.T) {
	ctx, m, _, reactor := newHarness(t)

	unit, err := m.MountRoot(ctx, "dash", "dashboard")
	require.NoError(t, err)

	ids := unit.Markup().ControlIDs()
	assert.Contains(t, ids, "dash-title")
	assert.Contains(t, ids, "dash-hist1-var")
	assert.Contains(t, ids, "dash-hist2-var")
	assert.Contains(t, ids, "dash-filter-query")

	assert.Equal(t, []string{
		"dash-filter-text",
		"dash-hist1-plot",
		"dash-hist2-plot",
		"dash-title",
	}, reactor.Registered())
}

func TestMount_SiblingUnitsAreIsolated(t *testing.T) {
	ctx, m, _, reactor := newHarness(t)

	_, err := m.MountRoot(ctx, "dash", "dashboard")
	require.NoError(t, err)

	// Each inner histogram reads its own "var"; setting one must not
	// bleed into its sibling.
	require.NoError(t, m.Session.Inputs().Set(ctx, "dash-hist1-var", cty.StringVal("speed")))
	require.NoError(t, m.Session.Inputs().Set(ctx, "dash-hist2-var", cty.StringVal("distance")))

	plot1, err := reactor.Compute(ctx, "dash-hist1-plot")
	require.NoError(t, err)
	plot2, err := reactor.Compute(ctx, "dash-hist2-plot")
	require.NoError(t, err)

	assert.Equal(t, cty.StringVal("histogram of speed with 30 bins"), plot1)
	assert.Equal(t, cty.StringVal("histogram of distance with 30 bins"), plot2)
}

func TestUnit_CloseTearsDownSubtree(t *testing.T) {
	ctx, m, sess, reactor := newHarness(t)

	unit, err := m.MountRoot(ctx, "dash", "dashboard")
	require.NoError(t, err)
	require.NotEmpty(t, reactor.Registered())

	require.NoError(t, unit.Close(ctx))

	// All computations are gone, including the nested units'.
	assert.Empty(t, reactor.Registered())

	// No registry entries survive under the dashboard's scope.
	count := 0
	require.NoError(t, sess.Inputs().Range(ctx, func(id string, _ cty.Value) bool {
		count++
		return true
	}))
	assert.Zero(t, count)

	// Close is idempotent.
	require.NoError(t, unit.Close(ctx))
}

func TestMount_ConcurrentSiblings(t *testing.T) {
	ctx, m, _, reactor := newHarness(t)

	numUnits := 20
	var wg sync.WaitGroup
	wg.Add(numUnits)
	for i := 0; i < numUnits; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := m.MountRoot(ctx, fmt.Sprintf("hist%d", i), "histogram")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, reactor.Registered(), numUnits)
}
