package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/panelgrid/internal/manifest"
	"github.com/vk/panelgrid/internal/module"
)

func noopBind(ctx context.Context, bc module.BindContext) error { return nil }

func TestRegisterModule_DuplicatePanics(t *testing.T) {
	r := New()
	r.RegisterModule("histogram", &RegisteredModule{Bind: noopBind})

	assert.Panics(t, func() {
		r.RegisterModule("histogram", &RegisteredModule{Bind: noopBind})
	})
}

func TestValidate(t *testing.T) {
	withContract := func(r *Registry, moduleType string, outputs ...string) {
		def := &manifest.Module{
			Type:    moduleType,
			Outputs: make(map[string]manifest.OutputDefinition),
		}
		for _, name := range outputs {
			def.Outputs[name] = manifest.OutputDefinition{Name: name}
		}
		r.DefinitionRegistry[moduleType] = def
	}

	testCases := []struct {
		name      string
		setup     func(r *Registry)
		expectErr string
	}{
		{
			name: "roles and contract in sync",
			setup: func(r *Registry) {
				r.RegisterModule("histogram", &RegisteredModule{Bind: noopBind})
				withContract(r, "histogram", "plot")
			},
		},
		{
			name: "contract without Go roles is tolerated",
			setup: func(r *Registry) {
				withContract(r, "declared_only", "x")
			},
		},
		{
			name: "roles without manifest contract",
			setup: func(r *Registry) {
				r.RegisterModule("orphan", &RegisteredModule{Bind: noopBind})
			},
			expectErr: "no manifest declares the contract",
		},
		{
			name: "missing behavior binder",
			setup: func(r *Registry) {
				r.RegisterModule("viewonly", &RegisteredModule{})
				withContract(r, "viewonly", "plot")
			},
			expectErr: "no behavior binder registered",
		},
		{
			name: "headless module with no outputs",
			setup: func(r *Registry) {
				r.RegisterModule("pointless", &RegisteredModule{Bind: noopBind})
				withContract(r, "pointless")
			},
			expectErr: "can have no effect",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := New()
			tc.setup(r)
			err := r.Validate(context.Background())
			if tc.expectErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestLookup(t *testing.T) {
	r := New()
	r.RegisterModule("histogram", &RegisteredModule{Bind: noopBind})
	r.DefinitionRegistry["histogram"] = &manifest.Module{Type: "histogram"}

	registered, def, err := r.Lookup("histogram")
	require.NoError(t, err)
	assert.NotNil(t, registered)
	assert.Equal(t, "histogram", def.Type)

	_, _, err = r.Lookup("unknown")
	require.Error(t, err)

	r.RegisterModule("nodef", &RegisteredModule{Bind: noopBind})
	_, _, err = r.Lookup("nodef")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest definition")
}
