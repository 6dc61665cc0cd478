// Package dashboard is a composite module: it mounts two histogram units
// and a textfilter under its own scope. It exists to exercise nesting —
// the inner units neither know nor care that their scope paths have a
// dashboard segment in front.
package dashboard

import (
	"context"

	"github.com/vk/panelgrid/internal/markup"
	"github.com/vk/panelgrid/internal/module"
	"github.com/vk/panelgrid/internal/registry"
	"github.com/vk/panelgrid/internal/valuestore"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register wires the dashboard roles into the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule("dashboard", &registry.RegisteredModule{
		View: View,
		Bind: Bind,
	})
}

// View mounts the nested units and stitches their fragments together.
// Each nested mount also runs that unit's behavior binder, so by the time
// the dashboard's own binder runs, the whole subtree is live.
func View(ctx context.Context, vc module.ViewContext) (markup.Fragment, error) {
	titleID, err := vc.ID("title")
	if err != nil {
		return nil, err
	}

	hist1, err := vc.Mount(ctx, "hist1", "histogram")
	if err != nil {
		return nil, err
	}
	hist2, err := vc.Mount(ctx, "hist2", "histogram")
	if err != nil {
		return nil, err
	}
	filter, err := vc.Mount(ctx, "filter", "textfilter")
	if err != nil {
		return nil, err
	}

	fragment := markup.Fragment{
		markup.Heading("Dashboard"),
		markup.OutputSlot(titleID),
	}
	fragment = fragment.Append(hist1)
	fragment = fragment.Append(hist2)
	fragment = fragment.Append(filter)
	return markup.Fragment{
		markup.Div(vc.Scope().String(), fragment...),
	}, nil
}

// Bind registers the dashboard's own title directive.
func Bind(ctx context.Context, bc module.BindContext) error {
	return bc.Reactor().RegisterOutput(ctx, "title", func(ctx context.Context, inputs valuestore.Reader) (cty.Value, error) {
		return cty.StringVal("side-by-side distributions"), nil
	})
}
