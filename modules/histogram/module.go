// Package histogram is a composition module plotting the distribution of
// one variable. It is the canonical small module: two input controls and
// one output directive, all addressed through the unit's scope.
package histogram

import (
	"context"
	"fmt"

	"github.com/vk/panelgrid/internal/markup"
	"github.com/vk/panelgrid/internal/module"
	"github.com/vk/panelgrid/internal/registry"
	"github.com/vk/panelgrid/internal/valuestore"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register wires the histogram roles into the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule("histogram", &registry.RegisteredModule{
		View: View,
		Bind: Bind,
	})
}

// choices offered by the variable selector. A host with a dynamic data
// source would feed these through an input instead.
var choices = []string{"speed", "distance", "duration"}

// View renders the variable selector, the bin-count slider, and the plot
// slot. Every control carries an identifier qualified under the unit's
// scope, so two histogram units on one page never collide.
func View(ctx context.Context, vc module.ViewContext) (markup.Fragment, error) {
	varID, err := vc.ID("var")
	if err != nil {
		return nil, err
	}
	binsID, err := vc.ID("bins")
	if err != nil {
		return nil, err
	}
	plotID, err := vc.ID("plot")
	if err != nil {
		return nil, err
	}

	return markup.Fragment{
		markup.Div(vc.Scope().String(),
			markup.Label(varID, "Variable"),
			markup.SelectInput(varID, choices),
			markup.Label(binsID, "Bins"),
			markup.SliderInput(binsID, 1, 100, 30),
			markup.OutputSlot(plotID),
		),
	}, nil
}

// Bind registers the plot computation. The reader it receives is already
// restricted to the unit's scope, so "var" and "bins" here are the same
// controls the view rendered, and nothing else is reachable.
func Bind(ctx context.Context, bc module.BindContext) error {
	return bc.Reactor().RegisterOutput(ctx, "plot", func(ctx context.Context, inputs valuestore.Reader) (cty.Value, error) {
		varVal, ok, err := inputs.Get(ctx, "var")
		if err != nil {
			return cty.NilVal, err
		}
		if !ok {
			return cty.NilVal, fmt.Errorf("histogram: required input 'var' has no value")
		}

		binsVal, ok, err := inputs.Get(ctx, "bins")
		if err != nil {
			return cty.NilVal, err
		}
		if !ok {
			return cty.NilVal, fmt.Errorf("histogram: required input 'bins' has no value")
		}

		bins, _ := binsVal.AsBigFloat().Int64()
		directive := fmt.Sprintf("histogram of %s with %d bins", varVal.AsString(), bins)
		return cty.StringVal(directive), nil
	})
}
