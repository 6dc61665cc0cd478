// Package textfilter is a composition module exposing a free-text query
// control and a directive echoing the active filter.
package textfilter

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

// Register wires the textfilter roles into the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModule("textfilter", &registry.RegisteredModule{
		View: View,
		Bind: Bind,
	})
}

// View renders the query control and the filter-state slot.
func View(ctx context.Context, vc module.ViewContext) (markup.Fragment, error) {
	queryID, err := vc.ID("query")
	if err != nil {
		return nil, err
	}
	textID, err := vc.ID("text")
	if err != nil {
		return nil, err
	}

	return markup.Fragment{
		markup.Div(vc.Scope().String(),
			markup.Label(queryID, "Filter"),
			markup.TextInput(queryID, ""),
			markup.OutputSlot(textID),
		),
	}, nil
}

// Bind registers the filter-state computation. "query" always has a value
// because the contract declares a default.
func Bind(ctx context.Context, bc module.BindContext) error {
	return bc.Reactor().RegisterOutput(ctx, "text", func(ctx context.Context, inputs valuestore.Reader) (cty.Value, error) {
		queryVal, ok, err := inputs.Get(ctx, "query")
		if err != nil {
			return cty.NilVal, err
		}
		if !ok {
			return cty.NilVal, fmt.Errorf("textfilter: required input 'query' has no value")
		}

		query := queryVal.AsString()
		if query == "" {
			return cty.StringVal("no filter active"), nil
		}
		return cty.StringVal(fmt.Sprintf("filtering by %q", query)), nil
	})
}
