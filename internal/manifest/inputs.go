package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/panelgrid/internal/scopeid"
	"github.com/zclconf/go-cty/cty"
)

// InputDefinition is the contract for a single named input of a module
// type. The name doubles as the leaf identifier of the control in the
// input registry, so it is validated like any other identifier.
type InputDefinition struct {
	// Name is taken from the HCL block label: `input "var" {}` → "var".
	Name string

	// Type is the value type the input must carry.
	Type cty.Type

	// Description optionally documents the input's purpose.
	Description string

	// Default is applied into the unit's scoped input registry at mount
	// time when the caller did not pre-seed a value. Nil means required.
	Default *cty.Value
}

// inputBodySchema describes the body of an `input` block. `type` is
// required but checked manually for a friendlier error.
var inputBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type"},
		{Name: "description"},
		{Name: "default"},
	},
}

// parseInputs finds and decodes all 'input' blocks in a module body.
func parseInputs(blocks hcl.Blocks) (map[string]InputDefinition, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	inputs := make(map[string]InputDefinition)

	for _, block := range blocks.OfType("input") {
		// The schema guarantees one label.
		inputName := block.Labels[0]

		if err := scopeid.ValidateLeaf(inputName); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid input name",
				Detail:   fmt.Sprintf("Input names are leaf identifiers: %v.", err),
				Subject:  &block.DefRange,
			})
			continue
		}

		if _, exists := inputs[inputName]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate input definition",
				Detail:   fmt.Sprintf("An input named '%s' has already been defined.", inputName),
				Subject:  &block.DefRange,
			})
			continue
		}

		bodyContent, contentDiags := block.Body.Content(inputBodySchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		typeAttr, exists := bodyContent.Attributes["type"]
		if !exists {
			missingItemRange := block.Body.MissingItemRange()
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing 'type' attribute",
				Detail:   "The 'type' attribute is required for all input blocks.",
				Subject:  &missingItemRange,
			})
			continue
		}

		ctyType, typeDiags := typeExprToCty(typeAttr.Expr)
		diags = append(diags, typeDiags...)
		if typeDiags.HasErrors() {
			continue
		}

		var description string
		if descAttr, exists := bodyContent.Attributes["description"]; exists {
			evalDiags := gohcl.DecodeExpression(descAttr.Expr, nil, &description)
			diags = append(diags, evalDiags...)
		}

		var defaultValue *cty.Value
		if defaultAttr, exists := bodyContent.Attributes["default"]; exists {
			// A nil eval context: defaults must be literal values.
			val, valDiags := defaultAttr.Expr.Value(nil)
			diags = append(diags, valDiags...)
			if valDiags.HasErrors() {
				continue
			}

			if !val.Type().Equals(ctyType) {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid default value type",
					Detail:   fmt.Sprintf("The default value for '%s' is not compatible with its type, '%s'.", inputName, ctyType.FriendlyName()),
					Subject:  defaultAttr.Expr.Range().Ptr(),
				})
				continue
			}
			defaultValue = &val
		}

		inputs[inputName] = InputDefinition{
			Name:        inputName,
			Type:        ctyType,
			Description: description,
			Default:     defaultValue,
		}
	}

	return inputs, diags
}
