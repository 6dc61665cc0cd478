package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/panelgrid/internal/scopeid"
	"github.com/zclconf/go-cty/cty"
)

// OutputDefinition is the contract for a single named output directive a
// module type produces. Like inputs, the name doubles as a leaf
// identifier.
type OutputDefinition struct {
	Name        string
	Type        cty.Type
	Description string
}

// outputBodySchema describes the body of an `output` block.
var outputBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type", Required: true},
		{Name: "description"},
	},
}

// parseOutputs finds and decodes all 'output' blocks in a module body.
func parseOutputs(blocks hcl.Blocks) (map[string]OutputDefinition, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	outputs := make(map[string]OutputDefinition)

	for _, block := range blocks.OfType("output") {
		outputName := block.Labels[0]

		if err := scopeid.ValidateLeaf(outputName); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid output name",
				Detail:   fmt.Sprintf("Output names are leaf identifiers: %v.", err),
				Subject:  &block.DefRange,
			})
			continue
		}

		if _, exists := outputs[outputName]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate output definition",
				Detail:   fmt.Sprintf("An output named '%s' has already been defined.", outputName),
				Subject:  &block.DefRange,
			})
			continue
		}

		bodyContent, contentDiags := block.Body.Content(outputBodySchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		typeAttr := bodyContent.Attributes["type"]
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

		outputs[outputName] = OutputDefinition{
			Name:        outputName,
			Type:        ctyType,
			Description: description,
		}
	}

	return outputs, diags
}
