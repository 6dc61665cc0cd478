package manifest

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/panelgrid/internal/ctxlog"
)

// Module is the format-agnostic representation of one module type's
// contract.
type Module struct {
	Type        string
	Description string
	SourceFile  string
	Inputs      map[string]InputDefinition
	Outputs     map[string]OutputDefinition
}

// moduleRootSchema is the top-level file structure: one or more 'module'
// blocks.
type moduleRootSchema struct {
	Modules []*hclModule `hcl:"module,block"`
}

// hclModule is a single 'module' block, decoded in two phases so the body
// can be walked with an explicit schema.
type hclModule struct {
	Type string   `hcl:"type,label"`
	Body hcl.Body `hcl:",remain"`
}

// moduleBodySchema describes the body of a 'module' block.
var moduleBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "input", LabelNames: []string{"name"}},
		{Type: "output", LabelNames: []string{"name"}},
	},
}

// ParseFile decodes an HCL file containing one or more 'module' blocks.
func ParseFile(ctx context.Context, hclFile *hcl.File, filePath string) ([]*Module, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing module contracts from file", "file_path", filePath)

	var allDiags hcl.Diagnostics
	if hclFile == nil {
		allDiags = append(allDiags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
		})
		return nil, allDiags
	}

	schema := &moduleRootSchema{}
	diags := gohcl.DecodeBody(hclFile.Body, nil, schema)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return nil, allDiags
	}

	modules := make([]*Module, 0, len(schema.Modules))
	for _, parsed := range schema.Modules {
		bodyContent, contentDiags := parsed.Body.Content(moduleBodySchema)
		allDiags = append(allDiags, contentDiags...)
		if contentDiags.HasErrors() {
			continue // Skip this module but keep parsing the others.
		}

		definition := &Module{
			Type:       parsed.Type,
			SourceFile: filePath,
		}

		if attr, exists := bodyContent.Attributes["description"]; exists {
			exprDiags := gohcl.DecodeExpression(attr.Expr, nil, &definition.Description)
			allDiags = append(allDiags, exprDiags...)
		}

		var inputDiags hcl.Diagnostics
		definition.Inputs, inputDiags = parseInputs(bodyContent.Blocks)
		allDiags = append(allDiags, inputDiags...)

		var outputDiags hcl.Diagnostics
		definition.Outputs, outputDiags = parseOutputs(bodyContent.Blocks)
		allDiags = append(allDiags, outputDiags...)

		modules = append(modules, definition)
	}

	if allDiags.HasErrors() {
		return nil, allDiags
	}

	logger.Debug("Successfully parsed module contracts", "count", len(modules))
	return modules, nil
}
