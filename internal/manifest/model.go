package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/panelgrid/internal/ctxlog"
	"github.com/vk/panelgrid/internal/fsutil"
)

// Model aggregates the module contracts loaded from every manifest file.
type Model struct {
	Modules map[string]*Module
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{Modules: make(map[string]*Module)}
}

// Add merges parsed modules into the model. A module type declared twice
// across the manifest set is an error.
func (m *Model) Add(modules ...*Module) error {
	for _, mod := range modules {
		if existing, exists := m.Modules[mod.Type]; exists {
			return fmt.Errorf("module type %q declared in both %s and %s", mod.Type, existing.SourceFile, mod.SourceFile)
		}
		m.Modules[mod.Type] = mod
	}
	return nil
}

// LoadDir recursively parses every .hcl manifest under rootPath into a
// Model.
func LoadDir(ctx context.Context, rootPath string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading module manifests...", "path", rootPath)

	filePaths, err := fsutil.FindFilesByExtension(rootPath, ".hcl")
	if err != nil {
		logger.Error("Failed to walk manifest directory", "path", rootPath, "error", err)
		return nil, err
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", rootPath)
	}

	parser := hclparse.NewParser()
	model := NewModel()

	for _, filePath := range filePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
		}

		modules, diags := ParseFile(ctx, hclFile, filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to process module contracts in %s: %w", filePath, diags)
		}
		if err := model.Add(modules...); err != nil {
			return nil, err
		}
		logger.Debug("Loaded module contracts from manifest file", "file", filePath)
	}

	logger.Info("Module manifests loaded.", "module_types", len(model.Modules))
	return model, nil
}

// LoadBytes parses manifest source held in memory, for tests and embedded
// contracts.
func LoadBytes(ctx context.Context, src []byte, filename string) (*Model, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}

	modules, diags := ParseFile(ctx, hclFile, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to process module contracts in %s: %w", filename, diags)
	}

	model := NewModel()
	if err := model.Add(modules...); err != nil {
		return nil, err
	}
	return model, nil
}
