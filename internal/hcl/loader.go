package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/appforge/internal/config"
	"github.com/vk/appforge/internal/ctxlog"
	"github.com/vk/appforge/internal/fsutil"
	"github.com/vk/appforge/internal/schema"
)

// Loader is the HCL implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader. Every path may be a single .hcl file or a
// directory searched recursively. App names must be unique across all
// loaded manifests.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{Apps: make(map[string]*config.AppDefinition)}
	parser := hclparse.NewParser()

	for _, root := range paths {
		filePaths, err := fsutil.FindFilesByExtension(root, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to discover manifests under %s: %w", root, err)
		}
		if len(filePaths) == 0 {
			logger.Warn("No .hcl manifest files found in path", "path", root)
			continue
		}
		logger.Debug("Found manifest files to load.", "path", root, "files", filePaths)

		for _, filePath := range filePaths {
			hclFile, diags := parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse manifest %s: %w", filePath, diags)
			}

			var manifest schema.Manifest
			if diags := gohcl.DecodeBody(hclFile.Body, nil, &manifest); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode manifest %s: %w", filePath, diags)
			}

			for _, app := range manifest.Apps {
				def, err := l.translateApp(ctx, app, filePath)
				if err != nil {
					return nil, fmt.Errorf("in manifest %s: %w", filePath, err)
				}
				if _, exists := model.Apps[def.Name]; exists {
					return nil, fmt.Errorf("duplicate app definition %q in manifest %s", def.Name, filePath)
				}
				model.Apps[def.Name] = def
			}
			logger.Debug("Loaded definitions from manifest file.", "file", filePath)
		}
	}

	logger.Info("Manifests loaded successfully.", "app_definitions", len(model.Apps))
	return model, nil
}
