// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/appforge/internal/config"
	"github.com/vk/appforge/internal/schema"
)

// translateApp converts an HCL-specific app schema into the agnostic model.
// The home path is resolved against the manifest file's own directory so
// definitions stay valid regardless of the process working directory.
func (l *Loader) translateApp(ctx context.Context, app *schema.App, filePath string) (*config.AppDefinition, error) {
	if app.Name == "" {
		return nil, fmt.Errorf("app block has an empty name label")
	}

	def := &config.AppDefinition{
		Name:         app.Name,
		Version:      app.Version,
		Superclasses: app.Extends,
		Debug:        app.Debug,
		Plugins:      app.Plugins,
	}

	if app.Home != "" {
		home := app.Home
		if !filepath.IsAbs(home) {
			home = filepath.Join(filepath.Dir(filePath), home)
		}
		abs, err := filepath.Abs(home)
		if err != nil {
			return nil, fmt.Errorf("app %q: cannot resolve home path %q: %w", app.Name, app.Home, err)
		}
		def.Home = abs
	}

	if app.Config != nil {
		cfg, err := l.extractConfigAttributes(ctx, app.Config, app.Name)
		if err != nil {
			return nil, err
		}
		def.Config = cfg
	}

	return def, nil
}
