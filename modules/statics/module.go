// Package statics provides the Statics plugin, which aggregates the
// inherited public asset directories of an application hierarchy.
package statics

import (
	"context"

	"github.com/vk/appforge/internal/ctxlog"
	"github.com/vk/appforge/internal/registry"
)

// PluginName is the name the activator registers under.
const PluginName = "Statics"

// publicDir is the per-class directory aggregated across the hierarchy.
const publicDir = "public"

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnActivateStatics walks the realized hierarchy most-derived first and
// records each application ancestor's public directory under the
// "static_paths" config key. Consumers search the list in order, so a child
// asset shadows its parent's.
func OnActivateStatics(ctx context.Context, class *registry.Class, reg *registry.Registry) error {
	logger := ctxlog.FromContext(ctx)

	ancestors, err := reg.Linearize(class.Name)
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(ancestors))
	for _, ancestor := range ancestors {
		if !ancestor.IsApplication() || ancestor.IsFrameworkRoot() {
			continue
		}
		paths = append(paths, ancestor.ResolvePath(publicDir))
	}

	if class.Config == nil {
		class.Config = map[string]any{}
	}
	class.Config["static_paths"] = paths

	logger.Debug("Static paths aggregated.", "class", class.Name, "paths", paths)
	return nil
}

// Register registers the activator with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlugin(PluginName, OnActivateStatics)
}
