// Package debug provides the sentinel debug plugin activated for
// debug-enabled applications.
package debug

import (
	"context"

	"github.com/vk/appforge/internal/builder"
	"github.com/vk/appforge/internal/ctxlog"
	"github.com/vk/appforge/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnActivateDebug marks the realized class as debug-enabled and traces its
// full linearized hierarchy so misbehaving resolution orders are visible in
// the logs.
func OnActivateDebug(ctx context.Context, class *registry.Class, reg *registry.Registry) error {
	logger := ctxlog.FromContext(ctx)

	if class.Config == nil {
		class.Config = map[string]any{}
	}
	class.Config["debug"] = true

	ancestors, err := reg.Linearize(class.Name)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(ancestors))
	for _, a := range ancestors {
		names = append(names, a.Name)
	}
	logger.Info("Debug plugin active.", "class", class.Name, "hierarchy", names)
	return nil
}

// Register registers the activator with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlugin(builder.DebugPlugin, OnActivateDebug)
}
