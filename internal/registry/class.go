package registry

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/appforge/internal/ctxlog"
)

// Class is the descriptor for a realized (or loadable) application class.
// It is plain data; behavior attached to a class lives in the registry and
// in the plugin activators invoked during setup.
type Class struct {
	Name         string
	Version      string
	Superclasses []string
	// Home is the class's absolute resource root. Empty means the class has
	// no resource root of its own.
	Home   string
	Config map[string]any

	application bool
	root        bool
	active      bool
}

// IsApplication reports whether the class belongs to the framework's
// application family. Predefined foreign classes with the same name as an
// application are not recognized until activated.
func (c *Class) IsApplication() bool {
	return c.application
}

// IsFrameworkRoot reports whether this descriptor is the generic framework
// root class. The root anchors every hierarchy but owns no resource root.
func (c *Class) IsFrameworkRoot() bool {
	return c.root
}

// ResolvePath resolves a relative path fragment against the class's home.
func (c *Class) ResolvePath(fragments ...string) string {
	parts := append([]string{c.Home}, fragments...)
	return filepath.Join(parts...)
}

// SetConfig replaces the class's applied configuration.
func (c *Class) SetConfig(cfg map[string]any) {
	c.Config = cfg
}

// Setup invokes the named plugin activators against the class, in order.
// An unknown plugin name fails immediately; nothing is rolled back.
func (c *Class) Setup(ctx context.Context, reg *Registry, plugins ...string) error {
	logger := ctxlog.FromContext(ctx)
	for _, name := range plugins {
		fn, ok := reg.Plugin(name)
		if !ok {
			return fmt.Errorf("class %q: no plugin registered under name %q", c.Name, name)
		}
		logger.Debug("Activating plugin.", "class", c.Name, "plugin", name)
		if err := fn(ctx, c, reg); err != nil {
			return fmt.Errorf("class %q: plugin %q failed: %w", c.Name, name, err)
		}
	}
	return nil
}
