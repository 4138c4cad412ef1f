package builder

import (
	"github.com/vk/appforge/internal/config"
	"github.com/vk/appforge/internal/registry"
)

// FromDefinition constructs a Builder whose facets are pre-seeded from a
// manifest definition. Only facets the manifest actually declares become
// explicit; the rest keep their default build chains.
func FromDefinition(def *config.AppDefinition, reg *registry.Registry, loader registry.DependencyLoader, opts ...Option) (*Builder, error) {
	if def == nil {
		return nil, &ConfigurationError{Facet: "definition", Reason: "app definition must not be nil"}
	}

	seeded := []Option{WithDebug(def.Debug)}
	if loader != nil {
		seeded = append(seeded, WithDependencyLoader(loader))
	}
	if def.Version != nil {
		seeded = append(seeded, WithVersion(*def.Version))
	}
	if len(def.Superclasses) > 0 {
		seeded = append(seeded, WithSuperclasses(def.Superclasses...))
	}
	if def.Plugins != nil {
		seeded = append(seeded, WithPlugins(def.Plugins...))
	}
	// Manifest config extends the default chain rather than replacing it, so
	// the base name entry (and any programmatic layers) survive underneath.
	if def.Config != nil || def.Home != "" {
		extra := make(map[string]any, len(def.Config)+1)
		for k, v := range def.Config {
			extra[k] = v
		}
		if def.Home != "" {
			extra["home"] = def.Home
		}
		seeded = append(seeded, ExtendConfig(extra))
	}

	return New(def.Name, reg, append(seeded, opts...)...)
}
