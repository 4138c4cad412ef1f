package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/appforge/internal/config"
	"github.com/vk/appforge/internal/ctxlog"
)

// DependencyLoader supplies load-if-absent semantics for superclass names.
// Implementations load a class definition into the registry on demand.
type DependencyLoader interface {
	// IsLoaded reports whether the named class is already present in the
	// load registry.
	IsLoaded(name string) bool
	// Load loads the named class definition. It is only called for classes
	// that are not yet loaded.
	Load(ctx context.Context, name string) error
}

// ManifestLoader is a DependencyLoader backed by the parsed application
// manifests. Loading a class means translating its manifest definition into
// a registered, framework-activated descriptor, ancestors included.
type ManifestLoader struct {
	reg   *Registry
	model *config.Model
}

// NewManifestLoader creates a loader that resolves class names against the
// given config model and registers definitions into reg.
func NewManifestLoader(reg *Registry, model *config.Model) *ManifestLoader {
	return &ManifestLoader{reg: reg, model: model}
}

// Validate performs a strict check of the extends graph before any synthesis
// runs. Every name listed in extends must resolve to a manifest or an already
// registered class, and the inheritance edges between manifests must be
// acyclic.
func (l *ManifestLoader) Validate() error {
	var errs []string

	names := make([]string, 0, len(l.model.Apps))
	for name := range l.model.Apps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, super := range l.model.Apps[name].Superclasses {
			if _, ok := l.model.Apps[super]; ok {
				continue
			}
			if _, ok := l.reg.Lookup(super); ok {
				continue
			}
			errs = append(errs, fmt.Sprintf("app '%s' extends '%s', which no manifest or registered class defines", name, super))
		}
	}

	const (
		onStack = 1
		done    = 2
	)
	state := make(map[string]int, len(l.model.Apps))
	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case onStack:
			return fmt.Errorf("inheritance cycle through app '%s'", name)
		case done:
			return nil
		}
		state[name] = onStack
		for _, super := range l.model.Apps[name].Superclasses {
			if _, ok := l.model.Apps[super]; !ok {
				continue
			}
			if err := visit(super); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}
	for _, name := range names {
		if err := visit(name); err != nil {
			errs = append(errs, err.Error())
			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// IsLoaded implements DependencyLoader.
func (l *ManifestLoader) IsLoaded(name string) bool {
	return l.reg.IsLoaded(name)
}

// Load implements DependencyLoader.
func (l *ManifestLoader) Load(ctx context.Context, name string) error {
	return l.load(ctx, name, map[string]bool{})
}

// load tracks the names on the current recursion path in loading so a cyclic
// extends chain fails with an error instead of recursing forever.
func (l *ManifestLoader) load(ctx context.Context, name string, loading map[string]bool) error {
	logger := ctxlog.FromContext(ctx)

	if loading[name] {
		return fmt.Errorf("inheritance cycle through class %q", name)
	}
	loading[name] = true

	def, ok := l.model.Apps[name]
	if !ok {
		return fmt.Errorf("no manifest defines class %q", name)
	}

	// Ancestors first, deepest last-listed superclass onward, so the load
	// registry fills bottom-up exactly as direct synthesis would.
	for i := len(def.Superclasses) - 1; i >= 0; i-- {
		super := def.Superclasses[i]
		if l.reg.IsLoaded(super) {
			continue
		}
		if err := l.load(ctx, super, loading); err != nil {
			return &DependencyLoadError{Class: super, Err: err}
		}
	}

	version := ""
	if def.Version != nil {
		version = *def.Version
	}
	c := l.reg.Define(name, version, def.Superclasses)
	c.Home = def.Home
	if def.Config != nil {
		c.SetConfig(def.Config)
	}
	if err := l.reg.ActivateFramework(ctx, c); err != nil {
		return err
	}

	logger.Debug("Loaded class definition from manifest.", "class", name, "superclasses", def.Superclasses)
	return nil
}
