package builder

import (
	"context"

	"github.com/vk/appforge/internal/facet"
	"github.com/vk/appforge/internal/registry"
)

// DefaultVersion is the version assigned to applications that never pin one.
const DefaultVersion = "0.0.1"

// DebugPlugin is the sentinel plugin token prepended to the plugin list of
// debug-enabled applications.
const DebugPlugin = "-Debug"

// Builder derives and caches one application's configuration facets.
type Builder struct {
	appName string
	debug   bool

	reg    *registry.Registry
	loader registry.DependencyLoader

	version      *facet.Cell[string]
	superclasses *facet.Cell[[]string]
	config       *facet.Cell[map[string]any]
	plugins      *facet.Cell[[]string]

	// The class handle is derived exactly once and never rebuilt, even when
	// synthesis failed. It is not user-settable.
	class         *registry.Class
	classErr      error
	classResolved bool
}

// Option mutates a Builder during construction. Supplying an explicit value
// for a facet short-circuits its build chain; wrapping an override onto a
// facet that already has an explicit value is a programmer error and panics.
type Option func(*Builder)

// WithDebug sets the immutable debug flag.
func WithDebug(debug bool) Option {
	return func(b *Builder) { b.debug = debug }
}

// WithDependencyLoader replaces the registry-only default loader.
func WithDependencyLoader(l registry.DependencyLoader) Option {
	return func(b *Builder) { b.loader = l }
}

// WithVersion supplies an explicit version, skipping its build chain.
func WithVersion(version string) Option {
	return func(b *Builder) { b.version = facet.Explicit(version) }
}

// WithSuperclasses supplies an explicit superclass list, skipping its build
// chain. Order is declaration order: the last entry is most foundational.
func WithSuperclasses(superclasses ...string) Option {
	return func(b *Builder) { b.superclasses = facet.Explicit(superclasses) }
}

// WithConfig supplies an explicit config map, skipping its build chain.
func WithConfig(cfg map[string]any) Option {
	return func(b *Builder) { b.config = facet.Explicit(cfg) }
}

// WithPlugins supplies an explicit plugin list, skipping its build chain.
func WithPlugins(plugins ...string) Option {
	return func(b *Builder) { b.plugins = facet.Explicit(plugins) }
}

// OverrideVersion registers a most-derived override on the version chain.
func OverrideVersion(o facet.Override[string]) Option {
	return func(b *Builder) { b.version.Wrap(o) }
}

// OverrideSuperclasses registers a most-derived override on the superclass
// chain.
func OverrideSuperclasses(o facet.Override[[]string]) Option {
	return func(b *Builder) { b.superclasses.Wrap(o) }
}

// OverrideConfig registers a most-derived override on the config chain.
func OverrideConfig(o facet.Override[map[string]any]) Option {
	return func(b *Builder) { b.config.Wrap(o) }
}

// ExtendConfig registers a config override that calls the chain below it and
// merges extra over the result, preserving unrelated keys.
func ExtendConfig(extra map[string]any) Option {
	return OverrideConfig(func(next func() (map[string]any, error)) (map[string]any, error) {
		base, err := next()
		if err != nil {
			return nil, err
		}
		return mergeLayers(base, extra)
	})
}

// OverridePlugins registers a most-derived override on the plugin chain.
func OverridePlugins(o facet.Override[[]string]) Option {
	return func(b *Builder) { b.plugins.Wrap(o) }
}

// New constructs a Builder for the named application against the given
// registry. The name is the immutable identity of the target class and must
// be non-empty.
func New(appName string, reg *registry.Registry, opts ...Option) (*Builder, error) {
	if appName == "" {
		return nil, &ConfigurationError{Facet: "appName", Reason: "application name must not be empty"}
	}
	if reg == nil {
		return nil, &ConfigurationError{Facet: "registry", Reason: "a class registry is required"}
	}

	b := &Builder{
		appName: appName,
		reg:     reg,
	}
	b.version = facet.New(b.buildVersion)
	b.superclasses = facet.New(b.buildSuperclasses)
	b.config = facet.New(b.buildConfig)
	b.plugins = facet.New(b.buildPlugins)

	for _, opt := range opts {
		opt(b)
	}
	if b.loader == nil {
		b.loader = &registryOnlyLoader{reg: reg}
	}
	return b, nil
}

// Name returns the immutable application name.
func (b *Builder) Name() string { return b.appName }

// Debug reports the immutable debug flag.
func (b *Builder) Debug() bool { return b.debug }

// Version materializes the version facet.
func (b *Builder) Version() (string, error) {
	v, err := b.version.Value()
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", &ConfigurationError{Facet: "version", Reason: "version must not be empty"}
	}
	return v, nil
}

// Superclasses materializes the superclass facet, in declaration order.
func (b *Builder) Superclasses() ([]string, error) {
	return b.superclasses.Value()
}

// Config materializes the config facet.
func (b *Builder) Config() (map[string]any, error) {
	cfg, err := b.config.Value()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, &ConfigurationError{Facet: "config", Reason: "config chain produced a nil map"}
	}
	return cfg, nil
}

// Plugins materializes the plugin facet.
func (b *Builder) Plugins() ([]string, error) {
	plugins, err := b.plugins.Value()
	if err != nil {
		return nil, err
	}
	for _, p := range plugins {
		if p == "" {
			return nil, &ConfigurationError{Facet: "plugins", Reason: "plugin names must not be empty"}
		}
	}
	return plugins, nil
}

// Class realizes the application class on first call and returns the same
// handle (or the same failure) on every call after that.
func (b *Builder) Class(ctx context.Context) (*registry.Class, error) {
	if b.classResolved {
		return b.class, b.classErr
	}
	b.class, b.classErr = b.synthesize(ctx)
	b.classResolved = true
	return b.class, b.classErr
}

// registryOnlyLoader satisfies superclass loads from classes already present
// in the registry and refuses to load anything new.
type registryOnlyLoader struct {
	reg *registry.Registry
}

func (l *registryOnlyLoader) IsLoaded(name string) bool { return l.reg.IsLoaded(name) }

func (l *registryOnlyLoader) Load(ctx context.Context, name string) error {
	return &registry.DependencyLoadError{Class: name}
}
