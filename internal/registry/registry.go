package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/vk/appforge/internal/ctxlog"
)

// RootClassName is the name of the generic framework root class every
// application hierarchy bottoms out in.
const RootClassName = "appforge.App"

// Module is the interface that all compiled-in modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// PluginFunc is a plugin activator invoked during framework setup of a
// realized class.
type PluginFunc func(ctx context.Context, class *Class, reg *Registry) error

// Registry holds the class descriptors, the load registry, and the plugin
// activators for a single application instance.
type Registry struct {
	mu      sync.Mutex
	classes map[string]*Class
	loaded  map[string]bool
	plugins map[string]PluginFunc
	realize map[string]*sync.Mutex
}

// New creates a Registry seeded with the framework root class.
func New() *Registry {
	r := &Registry{
		classes: make(map[string]*Class),
		loaded:  make(map[string]bool),
		plugins: make(map[string]PluginFunc),
		realize: make(map[string]*sync.Mutex),
	}
	r.classes[RootClassName] = &Class{
		Name: RootClassName,
		// The generic base template defaults its resource root to the working
		// directory. Synthesized subclasses must strip this before use.
		Home:        ".",
		application: true,
		root:        true,
		active:      true,
		Config:      map[string]any{},
	}
	r.loaded[RootClassName] = true
	return r
}

// Lookup returns the class registered under name, if any.
func (r *Registry) Lookup(name string) (*Class, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.classes[name]
	return c, ok
}

// Define registers a new class descriptor under name, replacing any previous
// descriptor. The new class inherits the generic base template's resource
// root until its own configuration is applied.
func (r *Registry) Define(name, version string, superclasses []string) *Class {
	r.mu.Lock()
	defer r.mu.Unlock()

	root := r.classes[RootClassName]
	c := &Class{
		Name:         name,
		Version:      version,
		Superclasses: append([]string(nil), superclasses...),
		Home:         root.Home,
		Config:       map[string]any{},
	}
	r.classes[name] = c
	r.loaded[name] = true
	return c
}

// IsLoaded reports whether a class definition for name has been loaded into
// this registry.
func (r *Registry) IsLoaded(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loaded[name]
}

// LockName acquires the realization lock for a class name and returns the
// release function. Realization of one name never blocks realization of
// another.
func (r *Registry) LockName(name string) func() {
	r.mu.Lock()
	m, ok := r.realize[name]
	if !ok {
		m = &sync.Mutex{}
		r.realize[name] = m
	}
	r.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// RegisterPlugin registers a plugin activator under name. Registering the
// same name twice is a programmer error and panics.
func (r *Registry) RegisterPlugin(name string, fn PluginFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.plugins[name]; exists {
		panic(fmt.Sprintf("plugin with name '%s' already registered", name))
	}
	r.plugins[name] = fn
}

// Plugin returns the activator registered under name.
func (r *Registry) Plugin(name string) (PluginFunc, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn, ok := r.plugins[name]
	return fn, ok
}

// ActivateFramework mixes the framework's base behavior into a class: the
// class joins the application family and is linked to the framework root.
// Activation happens at most once per descriptor; repeated calls are no-ops.
func (r *Registry) ActivateFramework(ctx context.Context, c *Class) error {
	logger := ctxlog.FromContext(ctx)

	if c == nil {
		return &FrameworkInitError{Err: fmt.Errorf("cannot activate a nil class")}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if c.active {
		logger.Debug("Framework base already active, skipping.", "class", c.Name)
		return nil
	}
	if _, ok := r.classes[RootClassName]; !ok {
		return &FrameworkInitError{App: c.Name, Err: fmt.Errorf("framework root class %q missing from registry", RootClassName)}
	}
	if registered, ok := r.classes[c.Name]; !ok || registered != c {
		return &FrameworkInitError{App: c.Name, Err: fmt.Errorf("class %q is not registered in this registry", c.Name)}
	}

	c.application = true
	c.active = true
	logger.Debug("Framework base behavior activated.", "class", c.Name)
	return nil
}
