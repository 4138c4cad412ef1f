package config

// Model is the unified, format-agnostic representation of all application
// definitions loaded from manifests.
type Model struct {
	Apps map[string]*AppDefinition
}

// AppDefinition is one `app` block translated out of its source format.
// Pointer and nil-slice fields distinguish "not declared" from "declared
// empty": an undeclared facet falls through to the builder's default chain,
// a declared one short-circuits it.
type AppDefinition struct {
	Name string
	// Version is nil when the manifest does not pin one.
	Version *string
	// Superclasses preserves manifest declaration order.
	Superclasses []string
	// Home is the class's resource root, already resolved to an absolute
	// path against the manifest's own directory.
	Home  string
	Debug bool
	// Plugins is nil when the manifest declares no plugin list.
	Plugins []string
	// Config is nil when the manifest has no config block.
	Config map[string]any
}
