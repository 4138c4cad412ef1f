// Package registry provides the process-wide class registry.
//
// The Registry is the single source of truth for which application classes
// have been realized in this process. It stores class descriptors keyed by
// name, tracks which superclass definitions have been loaded, linearizes
// inheritance hierarchies, and holds the plugin activators that framework
// setup invokes by name.
//
// Classes here are data, not language-level types: a descriptor records a
// name, a version, an ordered superclass list, a resource home, and the
// applied configuration. The rest of the system treats descriptors
// polymorphically through the registry's lookup and linearization operations.
//
// A Registry is created per application instance (or per test) and injected
// into whatever builds against it, so no package-level mutable state leaks
// across tests. Realization of a class name is guarded by a per-name lock so
// the at-most-once guarantee holds even under concurrent use.
package registry
