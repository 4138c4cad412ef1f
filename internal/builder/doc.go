/*
Package builder derives and caches an application's configuration facets and
realizes its class descriptor in the registry.

A Builder is a short-lived value: it exists for the duration of one bootstrap
and is discarded once the realized class and its applied configuration have
become process-wide state in the registry.

Each derived facet (version, superclasses, config, plugins) is a lazy cell
with an explicit override chain (see the facet package). The facets form a
small build graph:

 1. On first access, a facet evaluates its chain once and caches the result.
    An explicit value supplied at construction short-circuits the chain.

 2. The class handle is derived exactly once, and its synthesis pulls the
    superclasses and version facets as a side effect. Synthesis is guarded:
    a pre-existing recognized application class is authoritative, superclass
    definitions are loaded in reverse declaration order, the fresh descriptor
    is stripped of resource-root defaults inherited from the generic base
    template, and the framework's base behavior is activated at most once.

 3. Bootstrap applies the merged config facet to the realized class and,
    only when the caller's declared role warrants it, runs framework setup
    with the plugin list.

 4. InheritedPathTo and AppPathTo resolve resource fragments against the
    realized hierarchy, most-derived first.

A Builder is not safe for concurrent use. The registry's per-name realization
lock keeps the at-most-once guarantee when separate builders race on the same
application name.
*/
package builder
