// Package config defines the format-agnostic configuration model for
// application manifests, along with the Loader interface for reading
// manifests from various sources.
//
// The config.Model is the single source of truth for explicit facet values
// and loadable class definitions consumed by the builder and the registry's
// dependency loader. Concrete implementations of Loader, such as for HCL,
// are provided in separate packages.
package config
