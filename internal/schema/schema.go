// Package schema holds the HCL tag-structs that application manifests decode
// into. These types mirror the wire format only; the format-agnostic model
// lives in the config package.
package schema

import "github.com/hashicorp/hcl/v2"

// ConfigBlock represents the content of an app's `config` block. Its
// attributes are free-form and extracted as raw expressions.
type ConfigBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// App represents an `app` block from a manifest file.
type App struct {
	Name    string       `hcl:"name,label"`
	Version *string      `hcl:"version,optional"`
	Extends []string     `hcl:"extends,optional"`
	Home    string       `hcl:"home,optional"`
	Debug   bool         `hcl:"debug,optional"`
	Plugins []string     `hcl:"plugins,optional"`
	Config  *ConfigBlock `hcl:"config,block"`
}

// Manifest represents the top-level structure of a manifest file containing
// one or more app definitions.
type Manifest struct {
	Apps []*App   `hcl:"app,block"`
	Body hcl.Body `hcl:",remain"`
}
