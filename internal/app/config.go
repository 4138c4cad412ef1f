package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // .hcl app manifests, file or directory
	AppName      string // the application class to build

	Role      string   // entrypoint, embedded, or test
	Fragments []string // resource fragments to resolve after bootstrap

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.AppName == "" {
		return nil, errors.New("AppName is a required configuration field and cannot be empty")
	}
	if cfg.Role == "" {
		cfg.Role = "entrypoint"
	}

	return &cfg, nil
}
