package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/appforge/internal/config"
	"github.com/vk/appforge/internal/ctxlog"
	"github.com/vk/appforge/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
	loader   *registry.ManifestLoader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry,
// so parallel instances never share process state.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all manifests into the format-agnostic model first.
	model, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		// A failure to load manifests is a fatal startup error.
		panic(fmt.Errorf("failed to load manifests: %w", err))
	}
	logger.Debug("Manifests loaded and translated into unified model.")

	// Create and populate the registry with plugin activators.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All plugin modules registered.", "count", len(modules))

	// Validate the inheritance graph eagerly so unresolvable or cyclic
	// extends chains are rejected before any synthesis starts.
	manifestLoader := registry.NewManifestLoader(reg, model)
	if err := manifestLoader.Validate(); err != nil {
		panic(fmt.Errorf("invalid manifests: %w", err))
	}
	logger.Debug("Manifest inheritance graph validated.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
		loader:   manifestLoader,
	}
}

// Registry returns the application's class registry. This is primarily for
// testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded manifest model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
