package app

import (
	"context"
	"fmt"

	"github.com/vk/appforge/internal/builder"
	"github.com/vk/appforge/internal/ctxlog"
)

// Run builds and bootstraps the requested application class, then reports
// its resolved resource paths.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	def, ok := a.model.Apps[appConfig.AppName]
	if !ok {
		return fmt.Errorf("no manifest defines app %q", appConfig.AppName)
	}

	role, err := roleFromString(appConfig.Role)
	if err != nil {
		return err
	}

	b, err := builder.FromDefinition(def, a.registry, a.loader)
	if err != nil {
		return fmt.Errorf("failed to construct builder for %q: %w", appConfig.AppName, err)
	}

	if err := b.Bootstrap(ctx, role); err != nil {
		return fmt.Errorf("bootstrap of %q failed: %w", appConfig.AppName, err)
	}

	home, err := b.AppPathTo(".")
	if err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "app %s realized (home: %s)\n", appConfig.AppName, home)

	for _, fragment := range appConfig.Fragments {
		paths, err := b.InheritedPathTo(fragment)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", fragment, err)
		}
		fmt.Fprintf(a.outW, "%s:\n", fragment)
		for _, p := range paths {
			fmt.Fprintf(a.outW, "  %s\n", p)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// roleFromString maps the CLI role flag onto the builder's explicit caller
// role.
func roleFromString(role string) (builder.Role, error) {
	switch role {
	case "entrypoint", "":
		return builder.RoleEntryPoint, nil
	case "embedded":
		return builder.RoleEmbedded, nil
	case "test":
		return builder.RoleTest, nil
	default:
		return 0, fmt.Errorf("unknown caller role %q", role)
	}
}
