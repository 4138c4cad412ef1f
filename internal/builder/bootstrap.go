package builder

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/vk/appforge/internal/ctxlog"
)

// Role declares who is driving the bootstrap. It replaces the original
// design's call-stack heuristic with an explicit, inspectable signal computed
// once at the true entry point.
type Role int

const (
	// RoleEmbedded leaves the class configured but not started, so an outer
	// builder can mutate config further before activation.
	RoleEmbedded Role = iota
	// RoleEntryPoint marks the top-level program entry point.
	RoleEntryPoint
	// RoleTest marks the test harness.
	RoleTest
)

// String implements fmt.Stringer for log output.
func (r Role) String() string {
	switch r {
	case RoleEmbedded:
		return "embedded"
	case RoleEntryPoint:
		return "entrypoint"
	case RoleTest:
		return "test"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// runsSetup reports whether this role triggers framework setup.
func (r Role) runsSetup() bool {
	return r == RoleEntryPoint || r == RoleTest
}

// Bootstrap realizes the class, applies the merged config facet to it, and,
// when the role warrants it, runs framework setup with the plugin list.
// It either fully succeeds or fails loudly; no partial state is reported as
// success.
func (b *Builder) Bootstrap(ctx context.Context, role Role) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Bootstrap started.", "app", b.appName, "role", role.String())

	class, err := b.Class(ctx)
	if err != nil {
		return err
	}

	cfg, err := b.Config()
	if err != nil {
		return err
	}

	// The builder's config layers over whatever the class already carries,
	// preserving unrelated keys.
	merged, err := mergeLayers(class.Config, cfg)
	if err != nil {
		return &ConfigurationError{Facet: "config", Err: err}
	}
	class.SetConfig(merged)
	if home, ok := merged["home"].(string); ok && home != "" {
		class.Home = home
	}
	logger.Debug("Configuration applied to realized class.", "app", b.appName, "keys", len(merged))

	if !role.runsSetup() {
		logger.Debug("Setup skipped for caller role.", "app", b.appName, "role", role.String())
		return nil
	}

	plugins, err := b.Plugins()
	if err != nil {
		return err
	}
	if err := class.Setup(ctx, b.reg, plugins...); err != nil {
		return &ConfigurationError{Facet: "plugins", Err: err}
	}

	logger.Info("Application bootstrapped.", "app", b.appName, "version", class.Version, "plugins", len(plugins))
	return nil
}

// mergeLayers merges config maps left to right, later layers overriding
// earlier ones key by key.
func mergeLayers(layers ...map[string]any) (map[string]any, error) {
	k := koanf.New(".")
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if err := k.Load(confmap.Provider(layer, "."), nil); err != nil {
			return nil, err
		}
	}
	return k.Raw(), nil
}
