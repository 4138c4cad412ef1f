package builder

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/appforge/internal/ctxlog"
	"github.com/vk/appforge/internal/registry"
)

func testCtx() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func TestNew_RequiresAppName(t *testing.T) {
	_, err := New("", registry.New())

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "appName", cfgErr.Facet)
}

func TestDefaults(t *testing.T) {
	b, err := New("MyApp", registry.New())
	require.NoError(t, err)

	version, err := b.Version()
	require.NoError(t, err)
	assert.Equal(t, DefaultVersion, version)

	superclasses, err := b.Superclasses()
	require.NoError(t, err)
	assert.Empty(t, superclasses)

	cfg, err := b.Config()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "MyApp"}, cfg)

	plugins, err := b.Plugins()
	require.NoError(t, err)
	assert.Empty(t, plugins)
}

func TestPlugins_DebugSentinel(t *testing.T) {
	b, err := New("MyApp", registry.New(), WithDebug(true))
	require.NoError(t, err)

	plugins, err := b.Plugins()
	require.NoError(t, err)
	require.NotEmpty(t, plugins)
	assert.Equal(t, DebugPlugin, plugins[0], "debug builds must lead with the debug sentinel")

	plain, err := New("OtherApp", registry.New())
	require.NoError(t, err)
	plugins, err = plain.Plugins()
	require.NoError(t, err)
	assert.NotContains(t, plugins, DebugPlugin)
}

func TestExplicitValues_SkipBuildChain(t *testing.T) {
	b, err := New("MyApp", registry.New(),
		WithVersion("9.9.9"),
		WithConfig(map[string]any{"only": "this"}),
		WithPlugins("CSRF"),
	)
	require.NoError(t, err)

	version, err := b.Version()
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", version)

	cfg, err := b.Config()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"only": "this"}, cfg, "explicit config must not pick up the default name entry")

	plugins, err := b.Plugins()
	require.NoError(t, err)
	assert.Equal(t, []string{"CSRF"}, plugins)
}

func TestConfig_Memoized(t *testing.T) {
	calls := 0
	b, err := New("MyApp", registry.New(), OverrideConfig(func(next func() (map[string]any, error)) (map[string]any, error) {
		calls++
		return next()
	}))
	require.NoError(t, err)

	first, err := b.Config()
	require.NoError(t, err)
	second, err := b.Config()
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "override chain must evaluate exactly once")
	// Identical cached value, not a recomputed copy.
	first["marker"] = true
	assert.Equal(t, true, second["marker"], "both reads must share the cached map")
}

func TestExtendConfig_ComposesAdditively(t *testing.T) {
	b, err := New("MyApp", registry.New(), ExtendConfig(map[string]any{"X": "extra"}))
	require.NoError(t, err)

	cfg, err := b.Config()
	require.NoError(t, err)
	assert.Equal(t, "MyApp", cfg["name"], "base key must survive the override")
	assert.Equal(t, "extra", cfg["X"], "override key must be present")
}

func TestOverrideChain_MostDerivedLast(t *testing.T) {
	b, err := New("MyApp", registry.New(),
		OverrideVersion(func(next func() (string, error)) (string, error) {
			v, err := next()
			if err != nil {
				return "", err
			}
			return v + "-parent", nil
		}),
		OverrideVersion(func(next func() (string, error)) (string, error) {
			v, err := next()
			if err != nil {
				return "", err
			}
			return v + "-child", nil
		}),
	)
	require.NoError(t, err)

	version, err := b.Version()
	require.NoError(t, err)
	assert.Equal(t, DefaultVersion+"-parent-child", version)
}

func TestConfig_NilMapIsConfigurationError(t *testing.T) {
	b, err := New("MyApp", registry.New(), OverrideConfig(func(next func() (map[string]any, error)) (map[string]any, error) {
		return nil, nil
	}))
	require.NoError(t, err)

	_, err = b.Config()
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "config", cfgErr.Facet)
}

func TestOverrideExplicitFacetPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = New("MyApp", registry.New(),
			WithVersion("1.0.0"),
			OverrideVersion(func(next func() (string, error)) (string, error) { return next() }),
		)
	})
}
