package builder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/appforge/internal/registry"
)

func TestBootstrap_AppliesMergedConfig(t *testing.T) {
	reg := registry.New()
	b, err := New("MyApp", reg, ExtendConfig(map[string]any{"theme": "dark", "home": "/srv/myapp"}))
	require.NoError(t, err)

	require.NoError(t, b.Bootstrap(testCtx(), RoleEmbedded))

	class, ok := reg.Lookup("MyApp")
	require.True(t, ok)
	assert.Equal(t, "MyApp", class.Config["name"], "base config key must survive")
	assert.Equal(t, "dark", class.Config["theme"])
	assert.Equal(t, "/srv/myapp", class.Home, "the home config key must become the resource root")
}

func TestBootstrap_RoleGatesSetup(t *testing.T) {
	testCases := []struct {
		name      string
		role      Role
		wantSetup bool
	}{
		{name: "entrypoint runs setup", role: RoleEntryPoint, wantSetup: true},
		{name: "test harness runs setup", role: RoleTest, wantSetup: true},
		{name: "embedded skips setup", role: RoleEmbedded, wantSetup: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg := registry.New()
			activated := false
			reg.RegisterPlugin("Tracker", func(ctx context.Context, class *registry.Class, r *registry.Registry) error {
				activated = true
				return nil
			})

			b, err := New("MyApp", reg, WithPlugins("Tracker"))
			require.NoError(t, err)
			require.NoError(t, b.Bootstrap(testCtx(), tc.role))

			assert.Equal(t, tc.wantSetup, activated)

			// Embedded or not, the class must always end up configured.
			class, ok := reg.Lookup("MyApp")
			require.True(t, ok)
			assert.Equal(t, "MyApp", class.Config["name"])
		})
	}
}

func TestBootstrap_UnknownPluginFails(t *testing.T) {
	reg := registry.New()
	b, err := New("MyApp", reg, WithPlugins("NoSuchPlugin"))
	require.NoError(t, err)

	err = b.Bootstrap(testCtx(), RoleEntryPoint)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "NoSuchPlugin")
}

func TestBootstrap_EmbeddedThenOuterMutation(t *testing.T) {
	reg := registry.New()
	b, err := New("MyApp", reg)
	require.NoError(t, err)
	require.NoError(t, b.Bootstrap(testCtx(), RoleEmbedded))

	// An outer builder layers more config onto the already-realized class.
	outer, err := New("MyApp", reg, ExtendConfig(map[string]any{"outer": true}))
	require.NoError(t, err)
	require.NoError(t, outer.Bootstrap(testCtx(), RoleEntryPoint))

	class, ok := reg.Lookup("MyApp")
	require.True(t, ok)
	assert.Equal(t, "MyApp", class.Config["name"])
	assert.Equal(t, true, class.Config["outer"])
}
