package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/appforge/internal/config"
)

func strPtr(s string) *string { return &s }

func TestManifestLoader_LoadsDefinitionAndAncestors(t *testing.T) {
	reg := New()
	model := &config.Model{Apps: map[string]*config.AppDefinition{
		"Base": {Name: "Base", Version: strPtr("1.0.0"), Home: "/srv/base"},
		"Admin": {
			Name:         "Admin",
			Superclasses: []string{"Base"},
			Home:         "/srv/admin",
			Config:       map[string]any{"area": "admin"},
		},
	}}
	loader := NewManifestLoader(reg, model)

	require.NoError(t, loader.Load(testCtx(), "Admin"))

	admin, ok := reg.Lookup("Admin")
	require.True(t, ok)
	assert.True(t, admin.IsApplication())
	assert.Equal(t, "/srv/admin", admin.Home)
	assert.Equal(t, "admin", admin.Config["area"])

	base, ok := reg.Lookup("Base")
	require.True(t, ok, "ancestors must load transitively")
	assert.True(t, base.IsApplication())
	assert.Equal(t, "1.0.0", base.Version)
	assert.True(t, loader.IsLoaded("Base"))
}

func TestManifestLoader_MissingManifestFails(t *testing.T) {
	reg := New()
	loader := NewManifestLoader(reg, &config.Model{Apps: map[string]*config.AppDefinition{}})

	err := loader.Load(testCtx(), "Ghost")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ghost")
}

func TestManifestLoader_CyclicExtendsFailsInsteadOfRecursing(t *testing.T) {
	reg := New()
	model := &config.Model{Apps: map[string]*config.AppDefinition{
		"A": {Name: "A", Superclasses: []string{"B"}},
		"B": {Name: "B", Superclasses: []string{"A"}},
	}}
	loader := NewManifestLoader(reg, model)

	err := loader.Load(testCtx(), "A")

	var loadErr *DependencyLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "cycle")
}

func TestManifestLoader_SelfExtendsFails(t *testing.T) {
	reg := New()
	model := &config.Model{Apps: map[string]*config.AppDefinition{
		"Narcissus": {Name: "Narcissus", Superclasses: []string{"Narcissus"}},
	}}
	loader := NewManifestLoader(reg, model)

	err := loader.Load(testCtx(), "Narcissus")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestManifestLoader_ValidateAcceptsResolvableGraph(t *testing.T) {
	reg := New()
	model := &config.Model{Apps: map[string]*config.AppDefinition{
		"Base":  {Name: "Base"},
		"Child": {Name: "Child", Superclasses: []string{"Base", RootClassName}},
	}}

	require.NoError(t, NewManifestLoader(reg, model).Validate())
}

func TestManifestLoader_ValidateRejectsUnknownSuperclass(t *testing.T) {
	reg := New()
	model := &config.Model{Apps: map[string]*config.AppDefinition{
		"Orphan": {Name: "Orphan", Superclasses: []string{"Ghost"}},
	}}

	err := NewManifestLoader(reg, model).Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Orphan")
	assert.Contains(t, err.Error(), "Ghost")
}

func TestManifestLoader_ValidateRejectsInheritanceCycle(t *testing.T) {
	reg := New()
	model := &config.Model{Apps: map[string]*config.AppDefinition{
		"A": {Name: "A", Superclasses: []string{"B"}},
		"B": {Name: "B", Superclasses: []string{"C"}},
		"C": {Name: "C", Superclasses: []string{"A"}},
	}}

	err := NewManifestLoader(reg, model).Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestManifestLoader_AncestorFailureNamesClass(t *testing.T) {
	reg := New()
	model := &config.Model{Apps: map[string]*config.AppDefinition{
		"Admin": {Name: "Admin", Superclasses: []string{"Ghost"}},
	}}
	loader := NewManifestLoader(reg, model)

	err := loader.Load(testCtx(), "Admin")

	var loadErr *DependencyLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "Ghost", loadErr.Class)
}
