package hcl

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/appforge/internal/ctxlog"
)

func testCtx() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullAppDefinition(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "myapp.hcl", `
app "MyApp" {
  version = "2.1.0"
  extends = ["Admin", "Base"]
  home    = "./myapp"
  debug   = true
  plugins = ["CSRF", "I18N"]

  config {
    theme    = "dark"
    retries  = 3
    verbose  = true
    backends = ["a", "b"]
  }
}
`)

	loader := NewLoader()
	model, err := loader.Load(testCtx(), dir)
	require.NoError(t, err)

	def, ok := model.Apps["MyApp"]
	require.True(t, ok)
	require.NotNil(t, def.Version)
	assert.Equal(t, "2.1.0", *def.Version)
	assert.Equal(t, []string{"Admin", "Base"}, def.Superclasses)
	assert.Equal(t, filepath.Join(dir, "myapp"), def.Home, "home must resolve against the manifest's directory")
	assert.True(t, def.Debug)
	assert.Equal(t, []string{"CSRF", "I18N"}, def.Plugins)

	assert.Equal(t, "dark", def.Config["theme"])
	assert.Equal(t, float64(3), def.Config["retries"])
	assert.Equal(t, true, def.Config["verbose"])
	assert.Equal(t, []any{"a", "b"}, def.Config["backends"])
}

func TestLoad_MinimalAppDefinition(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "minimal.hcl", `
app "Minimal" {}
`)

	model, err := NewLoader().Load(testCtx(), dir)
	require.NoError(t, err)

	def, ok := model.Apps["Minimal"]
	require.True(t, ok)
	assert.Nil(t, def.Version, "an unpinned version must stay nil so defaults apply")
	assert.Empty(t, def.Superclasses)
	assert.Empty(t, def.Home)
	assert.Nil(t, def.Plugins)
	assert.Nil(t, def.Config)
}

func TestLoad_MultipleFilesAndApps(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "a.hcl", `app "A" {}`)
	writeManifest(t, dir, "nested/b.hcl", `
app "B" {}
app "C" { extends = ["B"] }
`)

	model, err := NewLoader().Load(testCtx(), dir)
	require.NoError(t, err)

	assert.Len(t, model.Apps, 3)
	assert.Contains(t, model.Apps, "A")
	assert.Contains(t, model.Apps, "B")
	assert.Contains(t, model.Apps, "C")
}

func TestLoad_SingleFilePath(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "solo.hcl", `app "Solo" {}`)

	model, err := NewLoader().Load(testCtx(), path)
	require.NoError(t, err)

	assert.Contains(t, model.Apps, "Solo")
}

func TestLoad_DuplicateAppFails(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "a.hcl", `app "Dup" {}`)
	writeManifest(t, dir, "b.hcl", `app "Dup" {}`)

	_, err := NewLoader().Load(testCtx(), dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dup")
}

func TestLoad_ParseErrorFails(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "broken.hcl", `app "Broken" {`)

	_, err := NewLoader().Load(testCtx(), dir)

	require.Error(t, err)
}
