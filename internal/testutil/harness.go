// Package testutil provides shared helpers for integration-style tests:
// manifest fixtures on disk, captured log output, and panic-recovering app
// construction.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/appforge/internal/app"
	"github.com/vk/appforge/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a bootstrap test run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
	Dir    string
}

// RunBootstrapTest writes the given manifest files into a temp directory,
// constructs an App over them, and runs the requested bootstrap. File names
// are relative paths and may create subdirectories. Startup panics are
// recovered into the result's Err.
func RunBootstrapTest(t *testing.T, files map[string]string, appName, role string, fragments ...string) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	appConfig, err := app.NewConfig(app.Config{
		ManifestPath: tmpDir,
		AppName:      appName,
		Role:         role,
		Fragments:    fragments,
		LogFormat:    "text",
		LogLevel:     "debug",
	})
	require.NoError(t, err)

	out := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(out, appConfig, hcl.NewLoader())
	}()

	if panicErr != nil {
		return &HarnessResult{
			Output: out.String(),
			Err:    fmt.Errorf("application startup panicked | %v", panicErr),
			Dir:    tmpDir,
		}
	}

	runErr := testApp.Run(context.Background(), appConfig)
	return &HarnessResult{
		Output: out.String(),
		Err:    runErr,
		App:    testApp,
		Dir:    tmpDir,
	}
}
