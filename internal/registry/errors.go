package registry

import "fmt"

// DependencyLoadError reports a named superclass that could not be loaded.
type DependencyLoadError struct {
	Class string
	Err   error
}

func (e *DependencyLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("superclass %q could not be loaded: %v", e.Class, e.Err)
	}
	return fmt.Sprintf("superclass %q could not be loaded", e.Class)
}

func (e *DependencyLoadError) Unwrap() error { return e.Err }

// FrameworkInitError reports a failure of the one-time framework activation
// step. It is fatal for the bootstrap attempt; callers must not retry.
type FrameworkInitError struct {
	App string
	Err error
}

func (e *FrameworkInitError) Error() string {
	if e.App == "" {
		return fmt.Sprintf("framework initialization failed: %v", e.Err)
	}
	return fmt.Sprintf("framework initialization failed for %q: %v", e.App, e.Err)
}

func (e *FrameworkInitError) Unwrap() error { return e.Err }
