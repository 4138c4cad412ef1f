package builder

// The base build functions below define each facet's default value. They sit
// at the bottom of every override chain.

// buildVersion returns the fixed default version string.
func (b *Builder) buildVersion() (string, error) {
	return DefaultVersion, nil
}

// buildSuperclasses returns no parents; callers override (or supply an
// explicit list) to name real ones.
func (b *Builder) buildSuperclasses() ([]string, error) {
	return nil, nil
}

// buildConfig returns the minimal one-entry map identifying the application.
func (b *Builder) buildConfig() (map[string]any, error) {
	return map[string]any{"name": b.appName}, nil
}

// buildPlugins returns an empty list, or one led by the debug sentinel when
// debug is enabled.
func (b *Builder) buildPlugins() ([]string, error) {
	if b.debug {
		return []string{DebugPlugin}, nil
	}
	return nil, nil
}
