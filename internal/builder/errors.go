package builder

import "fmt"

// ConfigurationError reports a build or override function that produced an
// invalid or malformed result.
type ConfigurationError struct {
	Facet  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("invalid %s configuration", e.Facet)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// NotBootstrappedError reports path resolution attempted before the
// application class was realized.
type NotBootstrappedError struct {
	App string
}

func (e *NotBootstrappedError) Error() string {
	return fmt.Sprintf("application %q has not been realized: path resolution requires a bootstrapped class", e.App)
}
