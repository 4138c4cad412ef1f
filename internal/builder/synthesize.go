package builder

import (
	"context"
	"errors"

	"github.com/vk/appforge/internal/ctxlog"
	"github.com/vk/appforge/internal/registry"
)

// synthesize realizes the application class. It runs under the registry's
// per-name lock, so the loading and activation steps execute at most once per
// application name per process, however many builders race to get there.
func (b *Builder) synthesize(ctx context.Context) (*registry.Class, error) {
	logger := ctxlog.FromContext(ctx)

	unlock := b.reg.LockName(b.appName)
	defer unlock()

	// A pre-existing recognized application class is authoritative; the
	// caller predefined it by hand or another builder realized it first.
	if existing, ok := b.reg.Lookup(b.appName); ok && existing.IsApplication() {
		logger.Debug("Class already realized, skipping synthesis.", "class", b.appName)
		return existing, nil
	}

	superclasses, err := b.Superclasses()
	if err != nil {
		return nil, err
	}
	version, err := b.Version()
	if err != nil {
		return nil, err
	}

	// Load superclasses in reverse declaration order so the last listed
	// (most foundational) parent takes precedence in method resolution.
	for i := len(superclasses) - 1; i >= 0; i-- {
		name := superclasses[i]
		if b.loader.IsLoaded(name) {
			continue
		}
		logger.Debug("Loading superclass definition.", "class", name)
		if err := b.loader.Load(ctx, name); err != nil {
			var loadErr *registry.DependencyLoadError
			if errors.As(err, &loadErr) {
				return nil, err
			}
			return nil, &registry.DependencyLoadError{Class: name, Err: err}
		}
	}

	class := b.reg.Define(b.appName, version, superclasses)

	// The generic base template's resource-root defaults are known bad for a
	// synthesized subclass; strip them before activation.
	class.Home = ""
	delete(class.Config, "home")
	delete(class.Config, "root")

	if err := b.reg.ActivateFramework(ctx, class); err != nil {
		return nil, err
	}

	logger.Debug("Application class realized.", "class", b.appName, "version", version, "superclasses", superclasses)
	return class, nil
}
