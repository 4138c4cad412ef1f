package builder

import (
	"github.com/vk/appforge/internal/registry"
)

// realizedClass returns the class handle when realization has already
// happened, without triggering it.
func (b *Builder) realizedClass() (*registry.Class, error) {
	if !b.classResolved {
		return nil, &NotBootstrappedError{App: b.appName}
	}
	if b.classErr != nil {
		return nil, b.classErr
	}
	return b.class, nil
}

// InheritedPathTo resolves the given path fragments against every recognized
// application class in the realized hierarchy, most-derived first. The
// generic framework root is excluded; it has no meaningful resource root.
// Callers rely on the order to implement override-then-fallback resource
// search. An empty result is not an error.
func (b *Builder) InheritedPathTo(fragments ...string) ([]string, error) {
	class, err := b.realizedClass()
	if err != nil {
		return nil, err
	}

	ancestors, err := b.reg.Linearize(class.Name)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(ancestors))
	for _, ancestor := range ancestors {
		if !ancestor.IsApplication() || ancestor.IsFrameworkRoot() {
			continue
		}
		paths = append(paths, ancestor.ResolvePath(fragments...))
	}
	return paths, nil
}

// AppPathTo resolves the given path fragments against the realized class
// itself, with no hierarchy walk.
func (b *Builder) AppPathTo(fragments ...string) (string, error) {
	class, err := b.realizedClass()
	if err != nil {
		return "", err
	}
	return class.ResolvePath(fragments...), nil
}
