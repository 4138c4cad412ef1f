package registry

import "fmt"

// Linearize returns the deterministic ancestor sequence of the named class,
// most-derived first and including the class itself. Superclasses are walked
// depth-first in declaration order; the first occurrence of a class wins, so
// the last listed superclass stays most foundational. Every application
// hierarchy is anchored by the framework root, which always linearizes last.
func (r *Registry) Linearize(name string) ([]*Class, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var order []*Class
	seen := make(map[string]bool)

	var walk func(name string) error
	walk = func(name string) error {
		if seen[name] {
			return nil
		}
		c, ok := r.classes[name]
		if !ok {
			return fmt.Errorf("class %q referenced in hierarchy but not registered", name)
		}
		seen[name] = true
		order = append(order, c)
		for _, super := range c.Superclasses {
			if err := walk(super); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(name); err != nil {
		return nil, err
	}

	if !seen[RootClassName] {
		order = append(order, r.classes[RootClassName])
	}
	return order, nil
}
