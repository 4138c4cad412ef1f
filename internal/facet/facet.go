package facet

// Build computes a facet's base default value.
type Build[T any] func() (T, error)

// Override transforms the result of the next-less-specific layer. Calling
// next is optional; an override that never invokes it replaces the base value
// outright.
type Override[T any] func(next func() (T, error)) (T, error)

// Cell is a single lazily derived attribute. Cells are not safe for
// concurrent use; callers that share a cell across goroutines must serialize
// access themselves.
type Cell[T any] struct {
	build     Build[T]
	overrides []Override[T] // most-derived first
	resolved  bool
	value     T
	err       error
}

// New creates an unresolved cell whose default value comes from build.
func New[T any](build Build[T]) *Cell[T] {
	if build == nil {
		panic("facet: build function must not be nil")
	}
	return &Cell[T]{build: build}
}

// Explicit creates a cell pre-resolved to v. Its build chain is never invoked.
func Explicit[T any](v T) *Cell[T] {
	return &Cell[T]{resolved: true, value: v}
}

// Wrap registers an override as the new most-derived layer of the chain.
// Wrapping a cell that has already resolved is a programming error.
func (c *Cell[T]) Wrap(o Override[T]) {
	if o == nil {
		panic("facet: override must not be nil")
	}
	if c.resolved {
		panic("facet: cannot wrap a resolved cell")
	}
	c.overrides = append([]Override[T]{o}, c.overrides...)
}

// Overrides returns the number of registered override layers.
func (c *Cell[T]) Overrides() int {
	return len(c.overrides)
}

// Resolved reports whether the cell's value has been materialized.
func (c *Cell[T]) Resolved() bool {
	return c.resolved
}

// Value evaluates the override chain on first call and returns the cached
// outcome on every call after that, including a cached error.
func (c *Cell[T]) Value() (T, error) {
	if c.resolved {
		return c.value, c.err
	}

	next := func() (T, error) { return c.build() }
	for i := len(c.overrides) - 1; i >= 0; i-- {
		override := c.overrides[i]
		inner := next
		next = func() (T, error) { return override(inner) }
	}

	c.value, c.err = next()
	c.resolved = true
	return c.value, c.err
}
