// Package facet implements lazily computed, memoized attribute cells with
// explicit override chains.
//
// A Cell holds one derived attribute of a builder. Its final value is produced
// by a chain of functions: a base Build function computing the default, and
// zero or more Override layers stacked on top, most-derived first. Each
// override receives the next-less-specific layer as a callable and may invoke
// it before transforming its result, or skip it entirely to discard the base
// value.
//
// The chain is evaluated at most once, on first read. The outcome (value or
// error) is cached for the lifetime of the cell, so repeated reads are stable
// even when the underlying functions are not deterministic. A cell constructed
// with Explicit never evaluates its chain at all.
//
// The chain is plain data rather than virtual dispatch, so each layer can be
// registered, inspected, and tested in isolation.
package facet
