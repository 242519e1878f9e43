// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for builders and raw constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFormat is the density produced by Build when none is requested.
	DefaultFormat = Sparse

	// DefaultByRow selects row vectors (CSR-like) when true.
	DefaultByRow = true

	// DefaultIso requests a uniform-valued matrix when true.
	DefaultIso = false

	// DefaultValidate runs Validate on matrices produced by raw constructors.
	// Build always produces valid matrices and ignores this flag.
	DefaultValidate = false
)

const panicFormatInvalid = "matrix: WithFormat: unknown format"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	format   Format
	byRow    bool
	iso      bool
	validate bool
}

// WithFormat selects the density produced by Build.
// Panics when f is not one of the four known formats (programmer error).
func WithFormat(f Format) Option {
	if !f.Valid() {
		panic(panicFormatInvalid)
	}

	return func(o *Options) { o.format = f }
}

// WithByRow stores rows as vectors (Vlen = cols, Vdim = rows).
func WithByRow() Option {
	return func(o *Options) { o.byRow = true }
}

// WithByCol stores columns as vectors (Vlen = rows, Vdim = cols).
func WithByCol() Option {
	return func(o *Options) { o.byRow = false }
}

// WithIso declares all values equal; X keeps a single value.
// Build returns ErrNotIso if the supplied values are not uniform.
func WithIso() Option {
	return func(o *Options) { o.iso = true }
}

// WithValidation makes raw constructors run Validate before returning.
func WithValidation() Option {
	return func(o *Options) { o.validate = true }
}

// WithNoValidation disables structural validation in raw constructors (default).
func WithNoValidation() Option {
	return func(o *Options) { o.validate = false }
}

// gatherOptions applies user setters on top of the documented defaults,
// last-writer-wins.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		format:   DefaultFormat,
		byRow:    DefaultByRow,
		iso:      DefaultIso,
		validate: DefaultValidate,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
