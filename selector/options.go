// SPDX-License-Identifier: MIT

// Package selector: functional configuration for Select.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) resolving setters over defaults.
package selector

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/lvsparse/slicer"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers when 0.
	DefaultWorkers = 0

	// DefaultChunk is the minimum number of elements (or slots) per task.
	DefaultChunk = slicer.DefaultChunk
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "selector: WithWorkers: n must be >= 1"
	panicChunkInvalid   = "selector: WithChunk: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int
	chunk   int
	logger  *slog.Logger
	budget  *Budget
}

// WithWorkers sets the worker-count hint. The slicer may run fewer tasks
// for small inputs. Panics when n < 1 (programmer error).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithChunk sets the minimum task size in elements. Small values force
// multi-task execution on small inputs (useful in tests). Panics when n < 1.
func WithChunk(n int) Option {
	if n < 1 {
		panic(panicChunkInvalid)
	}

	return func(o *Options) { o.chunk = n }
}

// WithLogger routes debug/warn records to l. A nil l restores the default
// discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithBudget bounds the bytes a call may allocate. Several concurrent calls
// may share one Budget. A nil b removes the bound.
func WithBudget(b *Budget) Option {
	return func(o *Options) { o.budget = b }
}

// gatherOptions applies setters over the defaults (last-writer-wins) and
// finalizes derived values (GOMAXPROCS, discard logger).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		chunk:   DefaultChunk,
	}
	for _, set := range user {
		set(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return o
}
