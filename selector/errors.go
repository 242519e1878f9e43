// SPDX-License-Identifier: MIT
// Package selector: sentinel error set.
// Configuration errors are detected before any worker starts; resource and
// predicate failures abort the call without producing output. Callers match
// with errors.Is; Select wraps every sentinel with "Select(<kind>): ...".

package selector

import "errors"

var (
	// ErrUnknownKind indicates an unrecognized or invalid predicate Kind.
	ErrUnknownKind = errors.New("selector: unknown predicate kind")

	// ErrThunkRequired indicates a value-threshold kind without a thunk.
	ErrThunkRequired = errors.New("selector: thunk required")

	// ErrThunkType indicates a thunk whose dynamic type is not exactly the
	// matrix element type. No implicit conversion is attempted.
	ErrThunkType = errors.New("selector: thunk type does not match element type")

	// ErrUserFunc indicates a KindUser descriptor whose Func is nil or not an
	// index-unary function over the matrix element type.
	ErrUserFunc = errors.New("selector: invalid user predicate")

	// ErrBounds indicates inconsistent row/column bounds (KindResize).
	ErrBounds = errors.New("selector: inconsistent row/column bounds")

	// ErrInPlace indicates an in-place request on an input that cannot be
	// updated in place (anything but a bitmap, or a shape-changing kind).
	ErrInPlace = errors.New("selector: in-place update not supported for this input")

	// ErrOutOfMemory indicates that output or workspace allocation failed or
	// was refused by the configured Budget.
	ErrOutOfMemory = errors.New("selector: out of memory")

	// ErrPredicatePanic indicates that a user predicate panicked inside a worker.
	ErrPredicatePanic = errors.New("selector: predicate panicked")
)
