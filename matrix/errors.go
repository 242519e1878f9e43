// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and utilities return these sentinels (possibly wrapped with
// call-site context via %w); tests match them with errors.Is. No function in
// this package panics on user-supplied data.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for grep-ability.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> lengths -> indices -> ordering -> format-specific.

var (
	// ErrNilMatrix indicates that a nil *Matrix was passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates negative row/column extents.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrDimensionMismatch indicates that parallel input arrays disagree in
	// length (e.g. rows/cols/vals triplets, or len(X) vs. len(I)).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row, column or vector index lies outside
	// the matrix extents.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidFormat indicates an unknown Format value or packed arrays that
	// do not belong to the declared format.
	ErrInvalidFormat = errors.New("matrix: invalid format")

	// ErrMalformedPointers indicates a vector-pointer array P that is not
	// anchored at 0 or not non-decreasing.
	ErrMalformedPointers = errors.New("matrix: malformed vector pointers")

	// ErrUnsortedIndices indicates indices that are not strictly ascending
	// within a vector (or an H array that is not strictly ascending).
	ErrUnsortedIndices = errors.New("matrix: indices not strictly ascending")

	// ErrDuplicateEntry indicates that Build received the same (row, col) twice.
	ErrDuplicateEntry = errors.New("matrix: duplicate entry")

	// ErrNotFull indicates that a Full matrix was requested but at least one
	// slot has no entry.
	ErrNotFull = errors.New("matrix: not every slot is present")

	// ErrNotIso indicates that an iso matrix was requested but the values differ.
	ErrNotIso = errors.New("matrix: values are not uniform")
)
