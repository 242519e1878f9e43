// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the storage model and the kernel.
// This file contains ONLY type declarations (element constraint, density
// tag); the Matrix struct lives in matrix.go, errors and options in their
// dedicated files.
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a Matrix may store.
// Every integer and floating-point kind is admitted; comparisons performed by
// predicates use the native Go operators of T.
type Number interface {
	constraints.Integer | constraints.Float
}

// Format is the density tag of a Matrix.
type Format uint8

const (
	// Sparse stores one pointer range per vector (P has Vdim+1 entries).
	Sparse Format = iota
	// Hypersparse stores only non-empty vectors; H maps slot → vector index.
	Hypersparse
	// Bitmap stores one slot per (i, j) with an existence flag in B.
	Bitmap
	// Full stores one slot per (i, j); every slot is live.
	Full

	formatCount
)

var formatNames = [formatCount]string{
	Sparse:      "sparse",
	Hypersparse: "hypersparse",
	Bitmap:      "bitmap",
	Full:        "full",
}

// String returns the lower-case name of the format.
func (f Format) String() string {
	if f >= formatCount {
		return fmt.Sprintf("format(%d)", uint8(f))
	}

	return formatNames[f]
}

// Valid reports whether f is one of the four known formats.
func (f Format) Valid() bool { return f < formatCount }

// IsSparseLike reports whether f uses P/I compaction (Sparse or Hypersparse).
func (f Format) IsSparseLike() bool { return f == Sparse || f == Hypersparse }

// IsDenseLike reports whether f exposes one slot per (i, j) (Bitmap or Full).
func (f Format) IsDenseLike() bool { return f == Bitmap || f == Full }
