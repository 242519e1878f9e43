// Package lvsparse is a parallel selection kernel for sparse and dense
// matrices.
//
// Selection builds C from A by keeping only the entries for which a
// predicate f(a_ij, i, j, y) holds. The predicate is either structural
// (tril, triu, diag, offdiag, row/column bounds, resize) or looks at the
// value (nonzero, comparisons with zero or with a scalar thunk y), or it is
// a user callback.
//
// Layout:
//
//	matrix/    generic storage: Sparse, Hypersparse, Bitmap and Full
//	           formats, row or column oriented, with builders, validation
//	           and format conversion
//	slicer/    splits the entries of a packed matrix into balanced tasks
//	           and merges the partial counts of vectors shared by tasks
//	selector/  predicate registry, the two-phase count/compact kernel for
//	           sparse input, the bitmap/full kernel, and the Select façade
//
// Quick start:
//
//	a, _ := matrix.Build(4, 4, rows, cols, vals)
//	low, err := selector.Select(a, selector.Tril(0), selector.WithWorkers(4))
//
// Guarantees:
//   - Kept entries keep their relative order inside every vector.
//   - The result is identical for any worker count.
//   - Sparse input yields sparse output; Bitmap and Full input yield
//     Bitmap (or Full when nothing was dropped).
//   - Failures return a wrapped sentinel error and leave A untouched.
//
// See the examples/ directory for runnable scenarios.
package lvsparse
