// SPDX-License-Identifier: MIT

// Package matrix - packed Matrix[T] and its read-only accessors.
//
// Purpose:
//   - Hold the packed arrays (H, P, I, X, B) exactly as the kernel reads them.
//   - Offer safe, allocation-free accessors (At, Do) for callers and tests.
//   - Translate between vector coordinates (i within vector, j = vector) and
//     user coordinates (row, col) in exactly one place (orientation).
//
// Complexity quicksheet:
//   - Rows/Cols/NVals/Value/VectorIndex: O(1).
//   - At: O(log len(vector)) sparse, O(log nvec + log len(vector)) hyper, O(1) dense.
//   - Do/Tuples/Clone/String: O(nvals) sparse, O(vlen*vdim) bitmap/full.

package matrix

import (
	"fmt"
	"sort"
	"strings"
)

// Matrix is a packed 2-D container of numeric values.
//
// Fields are exported because the selection kernel works on the packed
// arrays directly; callers must treat a Matrix handed to the kernel as
// read-only. Use Validate to check the invariants below.
//
//   - Vlen: length of every vector; Vdim: number of vectors.
//   - Nvec: number of stored vectors (== Vdim unless Hypersparse).
//   - H: Hypersparse only; strictly ascending vector indices, len Nvec.
//   - P: Sparse/Hypersparse only; len Nvec+1, P[0]==0, non-decreasing.
//   - I: Sparse/Hypersparse only; strictly ascending within each vector.
//   - X: values (len 1 when Iso).
//   - B: Bitmap only; len Vlen*Vdim, entries 0 or 1.
//   - Nvals: Bitmap only; number of live slots (sum of B).
type Matrix[T Number] struct {
	Vlen, Vdim int
	Nvec       int

	H []int
	P []int
	I []int
	X []T
	B []int8

	Nvals int

	Format Format
	Iso    bool
	ByRow  bool
}

// Rows returns the number of user-visible rows.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	if m.ByRow {
		return m.Vdim
	}

	return m.Vlen
}

// Cols returns the number of user-visible columns.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	if m.ByRow {
		return m.Vlen
	}

	return m.Vdim
}

// Shape packs Rows() and Cols() into a single call.
// Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// NVals returns the number of stored entries.
// Complexity: O(1).
func (m *Matrix[T]) NVals() int {
	switch m.Format {
	case Sparse, Hypersparse:
		if len(m.P) == 0 {
			return 0
		}
		return m.P[m.Nvec] - m.P[0]
	case Bitmap:
		return m.Nvals
	default:
		return m.Vlen * m.Vdim
	}
}

// Value returns the value stored at packed position p, honoring Iso.
// Complexity: O(1).
func (m *Matrix[T]) Value(p int) T {
	if m.Iso {
		return m.X[0]
	}

	return m.X[p]
}

// VectorIndex returns the vector index held in stored slot k.
// Complexity: O(1).
func (m *Matrix[T]) VectorIndex(k int) int {
	if m.H != nil {
		return m.H[k]
	}

	return k
}

// UserCoords maps vector coordinates (i within vector j) to (row, col).
func (m *Matrix[T]) UserCoords(i, j int) (row, col int) {
	if m.ByRow {
		return j, i
	}

	return i, j
}

// VectorCoords maps (row, col) to vector coordinates (i within vector j).
func (m *Matrix[T]) VectorCoords(row, col int) (i, j int) {
	if m.ByRow {
		return col, row
	}

	return row, col
}

// At returns the value at (row, col) and whether an entry is stored there.
// Implementation:
//   - Stage 1: bounds-check (row, col); map to (i, j).
//   - Stage 2: locate the slot per format (binary search for Sparse/Hypersparse).
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - O(log n) for sparse formats, O(1) for bitmap/full.
func (m *Matrix[T]) At(row, col int) (T, bool, error) {
	var zero T
	if m == nil {
		return zero, false, ErrNilMatrix
	}
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return zero, false, fmt.Errorf("Matrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	i, j := m.VectorCoords(row, col)

	switch m.Format {
	case Bitmap:
		p := j*m.Vlen + i
		if m.B[p] == 0 {
			return zero, false, nil
		}
		return m.Value(p), true, nil
	case Full:
		return m.Value(j*m.Vlen + i), true, nil
	}

	k := j
	if m.Format == Hypersparse {
		k = sort.SearchInts(m.H, j)
		if k == len(m.H) || m.H[k] != j {
			return zero, false, nil
		}
	}
	lo, hi := m.P[k], m.P[k+1]
	p := lo + sort.SearchInts(m.I[lo:hi], i)
	if p < hi && m.I[p] == i {
		return m.Value(p), true, nil
	}

	return zero, false, nil
}

// Do calls fn for every stored entry in storage order (vector by vector,
// ascending index within a vector) until fn returns false.
// Complexity: O(nvals) sparse, O(vlen*vdim) bitmap/full.
func (m *Matrix[T]) Do(fn func(row, col int, v T) bool) {
	if m == nil {
		return
	}
	switch m.Format {
	case Sparse, Hypersparse:
		for k := 0; k < m.Nvec; k++ {
			j := m.VectorIndex(k)
			for p := m.P[k]; p < m.P[k+1]; p++ {
				r, c := m.UserCoords(m.I[p], j)
				if !fn(r, c, m.Value(p)) {
					return
				}
			}
		}
	case Bitmap, Full:
		for j := 0; j < m.Vdim; j++ {
			base := j * m.Vlen
			for i := 0; i < m.Vlen; i++ {
				if m.B != nil && m.B[base+i] == 0 {
					continue
				}
				r, c := m.UserCoords(i, j)
				if !fn(r, c, m.Value(base+i)) {
					return
				}
			}
		}
	}
}

// Tuples extracts all entries as parallel (row, col, value) slices in
// storage order.
// Complexity: O(nvals) time and space (plus the slot scan for bitmap/full).
func (m *Matrix[T]) Tuples() (rows, cols []int, vals []T) {
	n := m.NVals()
	rows = make([]int, 0, n)
	cols = make([]int, 0, n)
	vals = make([]T, 0, n)
	m.Do(func(r, c int, v T) bool {
		rows = append(rows, r)
		cols = append(cols, c)
		vals = append(vals, v)
		return true
	})

	return rows, cols, vals
}

// Clone returns a deep copy with independent buffers.
// Complexity: O(len of all packed arrays).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}
	cp := *m
	cp.H = cloneSlice(m.H)
	cp.P = cloneSlice(m.P)
	cp.I = cloneSlice(m.I)
	cp.X = cloneSlice(m.X)
	cp.B = cloneSlice(m.B)

	return &cp
}

// String renders a header line followed by one "(row,col) value" line per
// entry. Intended for diagnostics and test failure messages.
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	orient := "bycol"
	if m.ByRow {
		orient = "byrow"
	}
	iso := ""
	if m.Iso {
		iso = " iso"
	}
	fmt.Fprintf(&b, "%s %dx%d nvals=%d %s%s\n", m.Format, m.Rows(), m.Cols(), m.NVals(), orient, iso)
	m.Do(func(r, c int, v T) bool {
		fmt.Fprintf(&b, "(%d,%d) %v\n", r, c, v)
		return true
	})

	return b.String()
}

// Equal reports whether a and b have the same shape and the same set of
// (row, col, value) entries, regardless of format, orientation or iso-ness.
// Complexity: O(nvals(a) * log) for sparse operands.
func Equal[T Number](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() || a.NVals() != b.NVals() {
		return false
	}
	same := true
	a.Do(func(r, c int, v T) bool {
		w, ok, err := b.At(r, c)
		if err != nil || !ok || w != v {
			same = false
			return false
		}
		return true
	})

	return same
}

// cloneSlice copies s, preserving nil.
func cloneSlice[E any](s []E) []E {
	if s == nil {
		return nil
	}
	out := make([]E, len(s))
	copy(out, s)

	return out
}
