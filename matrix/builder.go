// SPDX-License-Identifier: MIT
// Package matrix - canonical builder from COO triplets.
//
// Purpose:
//   - Pack (row, col, value) triplets into any of the four densities,
//     honoring Options (format, orientation, iso).
//
// Policy & Contracts:
//   - Input order is irrelevant; output is sorted by vector then by index.
//   - Duplicate (row, col) pairs are rejected (ErrDuplicateEntry); the
//     builder never sums or overwrites silently.
//   - Full requires every slot to be present (ErrNotFull).
//
// Determinism:
//   - Stable sort of a permutation; identical inputs always pack identically.

package matrix

import (
	"cmp"
	"fmt"
	"slices"
)

// Build CONSTRUCTS a rows×cols matrix from parallel triplet slices.
// Implementation:
//   - Stage 1: validate shape and triplet lengths.
//   - Stage 2: map (row, col) to vector coordinates and bounds-check.
//   - Stage 3: stable-sort a permutation by (vector, index); reject duplicates.
//   - Stage 4: pack into the requested format.
//
// Inputs:
//   - rows, cols: non-negative extents.
//   - ri, ci, vals: triplets of equal length.
//   - opts: WithFormat, WithByRow/WithByCol, WithIso.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrOutOfRange,
//     ErrDuplicateEntry, ErrNotIso, ErrNotFull.
//
// Complexity:
//   - Time O(n log n + Vdim) sparse, O(n log n + Vlen*Vdim) bitmap/full.
//   - Space O(n) sparse, O(Vlen*Vdim) bitmap/full.
func Build[T Number](rows, cols int, ri, ci []int, vals []T, opts ...Option) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(ri) != len(ci) || len(ri) != len(vals) {
		return nil, fmt.Errorf("Build: %d rows, %d cols, %d vals: %w", len(ri), len(ci), len(vals), ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	m := &Matrix[T]{
		Vlen:   rows,
		Vdim:   cols,
		Format: o.format,
		Iso:    o.iso,
		ByRow:  o.byRow,
	}
	if o.byRow {
		m.Vlen, m.Vdim = cols, rows
	}

	n := len(ri)
	iv := make([]int, n)
	jv := make([]int, n)
	for t := 0; t < n; t++ {
		if ri[t] < 0 || ri[t] >= rows || ci[t] < 0 || ci[t] >= cols {
			return nil, fmt.Errorf("Build: entry %d at (%d,%d): %w", t, ri[t], ci[t], ErrOutOfRange)
		}
		iv[t], jv[t] = m.VectorCoords(ri[t], ci[t])
	}

	perm := make([]int, n)
	for t := range perm {
		perm[t] = t
	}
	slices.SortStableFunc(perm, func(a, b int) int {
		if c := cmp.Compare(jv[a], jv[b]); c != 0 {
			return c
		}
		return cmp.Compare(iv[a], iv[b])
	})
	for t := 1; t < n; t++ {
		a, b := perm[t-1], perm[t]
		if jv[a] == jv[b] && iv[a] == iv[b] {
			return nil, fmt.Errorf("Build: (%d,%d): %w", ri[b], ci[b], ErrDuplicateEntry)
		}
	}

	if o.iso {
		var v T
		if n > 0 {
			v = vals[0]
		}
		for t := 1; t < n; t++ {
			if vals[t] != v {
				return nil, fmt.Errorf("Build: entry %d: %w", t, ErrNotIso)
			}
		}
		m.X = []T{v}
	}

	switch o.format {
	case Sparse, Hypersparse:
		packSparse(m, perm, iv, jv, vals)
	case Bitmap, Full:
		if o.format == Full && n != m.Vlen*m.Vdim {
			return nil, fmt.Errorf("Build: %d of %d slots: %w", n, m.Vlen*m.Vdim, ErrNotFull)
		}
		packDense(m, perm, iv, jv, vals)
	default:
		return nil, ErrInvalidFormat
	}

	return m, nil
}

// packSparse fills H (hypersparse only), P, I and X from the sorted permutation.
// Complexity: O(n + Vdim).
func packSparse[T Number](m *Matrix[T], perm, iv, jv []int, vals []T) {
	n := len(perm)
	m.I = make([]int, n)
	if !m.Iso {
		m.X = make([]T, n)
	}
	for t, src := range perm {
		m.I[t] = iv[src]
		if !m.Iso {
			m.X[t] = vals[src]
		}
	}

	if m.Format == Sparse {
		m.Nvec = m.Vdim
		m.P = make([]int, m.Vdim+1)
		for _, src := range perm {
			m.P[jv[src]+1]++
		}
		for k := 0; k < m.Vdim; k++ {
			m.P[k+1] += m.P[k]
		}
		return
	}

	// Hypersparse: one stored slot per distinct vector, in ascending order.
	m.H = make([]int, 0)
	m.P = []int{0}
	for t, src := range perm {
		j := jv[src]
		if len(m.H) == 0 || m.H[len(m.H)-1] != j {
			if len(m.H) > 0 {
				m.P = append(m.P, t)
			}
			m.H = append(m.H, j)
		}
	}
	if len(m.H) > 0 {
		m.P = append(m.P, n)
	}
	m.Nvec = len(m.H)
}

// packDense scatters the triplets into a Vlen*Vdim slot grid.
// Complexity: O(n + Vlen*Vdim).
func packDense[T Number](m *Matrix[T], perm, iv, jv []int, vals []T) {
	slots := m.Vlen * m.Vdim
	m.Nvec = m.Vdim
	if !m.Iso {
		m.X = make([]T, slots)
	}
	if m.Format == Bitmap {
		m.B = make([]int8, slots)
	}
	for _, src := range perm {
		p := jv[src]*m.Vlen + iv[src]
		if m.B != nil {
			m.B[p] = 1
		}
		if !m.Iso {
			m.X[p] = vals[src]
		}
	}
	if m.Format == Bitmap {
		m.Nvals = len(perm)
	}
}
