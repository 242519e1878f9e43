// SPDX-License-Identifier: MIT

// Package matrix - conversions between the four densities.
//
// Purpose:
//   - Let callers move a matrix into the format a kernel expects, and let
//     tests compare the sparse and bitmap selection paths entry by entry.
//
// Contracts:
//   - Convert never mutates its input; the result owns fresh buffers.
//   - Orientation and iso-ness are preserved.
//   - Bitmap → Full requires every slot to be live (ErrNotFull).

package matrix

import "fmt"

// Convert returns a copy of m stored in format f.
// Complexity: O(nvals + Vdim) between sparse formats, O(Vlen*Vdim) when a
// dense format is involved.
func Convert[T Number](m *Matrix[T], f Format) (*Matrix[T], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if !f.Valid() || !m.Format.Valid() {
		return nil, ErrInvalidFormat
	}
	if m.Format == f {
		return m.Clone(), nil
	}

	switch f {
	case Sparse:
		if m.Format == Hypersparse {
			return hyperToSparse(m), nil
		}
		return denseToSparse(m), nil
	case Hypersparse:
		src := m
		if m.Format.IsDenseLike() {
			src = denseToSparse(m)
		}
		return sparseToHyper(src), nil
	case Bitmap:
		return toBitmap(m), nil
	default: // Full
		if m.NVals() != m.Vlen*m.Vdim {
			return nil, fmt.Errorf("Convert(%s→full): %w", m.Format, ErrNotFull)
		}
		out := toBitmap(m)
		out.Format = Full
		out.B = nil
		out.Nvals = 0
		return out, nil
	}
}

// hyperToSparse expands H/P into a P array with one range per vector.
func hyperToSparse[T Number](m *Matrix[T]) *Matrix[T] {
	out := m.Clone()
	out.Format = Sparse
	out.H = nil
	out.Nvec = m.Vdim
	out.P = make([]int, m.Vdim+1)
	for k := 0; k < m.Nvec; k++ {
		out.P[m.H[k]+1] = m.P[k+1] - m.P[k]
	}
	for j := 0; j < m.Vdim; j++ {
		out.P[j+1] += out.P[j]
	}

	return out
}

// sparseToHyper drops empty vectors from a Sparse matrix.
func sparseToHyper[T Number](m *Matrix[T]) *Matrix[T] {
	out := m.Clone()
	out.Format = Hypersparse
	out.H = make([]int, 0)
	out.P = []int{0}
	for k := 0; k < m.Nvec; k++ {
		if m.P[k+1] > m.P[k] {
			out.H = append(out.H, k)
			out.P = append(out.P, m.P[k+1])
		}
	}
	out.Nvec = len(out.H)

	return out
}

// denseToSparse gathers the live slots of a Bitmap/Full matrix per vector.
func denseToSparse[T Number](m *Matrix[T]) *Matrix[T] {
	n := m.NVals()
	out := &Matrix[T]{
		Vlen: m.Vlen, Vdim: m.Vdim, Nvec: m.Vdim,
		P:      make([]int, m.Vdim+1),
		I:      make([]int, 0, n),
		Format: Sparse, Iso: m.Iso, ByRow: m.ByRow,
	}
	if m.Iso {
		out.X = cloneSlice(m.X)
	} else {
		out.X = make([]T, 0, n)
	}
	for j := 0; j < m.Vdim; j++ {
		base := j * m.Vlen
		for i := 0; i < m.Vlen; i++ {
			if m.B != nil && m.B[base+i] == 0 {
				continue
			}
			out.I = append(out.I, i)
			if !m.Iso {
				out.X = append(out.X, m.X[base+i])
			}
		}
		out.P[j+1] = len(out.I)
	}

	return out
}

// toBitmap scatters any format into a Bitmap with fresh B and X.
func toBitmap[T Number](m *Matrix[T]) *Matrix[T] {
	slots := m.Vlen * m.Vdim
	out := &Matrix[T]{
		Vlen: m.Vlen, Vdim: m.Vdim, Nvec: m.Vdim,
		B:      make([]int8, slots),
		Format: Bitmap, Iso: m.Iso, ByRow: m.ByRow,
	}
	if m.Iso {
		out.X = cloneSlice(m.X)
	} else {
		out.X = make([]T, slots)
	}

	switch m.Format {
	case Sparse, Hypersparse:
		for k := 0; k < m.Nvec; k++ {
			base := m.VectorIndex(k) * m.Vlen
			for p := m.P[k]; p < m.P[k+1]; p++ {
				out.B[base+m.I[p]] = 1
				if !m.Iso {
					out.X[base+m.I[p]] = m.X[p]
				}
			}
		}
		out.Nvals = m.NVals()
	case Bitmap:
		copy(out.B, m.B)
		if !m.Iso {
			copy(out.X, m.X)
		}
		out.Nvals = m.Nvals
	case Full:
		for p := range out.B {
			out.B[p] = 1
		}
		if !m.Iso {
			copy(out.X, m.X)
		}
		out.Nvals = slots
	}

	return out
}
