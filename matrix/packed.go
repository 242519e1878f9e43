// SPDX-License-Identifier: MIT

// Package matrix - raw constructors over caller-owned packed arrays.
//
// Purpose:
//   - Let callers that already hold packed data (query plans, other kernels)
//     hand it to the selector without re-sorting.
//   - Check only lengths and anchors (O(1) or O(slots) for bitmap counting);
//     full structural validation is opt-in via WithValidation.
//
// Ownership:
//   - The slices are NOT copied; the returned Matrix aliases them.

package matrix

import "fmt"

// NewSparse wraps CSR/CSC arrays: p has vdim+1 entries, i and x hold p[vdim]
// entries (x holds one value under WithIso).
// Errors: ErrInvalidDimensions, ErrMalformedPointers, ErrDimensionMismatch,
// plus Validate's sentinels under WithValidation.
func NewSparse[T Number](vlen, vdim int, p, i []int, x []T, opts ...Option) (*Matrix[T], error) {
	if vlen < 0 || vdim < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(p) != vdim+1 || p[0] != 0 {
		return nil, fmt.Errorf("NewSparse: len(P)=%d vdim=%d: %w", len(p), vdim, ErrMalformedPointers)
	}
	m := &Matrix[T]{Vlen: vlen, Vdim: vdim, Nvec: vdim, P: p, I: i, X: x, Format: Sparse}

	return finishPacked(m, "NewSparse", opts)
}

// NewHypersparse wraps hypersparse arrays: h lists the non-empty vector
// indices (ascending), p has len(h)+1 entries.
func NewHypersparse[T Number](vlen, vdim int, h, p, i []int, x []T, opts ...Option) (*Matrix[T], error) {
	if vlen < 0 || vdim < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(h) > vdim {
		return nil, fmt.Errorf("NewHypersparse: nvec=%d > vdim=%d: %w", len(h), vdim, ErrDimensionMismatch)
	}
	if len(p) != len(h)+1 || p[0] != 0 {
		return nil, fmt.Errorf("NewHypersparse: len(P)=%d nvec=%d: %w", len(p), len(h), ErrMalformedPointers)
	}
	m := &Matrix[T]{Vlen: vlen, Vdim: vdim, Nvec: len(h), H: h, P: p, I: i, X: x, Format: Hypersparse}

	return finishPacked(m, "NewHypersparse", opts)
}

// NewBitmap wraps a bitmap: b and x hold vlen*vdim slots (x one value under
// WithIso). Nvals is computed from b.
func NewBitmap[T Number](vlen, vdim int, b []int8, x []T, opts ...Option) (*Matrix[T], error) {
	if vlen < 0 || vdim < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(b) != vlen*vdim {
		return nil, fmt.Errorf("NewBitmap: len(B)=%d slots=%d: %w", len(b), vlen*vdim, ErrDimensionMismatch)
	}
	m := &Matrix[T]{Vlen: vlen, Vdim: vdim, Nvec: vdim, B: b, X: x, Format: Bitmap}
	for _, f := range b {
		if f != 0 {
			m.Nvals++
		}
	}

	return finishPacked(m, "NewBitmap", opts)
}

// NewFull wraps a full matrix: x holds vlen*vdim slots (one value under WithIso).
func NewFull[T Number](vlen, vdim int, x []T, opts ...Option) (*Matrix[T], error) {
	if vlen < 0 || vdim < 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Matrix[T]{Vlen: vlen, Vdim: vdim, Nvec: vdim, X: x, Format: Full}

	return finishPacked(m, "NewFull", opts)
}

// finishPacked applies orientation/iso options, checks len(X), and runs
// Validate when requested.
func finishPacked[T Number](m *Matrix[T], tag string, opts []Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	m.ByRow = o.byRow
	m.Iso = o.iso

	want := m.Vlen * m.Vdim
	if m.Format.IsSparseLike() {
		want = m.P[m.Nvec]
		if len(m.I) != want {
			return nil, fmt.Errorf("%s: len(I)=%d nvals=%d: %w", tag, len(m.I), want, ErrDimensionMismatch)
		}
	}
	if m.Iso {
		want = 1
	}
	if len(m.X) != want {
		return nil, fmt.Errorf("%s: len(X)=%d want %d: %w", tag, len(m.X), want, ErrDimensionMismatch)
	}
	if o.validate {
		if err := Validate(m); err != nil {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
	}

	return m, nil
}
