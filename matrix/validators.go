// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the single structural assertion layer for packed matrices.
//   - The selector never re-checks these invariants in its hot path; callers
//     that ingest untrusted data run Validate once before selecting.
//
// Note:
//   - Each check follows a fixed sequence: nil → format → shape → lengths →
//     pointers → indices → format-specific flags.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate checks every invariant of the packed representation.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidFormat, ErrInvalidDimensions,
//     ErrDimensionMismatch, ErrMalformedPointers, ErrUnsortedIndices,
//     ErrOutOfRange.
//
// Complexity: O(nvals + nvec) sparse, O(Vlen*Vdim) bitmap/full.
func Validate[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("Validate", ErrNilMatrix)
	}
	if !m.Format.Valid() {
		return validatorErrorf("Validate", ErrInvalidFormat)
	}
	if m.Vlen < 0 || m.Vdim < 0 {
		return validatorErrorf("Validate", ErrInvalidDimensions)
	}
	if m.Iso && len(m.X) != 1 {
		return validatorErrorf("Validate: iso X", ErrDimensionMismatch)
	}

	switch m.Format {
	case Sparse, Hypersparse:
		return validateSparse(m)
	default:
		return validateDense(m)
	}
}

// validateSparse checks H, P and I for Sparse/Hypersparse matrices.
func validateSparse[T Number](m *Matrix[T]) error {
	if m.B != nil {
		return validatorErrorf("Validate: B on "+m.Format.String(), ErrInvalidFormat)
	}
	if m.Format == Sparse {
		if m.H != nil {
			return validatorErrorf("Validate: H on sparse", ErrInvalidFormat)
		}
		if m.Nvec != m.Vdim {
			return validatorErrorf("Validate: nvec", ErrDimensionMismatch)
		}
	} else {
		if len(m.H) != m.Nvec || m.Nvec > m.Vdim {
			return validatorErrorf("Validate: H", ErrDimensionMismatch)
		}
		for k := 0; k < m.Nvec; k++ {
			if m.H[k] < 0 || m.H[k] >= m.Vdim {
				return validatorErrorf(fmt.Sprintf("Validate: H[%d]", k), ErrOutOfRange)
			}
			if k > 0 && m.H[k] <= m.H[k-1] {
				return validatorErrorf(fmt.Sprintf("Validate: H[%d]", k), ErrUnsortedIndices)
			}
		}
	}

	if len(m.P) != m.Nvec+1 || m.P[0] != 0 {
		return validatorErrorf("Validate: P", ErrMalformedPointers)
	}
	for k := 0; k < m.Nvec; k++ {
		if m.P[k+1] < m.P[k] {
			return validatorErrorf(fmt.Sprintf("Validate: P[%d]", k+1), ErrMalformedPointers)
		}
	}
	nnz := m.P[m.Nvec]
	if len(m.I) != nnz {
		return validatorErrorf("Validate: I", ErrDimensionMismatch)
	}
	if !m.Iso && len(m.X) != nnz {
		return validatorErrorf("Validate: X", ErrDimensionMismatch)
	}

	for k := 0; k < m.Nvec; k++ {
		for p := m.P[k]; p < m.P[k+1]; p++ {
			if m.I[p] < 0 || m.I[p] >= m.Vlen {
				return validatorErrorf(fmt.Sprintf("Validate: I[%d]", p), ErrOutOfRange)
			}
			if p > m.P[k] && m.I[p] <= m.I[p-1] {
				return validatorErrorf(fmt.Sprintf("Validate: I[%d]", p), ErrUnsortedIndices)
			}
		}
	}

	return nil
}

// validateDense checks B, X and Nvals for Bitmap/Full matrices.
func validateDense[T Number](m *Matrix[T]) error {
	slots := m.Vlen * m.Vdim
	if m.H != nil || m.P != nil || m.I != nil {
		return validatorErrorf("Validate: H/P/I on "+m.Format.String(), ErrInvalidFormat)
	}
	if !m.Iso && len(m.X) != slots {
		return validatorErrorf("Validate: X", ErrDimensionMismatch)
	}
	if m.Format == Full {
		if m.B != nil {
			return validatorErrorf("Validate: B on full", ErrInvalidFormat)
		}
		return nil
	}

	if len(m.B) != slots {
		return validatorErrorf("Validate: B", ErrDimensionMismatch)
	}
	live := 0
	for p, f := range m.B {
		switch f {
		case 0:
		case 1:
			live++
		default:
			return validatorErrorf(fmt.Sprintf("Validate: B[%d]=%d", p, f), ErrInvalidFormat)
		}
	}
	if live != m.Nvals {
		return validatorErrorf("Validate: Nvals", ErrDimensionMismatch)
	}

	return nil
}
