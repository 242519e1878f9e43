// SPDX-License-Identifier: MIT

// Package selector - predicate resolution (the registry).
//
// Purpose:
//   - Turn a caller Descriptor into a predicate specialized for element
//     type T, expressed in vector coordinates (i within vector j).
//   - Detect every configuration error before a worker starts.
//
// Design:
//   - One generic keep closure per (T, kind); the phase skeletons are shared
//     by all kinds and never switch on the kind per element.
//   - Positional kinds are rewritten once for the matrix orientation so the
//     kernels only ever reason about (i, j).

package selector

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/matrix"
)

// predicate is a Descriptor resolved against one matrix.
type predicate[T matrix.Number] struct {
	kind Kind // vector-space kind (after flip and iso folding)
	off  int  // vector-space offset

	// KindResize bounds in vector terms.
	vlen, vdim int

	positional bool
	keep       func(x T, i, j int) bool
}

// resolve validates d against a and builds the vector-space predicate.
// Implementation:
//   - Stage 1: kind known; in-place compatible with the input format.
//   - Stage 2: per family: thunk type, user callback type, resize bounds.
//   - Stage 3: orientation flip for positional kinds and user callbacks.
//   - Stage 4: fold value tests on iso matrices into keep-all / keep-none.
//
// Errors:
//   - ErrUnknownKind, ErrInPlace, ErrThunkRequired, ErrThunkType,
//     ErrUserFunc, ErrBounds, matrix.ErrDimensionMismatch (iso without value).
//
// Complexity:
//   - Time O(1), Space O(1).
func resolve[T matrix.Number](a *matrix.Matrix[T], d Descriptor) (*predicate[T], error) {
	if !d.Kind.Valid() {
		return nil, ErrUnknownKind
	}
	if a.Iso && len(a.X) != 1 {
		return nil, fmt.Errorf("iso matrix with %d values: %w", len(a.X), matrix.ErrDimensionMismatch)
	}
	if d.InPlace && (a.Format != matrix.Bitmap || d.Kind == KindResize) {
		return nil, fmt.Errorf("%s input: %w", a.Format, ErrInPlace)
	}

	flip := a.ByRow != d.SwapRowCol
	pr := &predicate[T]{kind: d.Kind, off: d.Offset}

	switch {
	case d.Kind.UsesThunk():
		if d.Thunk == nil {
			return nil, ErrThunkRequired
		}
		y, ok := d.Thunk.(T)
		if !ok {
			var zero T
			return nil, fmt.Errorf("thunk %T, element %T: %w", d.Thunk, zero, ErrThunkType)
		}
		pr.keep = valueKeep(d.Kind, y)

	case d.Kind.ZeroTest():
		var zero T
		pr.keep = valueKeep(d.Kind.thunkKind(), zero)

	case d.Kind == KindUser:
		fn, err := userFunc[T](d.Func)
		if err != nil {
			return nil, err
		}
		closure := d.Closure
		if flip {
			pr.keep = func(x T, i, j int) bool { return fn(x, j, i, closure) }
		} else {
			pr.keep = func(x T, i, j int) bool { return fn(x, i, j, closure) }
		}

	case d.Kind == KindResize:
		if d.Rows < 0 || d.Rows > a.Rows() || d.Cols < 0 || d.Cols > a.Cols() {
			return nil, fmt.Errorf("resize %dx%d of %dx%d: %w", d.Rows, d.Cols, a.Rows(), a.Cols(), ErrBounds)
		}
		// Bounds are always in the caller's row/column terms; only the
		// storage orientation decides which one bounds the vector length.
		pr.vlen, pr.vdim = d.Rows, d.Cols
		if a.ByRow {
			pr.vlen, pr.vdim = d.Cols, d.Rows
		}
		pr.positional = true
		pr.keep = positionalKeep[T](pr.kind, pr.off, pr.vlen, pr.vdim)

	default:
		pr.off = clampOffset(d.Offset, a.Vlen+a.Vdim)
		if flip {
			pr.kind, pr.off = d.Kind.flip(pr.off)
		}
		pr.positional = true
		pr.keep = positionalKeep[T](pr.kind, pr.off, 0, 0)
	}

	if d.Kind.valueOnly() && a.Iso {
		pr.kind = kindNone
		if pr.keep(a.X[0], 0, 0) {
			pr.kind = kindAll
		}
		pr.positional = true
		pr.keep = positionalKeep[T](pr.kind, 0, 0, 0)
	}

	return pr, nil
}

// clampOffset bounds a positional offset to [-bound, bound]. Every reachable
// col-row, row and col lies strictly inside that range, so the kept set is
// unchanged while the run search can no longer overflow.
func clampOffset(off, bound int) int {
	return max(-bound, min(off, bound))
}

// userFunc accepts both the named IndexUnaryFunc[T] and a plain func literal
// of the same signature.
func userFunc[T matrix.Number](f any) (IndexUnaryFunc[T], error) {
	switch fn := f.(type) {
	case IndexUnaryFunc[T]:
		if fn != nil {
			return fn, nil
		}
	case func(T, int, int, any) bool:
		if fn != nil {
			return fn, nil
		}
	}
	var zero T

	return nil, fmt.Errorf("func %T for element %T: %w", f, zero, ErrUserFunc)
}

// valueKeep returns the value comparison of a KindValue* kind against y.
func valueKeep[T matrix.Number](k Kind, y T) func(x T, i, j int) bool {
	switch k {
	case KindValueEQ:
		return func(x T, _, _ int) bool { return x == y }
	case KindValueNE:
		return func(x T, _, _ int) bool { return x != y }
	case KindValueGT:
		return func(x T, _, _ int) bool { return x > y }
	case KindValueGE:
		return func(x T, _, _ int) bool { return x >= y }
	case KindValueLT:
		return func(x T, _, _ int) bool { return x < y }
	default: // KindValueLE
		return func(x T, _, _ int) bool { return x <= y }
	}
}

// positionalKeep returns the per-entry form of a vector-space positional
// kind. The bitmap kernel uses it directly; the sparse kernels use runs.
func positionalKeep[T matrix.Number](k Kind, off, vlen, vdim int) func(x T, i, j int) bool {
	switch k {
	case KindTril:
		return func(_ T, i, j int) bool { return j-i <= off }
	case KindTriu:
		return func(_ T, i, j int) bool { return j-i >= off }
	case KindDiag:
		return func(_ T, i, j int) bool { return j-i == off }
	case KindOffDiag:
		return func(_ T, i, j int) bool { return j-i != off }
	case KindRowIndex:
		return func(_ T, i, _ int) bool { return i+off != 0 }
	case KindColIndex:
		return func(_ T, _, j int) bool { return j+off != 0 }
	case KindRowLE:
		return func(_ T, i, _ int) bool { return i <= off }
	case KindRowGT:
		return func(_ T, i, _ int) bool { return i > off }
	case KindColLE:
		return func(_ T, _, j int) bool { return j <= off }
	case KindColGT:
		return func(_ T, _, j int) bool { return j > off }
	case KindResize:
		return func(_ T, i, j int) bool { return i < vlen && j < vdim }
	case kindAll:
		return func(T, int, int) bool { return true }
	default: // kindNone
		return func(T, int, int) bool { return false }
	}
}
