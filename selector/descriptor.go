// SPDX-License-Identifier: MIT

package selector

import "github.com/katalvlaran/lvsparse/matrix"

// IndexUnaryFunc is a user-defined selection predicate. It receives the
// entry value, its row and column (user coordinates, swapped when
// Descriptor.SwapRowCol is set) and the opaque Descriptor.Closure, and
// reports whether the entry is kept.
//
// The function is called concurrently from several workers and must not
// mutate shared state without its own synchronization.
type IndexUnaryFunc[T matrix.Number] func(x T, row, col int, y any) bool

// Descriptor describes one selection. It is transient: build it per call.
//
//   - Kind: the predicate.
//   - Thunk: scalar operand of the Value* kinds; its dynamic type must be
//     exactly the element type of the matrix.
//   - Offset: integer operand of the positional kinds (diagonal offset,
//     row/column bound).
//   - Rows, Cols: new shape for KindResize.
//   - SwapRowCol: evaluate the predicate on transposed coordinates.
//   - Func, Closure: KindUser callback (IndexUnaryFunc[T] or
//     func(T, int, int, any) bool) and its opaque value.
//   - InPlace: bitmap inputs only; update the input's existence flags in
//     place and return the input itself.
type Descriptor struct {
	Kind       Kind
	Thunk      any
	Offset     int
	Rows, Cols int
	SwapRowCol bool
	Func       any
	Closure    any
	InPlace    bool
}

// Tril keeps entries on or below the k-th diagonal (col-row <= k).
func Tril(k int) Descriptor { return Descriptor{Kind: KindTril, Offset: k} }

// Triu keeps entries on or above the k-th diagonal (col-row >= k).
func Triu(k int) Descriptor { return Descriptor{Kind: KindTriu, Offset: k} }

// Diag keeps entries on the k-th diagonal.
func Diag(k int) Descriptor { return Descriptor{Kind: KindDiag, Offset: k} }

// OffDiag keeps entries off the k-th diagonal.
func OffDiag(k int) Descriptor { return Descriptor{Kind: KindOffDiag, Offset: k} }

// RowIndex keeps entries with row+k != 0.
func RowIndex(k int) Descriptor { return Descriptor{Kind: KindRowIndex, Offset: k} }

// ColIndex keeps entries with col+k != 0.
func ColIndex(k int) Descriptor { return Descriptor{Kind: KindColIndex, Offset: k} }

// RowLE keeps entries with row <= k.
func RowLE(k int) Descriptor { return Descriptor{Kind: KindRowLE, Offset: k} }

// RowGT keeps entries with row > k.
func RowGT(k int) Descriptor { return Descriptor{Kind: KindRowGT, Offset: k} }

// ColLE keeps entries with col <= k.
func ColLE(k int) Descriptor { return Descriptor{Kind: KindColLE, Offset: k} }

// ColGT keeps entries with col > k.
func ColGT(k int) Descriptor { return Descriptor{Kind: KindColGT, Offset: k} }

// ResizeTo keeps entries inside the leading rows×cols block and shrinks the
// result to that shape.
func ResizeTo(rows, cols int) Descriptor {
	return Descriptor{Kind: KindResize, Rows: rows, Cols: cols}
}

// NonZero keeps entries whose value is not zero.
func NonZero() Descriptor { return Descriptor{Kind: KindNonZero} }

// EqZero keeps entries whose value is zero.
func EqZero() Descriptor { return Descriptor{Kind: KindEqZero} }

// Value builds a thunk comparison of the given kind (one of KindValueEQ ...
// KindValueLE). The thunk must have the matrix element type.
func Value(kind Kind, thunk any) Descriptor { return Descriptor{Kind: kind, Thunk: thunk} }

// UserDefined builds a KindUser descriptor around fn and its closure value.
func UserDefined[T matrix.Number](fn IndexUnaryFunc[T], closure any) Descriptor {
	return Descriptor{Kind: KindUser, Func: fn, Closure: closure}
}
