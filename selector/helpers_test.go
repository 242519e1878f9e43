// SPDX-License-Identifier: MIT
// Package selector_test contains test helpers
//
// Purpose:
//   - Deterministic fixtures in every format and orientation.
//   - A sequential reference selection that states each predicate directly
//     in (row, col) terms, independent of the kernels under test.

package selector_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/katalvlaran/lvsparse/selector"
	"github.com/stretchr/testify/require"
)

// sparseFormats are the formats Build can produce from arbitrary triplets.
var sparseFormats = []matrix.Format{matrix.Sparse, matrix.Hypersparse, matrix.Bitmap}

// orient returns the orientation option for byRow.
func orient(byRow bool) matrix.Option {
	if byRow {
		return matrix.WithByRow()
	}

	return matrix.WithByCol()
}

// scenario builds the 4×4 reference matrix:
//
//	(0,0)=5  (1,2)=-3  (2,2)=7  (3,1)=0  (3,3)=9
func scenario(t testing.TB, opts ...matrix.Option) *matrix.Matrix[int32] {
	t.Helper()
	m, err := matrix.Build(4, 4,
		[]int{0, 1, 2, 3, 3},
		[]int{0, 2, 2, 1, 3},
		[]int32{5, -3, 7, 0, 9},
		opts...)
	require.NoError(t, err)

	return m
}

// randomMatrix builds a rows×cols matrix with n entries whose values are
// small integers (many zeros), deterministically from seed.
func randomMatrix(t testing.TB, seed int64, rows, cols, n int, opts ...matrix.Option) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[int]bool, n)
	var ri, ci []int
	var vals []float64
	for len(ri) < n && len(seen) < rows*cols {
		r, c := rng.Intn(rows), rng.Intn(cols)
		if seen[r*cols+c] {
			continue
		}
		seen[r*cols+c] = true
		ri = append(ri, r)
		ci = append(ci, c)
		vals = append(vals, float64(rng.Intn(9)-4))
	}
	m, err := matrix.Build(rows, cols, ri, ci, vals, opts...)
	require.NoError(t, err)

	return m
}

// fullMatrix builds a rows×cols Full matrix with values in [-2, 2].
func fullMatrix(t testing.TB, seed int64, rows, cols int, byRow bool) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var ri, ci []int
	var vals []float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ri = append(ri, r)
			ci = append(ci, c)
			vals = append(vals, float64(rng.Intn(5)-2))
		}
	}
	m, err := matrix.Build(rows, cols, ri, ci, vals, matrix.WithFormat(matrix.Full), orient(byRow))
	require.NoError(t, err)

	return m
}

// fixtures returns one random matrix per (format, orientation), plus a tall
// hypersparse one with mostly empty vectors.
func fixtures(t testing.TB) map[string]*matrix.Matrix[float64] {
	t.Helper()
	out := make(map[string]*matrix.Matrix[float64])
	for _, f := range sparseFormats {
		for _, byRow := range []bool{true, false} {
			name := fmt.Sprintf("%s/byrow=%v", f, byRow)
			out[name] = randomMatrix(t, 11, 37, 23, 300, matrix.WithFormat(f), orient(byRow))
		}
	}
	out["hypersparse/tall"] = randomMatrix(t, 5, 400, 60, 90, matrix.WithFormat(matrix.Hypersparse))
	out["full/byrow=true"] = fullMatrix(t, 3, 9, 7, true)
	out["full/byrow=false"] = fullMatrix(t, 3, 9, 7, false)

	return out
}

// descriptors is one Descriptor per kind (several offsets for the diagonal
// kinds), used for float64 fixtures.
func descriptors() map[string]selector.Descriptor {
	return map[string]selector.Descriptor{
		"tril(0)":     selector.Tril(0),
		"tril(-3)":    selector.Tril(-3),
		"tril(5)":     selector.Tril(5),
		"triu(0)":     selector.Triu(0),
		"triu(2)":     selector.Triu(2),
		"diag(0)":     selector.Diag(0),
		"diag(-2)":    selector.Diag(-2),
		"offdiag(1)":  selector.OffDiag(1),
		"rowindex":    selector.RowIndex(-5),
		"colindex":    selector.ColIndex(-3),
		"rowle":       selector.RowLE(10),
		"rowgt":       selector.RowGT(10),
		"colle":       selector.ColLE(4),
		"colgt":       selector.ColGT(4),
		"resize":      selector.ResizeTo(6, 5),
		"nonzero":     selector.NonZero(),
		"eqzero":      selector.EqZero(),
		"gtzero":      {Kind: selector.KindGtZero},
		"gezero":      {Kind: selector.KindGeZero},
		"ltzero":      {Kind: selector.KindLtZero},
		"lezero":      {Kind: selector.KindLeZero},
		"valueeq":     selector.Value(selector.KindValueEQ, 3.0),
		"valuene":     selector.Value(selector.KindValueNE, 3.0),
		"valuegt":     selector.Value(selector.KindValueGT, 1.0),
		"valuege":     selector.Value(selector.KindValueGE, 1.0),
		"valuelt":     selector.Value(selector.KindValueLT, -1.0),
		"valuele":     selector.Value(selector.KindValueLE, -1.0),
		"user":        selector.UserDefined[float64](userEvenDiagonal, 2),
		"user(plain)": {Kind: selector.KindUser, Func: func(x float64, row, col int, _ any) bool { return row < col && x != 0 }},
	}
}

// userEvenDiagonal keeps entries whose (row+col) is a multiple of y.
func userEvenDiagonal(x float64, row, col int, y any) bool {
	return (row+col)%y.(int) == 0 && x >= 0
}

// referenceKeep states d directly in user coordinates.
func referenceKeep[T matrix.Number](d selector.Descriptor) func(x T, row, col int) bool {
	k, y := d.Offset, T(0)
	if d.Thunk != nil {
		y = d.Thunk.(T)
	}
	var keep func(x T, r, c int) bool
	switch d.Kind {
	case selector.KindTril:
		keep = func(_ T, r, c int) bool { return c-r <= k }
	case selector.KindTriu:
		keep = func(_ T, r, c int) bool { return c-r >= k }
	case selector.KindDiag:
		keep = func(_ T, r, c int) bool { return c-r == k }
	case selector.KindOffDiag:
		keep = func(_ T, r, c int) bool { return c-r != k }
	case selector.KindRowIndex:
		keep = func(_ T, r, _ int) bool { return r+k != 0 }
	case selector.KindColIndex:
		keep = func(_ T, _, c int) bool { return c+k != 0 }
	case selector.KindRowLE:
		keep = func(_ T, r, _ int) bool { return r <= k }
	case selector.KindRowGT:
		keep = func(_ T, r, _ int) bool { return r > k }
	case selector.KindColLE:
		keep = func(_ T, _, c int) bool { return c <= k }
	case selector.KindColGT:
		keep = func(_ T, _, c int) bool { return c > k }
	case selector.KindResize:
		// Resize bounds are never swapped.
		return func(_ T, r, c int) bool { return r < d.Rows && c < d.Cols }
	case selector.KindNonZero:
		keep = func(x T, _, _ int) bool { return x != 0 }
	case selector.KindEqZero:
		keep = func(x T, _, _ int) bool { return x == 0 }
	case selector.KindGtZero:
		keep = func(x T, _, _ int) bool { return x > 0 }
	case selector.KindGeZero:
		keep = func(x T, _, _ int) bool { return x >= 0 }
	case selector.KindLtZero:
		keep = func(x T, _, _ int) bool { return x < 0 }
	case selector.KindLeZero:
		keep = func(x T, _, _ int) bool { return x <= 0 }
	case selector.KindValueEQ:
		keep = func(x T, _, _ int) bool { return x == y }
	case selector.KindValueNE:
		keep = func(x T, _, _ int) bool { return x != y }
	case selector.KindValueGT:
		keep = func(x T, _, _ int) bool { return x > y }
	case selector.KindValueGE:
		keep = func(x T, _, _ int) bool { return x >= y }
	case selector.KindValueLT:
		keep = func(x T, _, _ int) bool { return x < y }
	case selector.KindValueLE:
		keep = func(x T, _, _ int) bool { return x <= y }
	case selector.KindUser:
		var fn func(T, int, int, any) bool
		switch f := d.Func.(type) {
		case selector.IndexUnaryFunc[T]:
			fn = f
		case func(T, int, int, any) bool:
			fn = f
		}
		keep = func(x T, r, c int) bool { return fn(x, r, c, d.Closure) }
	default:
		panic("referenceKeep: unsupported kind " + d.Kind.String())
	}
	if d.SwapRowCol {
		return func(x T, r, c int) bool { return keep(x, c, r) }
	}

	return keep
}

// reference filters the tuples of a sequentially, in storage order.
func reference[T matrix.Number](a *matrix.Matrix[T], d selector.Descriptor) (rows, cols []int, vals []T) {
	keep := referenceKeep[T](d)
	rows, cols, vals = []int{}, []int{}, []T{}
	a.Do(func(r, c int, x T) bool {
		if keep(x, r, c) {
			rows = append(rows, r)
			cols = append(cols, c)
			vals = append(vals, x)
		}
		return true
	})

	return rows, cols, vals
}

// requireMatchesReference checks c against the sequential reference, in
// order, and checks that c is a valid matrix.
func requireMatchesReference[T matrix.Number](t testing.TB, a, c *matrix.Matrix[T], d selector.Descriptor) {
	t.Helper()
	require.NoError(t, matrix.Validate(c))

	wr, wc, wv := reference(a, d)
	gr, gc, gv := c.Tuples()
	require.Equal(t, wr, gr, "rows")
	require.Equal(t, wc, gc, "cols")
	require.Equal(t, wv, gv, "values")
	require.Equal(t, len(wv), c.NVals())
}
