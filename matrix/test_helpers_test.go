// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the matrix tests.
//   - Keep every fixture valid so failures point at the code under test.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/stretchr/testify/require"
)

// allFormats lists the four densities in declaration order.
var allFormats = []matrix.Format{matrix.Sparse, matrix.Hypersparse, matrix.Bitmap, matrix.Full}

// scenario holds the 4×4 reference matrix used across the tests:
//
//	(0,0)=5  (1,2)=-3  (2,2)=7  (3,1)=0  (3,3)=9
var scenario = struct {
	rows, cols int
	ri, ci     []int
	vals       []int64
}{
	rows: 4, cols: 4,
	ri:   []int{0, 1, 2, 3, 3},
	ci:   []int{0, 2, 2, 1, 3},
	vals: []int64{5, -3, 7, 0, 9},
}

// mustScenario BUILDS the reference matrix with opts or fails the test.
func mustScenario(t testing.TB, opts ...matrix.Option) *matrix.Matrix[int64] {
	t.Helper()
	m, err := matrix.Build(scenario.rows, scenario.cols, scenario.ri, scenario.ci, scenario.vals, opts...)
	require.NoError(t, err)

	return m
}

// randomTriplets DRAWS n distinct (row, col) positions in a rows×cols grid
// with values in [-9, 9], deterministically from seed.
func randomTriplets(seed int64, rows, cols, n int) (ri, ci []int, vals []float64) {
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[int]bool, n)
	for len(ri) < n && len(seen) < rows*cols {
		r, c := rng.Intn(rows), rng.Intn(cols)
		if seen[r*cols+c] {
			continue
		}
		seen[r*cols+c] = true
		ri = append(ri, r)
		ci = append(ci, c)
		vals = append(vals, float64(rng.Intn(19)-9))
	}

	return ri, ci, vals
}

// tuplesOf returns the (row, col) → value map of m.
func tuplesOf[T matrix.Number](m *matrix.Matrix[T]) map[[2]int]T {
	out := make(map[[2]int]T, m.NVals())
	m.Do(func(r, c int, v T) bool {
		out[[2]int{r, c}] = v
		return true
	})

	return out
}
