// SPDX-License-Identifier: MIT
package slicer_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/slicer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPlan covers the degenerate and capped cases.
func TestPlan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                 string
		workers, work, chunk int
		want                 int
	}{
		{"no work", 8, 0, 1, 0},
		{"below one chunk", 8, 100, 4096, 1},
		{"single worker", 1, 1 << 20, 1, 1},
		{"capped by workers", 4, 1 << 20, 1024, 4},
		{"capped by chunks", 64, 10_000, 4096, 2},
		{"capped by work", 16, 3, 1, 3},
		{"nonsense hints", -2, 10, 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, slicer.Plan(tc.workers, tc.work, tc.chunk))
		})
	}
}

// TestSlice_Diagram pins the partition drawn in the package documentation.
func TestSlice_Diagram(t *testing.T) {
	t.Parallel()

	p := []int{0, 3, 3, 8, 10}
	got := slicer.Slice(p, 4, 3)
	want := []slicer.Task{
		{KFirst: 0, KLast: 0, PStart: 0, PEnd: 3},
		{KFirst: 2, KLast: 2, PStart: 3, PEnd: 6},
		{KFirst: 2, KLast: 3, PStart: 6, PEnd: 10},
	}
	require.Equal(t, want, got)
	require.NoError(t, slicer.Validate(got, p, 4))
}

// TestSlice_Empty returns no tasks when there is nothing to do.
func TestSlice_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, slicer.Slice([]int{0}, 0, 4))
	assert.Nil(t, slicer.Slice([]int{0, 0, 0}, 2, 4))
	require.NoError(t, slicer.Validate(nil, []int{0, 0, 0}, 2))
}

// TestSlice_OneHugeVector chains single-vector tasks through one vector.
func TestSlice_OneHugeVector(t *testing.T) {
	t.Parallel()

	p := []int{0, 0, 100, 100}
	tasks := slicer.Slice(p, 3, 8)
	require.Len(t, tasks, 8)
	for _, tk := range tasks {
		assert.Equal(t, 1, tk.KFirst)
		assert.Equal(t, 1, tk.KLast)
	}
	require.NoError(t, slicer.Validate(tasks, p, 3))
}

// TestSlice_ClampsToElements never makes empty tasks.
func TestSlice_ClampsToElements(t *testing.T) {
	t.Parallel()

	p := []int{0, 1, 1, 2}
	tasks := slicer.Slice(p, 3, 10)
	require.Len(t, tasks, 2)
	assert.Equal(t, slicer.Task{KFirst: 0, KLast: 0, PStart: 0, PEnd: 1}, tasks[0])
	assert.Equal(t, slicer.Task{KFirst: 2, KLast: 2, PStart: 1, PEnd: 2}, tasks[1])
}

// TestSlice_RandomCoverage checks coverage, contiguity and balance on
// random pointer arrays with many empty vectors.
func TestSlice_RandomCoverage(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 50; trial++ {
		nvec := 1 + rng.Intn(40)
		p := make([]int, nvec+1)
		for k := 0; k < nvec; k++ {
			step := 0
			if rng.Intn(3) > 0 {
				step = rng.Intn(30)
			}
			p[k+1] = p[k] + step
		}
		ntasks := 1 + rng.Intn(12)
		t.Run(fmt.Sprintf("trial=%d", trial), func(t *testing.T) {
			tasks := slicer.Slice(p, nvec, ntasks)
			require.NoError(t, slicer.Validate(tasks, p, nvec))
			nnz := p[nvec]
			for _, tk := range tasks {
				size := tk.PEnd - tk.PStart
				assert.GreaterOrEqual(t, size, nnz/len(tasks))
				assert.LessOrEqual(t, size, nnz/len(tasks)+1)
				// Boundary vectors are never empty.
				assert.Greater(t, p[tk.KFirst+1], p[tk.KFirst])
				assert.Greater(t, p[tk.KLast+1], p[tk.KLast])
			}
		})
	}
}

// TestTask_Bounds clips the boundary vectors only.
func TestTask_Bounds(t *testing.T) {
	t.Parallel()

	p := []int{0, 3, 3, 8, 10}
	tk := slicer.Task{KFirst: 2, KLast: 3, PStart: 6, PEnd: 9}
	lo, hi := tk.Bounds(p, 2)
	assert.Equal(t, [2]int{6, 8}, [2]int{lo, hi})
	lo, hi = tk.Bounds(p, 3)
	assert.Equal(t, [2]int{8, 9}, [2]int{lo, hi})

	single := slicer.Task{KFirst: 2, KLast: 2, PStart: 4, PEnd: 6}
	lo, hi = single.Bounds(p, 2)
	assert.Equal(t, [2]int{4, 6}, [2]int{lo, hi})
}

// TestValidate_Rejects covers gaps, overlaps and wrong vectors.
func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	p := []int{0, 3, 3, 8, 10}
	tests := []struct {
		name  string
		tasks []slicer.Task
	}{
		{"gap", []slicer.Task{task(0, 0, 0, 2), task(2, 3, 3, 10)}},
		{"overlap", []slicer.Task{task(0, 2, 0, 4), task(2, 3, 3, 10)}},
		{"short", []slicer.Task{task(0, 2, 0, 4)}},
		{"wrong first", []slicer.Task{task(1, 3, 0, 10)}},
		{"wrong last", []slicer.Task{task(0, 2, 0, 10)}},
		{"empty task", []slicer.Task{task(0, 0, 0, 0), task(0, 3, 0, 10)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, slicer.Validate(tc.tasks, p, 4), slicer.ErrBadPartition)
		})
	}
}

// TestRanges covers balance and clamping of flat ranges.
func TestRanges(t *testing.T) {
	t.Parallel()

	assert.Nil(t, slicer.Ranges(0, 4))
	assert.Equal(t, []slicer.Range{{Lo: 0, Hi: 3}, {Lo: 3, Hi: 6}, {Lo: 6, Hi: 10}}, slicer.Ranges(10, 3))
	assert.Equal(t, []slicer.Range{{Lo: 0, Hi: 1}, {Lo: 1, Hi: 2}}, slicer.Ranges(2, 9))
	assert.Equal(t, []slicer.Range{{Lo: 0, Hi: 5}}, slicer.Ranges(5, 0))
}

// task is a compact Task literal for tables.
func task(kfirst, klast, pstart, pend int) slicer.Task {
	return slicer.Task{KFirst: kfirst, KLast: klast, PStart: pstart, PEnd: pend}
}
