// SPDX-License-Identifier: MIT

// Package selector - Phase 1: per-vector survivor counts (sparse/hypersparse).
//
// Purpose:
//   - Count, for every stored vector, how many entries the predicate keeps.
//
// Concurrency:
//   - Each task writes cnt[k] only for vectors strictly inside its range and
//     its own wfirst[t]/wlast[t] slots for the two boundary vectors; the
//     sequential slicer.Merge folds the partials in after the join.

package selector

import (
	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/katalvlaran/lvsparse/slicer"
)

// countTask counts the survivors of task t.
// Implementation:
//   - Stage 1: walk vectors KFirst..KLast, clipping each to the task window.
//   - Stage 2: positional kinds intersect the window with the kept runs
//     found by binary search; other kinds test every entry.
//   - Stage 3: route the count to wfirst/wlast (boundary) or cnt (interior).
//
// Complexity:
//   - Positional: O(vectors * log(vector length)); others: O(task entries).
func countTask[T matrix.Number](a *matrix.Matrix[T], pr *predicate[T], tk slicer.Task, t int, cnt, wfirst, wlast []int) {
	for k := tk.KFirst; k <= tk.KLast; k++ {
		lo, hi := tk.Bounds(a.P, k)
		j := a.VectorIndex(k)

		c := 0
		if pr.positional {
			runs, n := pr.runs(a.I, a.P[k], a.P[k+1], j)
			for _, r := range runs[:n] {
				if s, e := r.clip(lo, hi); s < e {
					c += e - s
				}
			}
		} else {
			for p := lo; p < hi; p++ {
				if pr.keep(a.Value(p), a.I[p], j) {
					c++
				}
			}
		}

		switch k {
		case tk.KFirst:
			wfirst[t] = c
		case tk.KLast:
			wlast[t] = c
		default:
			cnt[k] = c
		}
	}
}

// cumsum turns cnt[0:n] into its exclusive prefix sum in place and stores
// the total in cnt[n]. Returns the total.
// Complexity: O(n).
func cumsum(cnt []int, n int) int {
	s := 0
	for k := 0; k < n; k++ {
		c := cnt[k]
		cnt[k] = s
		s += c
	}
	cnt[n] = s

	return s
}
