// SPDX-License-Identifier: MIT

// Package selector - Phase 2: compaction of survivors (sparse/hypersparse).
//
// Purpose:
//   - Re-apply the Phase 1 predicate and write surviving (index, value)
//     pairs at their final positions; no per-entry decision is cached.
//
// Concurrency:
//   - Task t writes vector k at [pout[k], pout[k+1]) for interior vectors,
//     and from cursor[t] for its first vector; these windows are disjoint
//     across tasks by construction of slicer.Cursors.

package selector

import (
	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/katalvlaran/lvsparse/slicer"
)

// compactTask writes the survivors of task t into iout/xout.
// xout is nil when the output is iso (values are not copied).
//
// Complexity:
//   - Positional: O(vectors * log(vector length) + survivors) using bulk copy.
//   - Others: O(task entries).
func compactTask[T matrix.Number](a *matrix.Matrix[T], pr *predicate[T], tk slicer.Task, cursor int, pout, iout []int, xout []T) {
	for k := tk.KFirst; k <= tk.KLast; k++ {
		lo, hi := tk.Bounds(a.P, k)
		j := a.VectorIndex(k)
		c := pout[k]
		if k == tk.KFirst {
			c = cursor
		}

		if pr.positional {
			runs, n := pr.runs(a.I, a.P[k], a.P[k+1], j)
			for _, r := range runs[:n] {
				s, e := r.clip(lo, hi)
				if s >= e {
					continue
				}
				copy(iout[c:], a.I[s:e])
				if xout != nil {
					copy(xout[c:], a.X[s:e])
				}
				c += e - s
			}
			continue
		}

		for p := lo; p < hi; p++ {
			x := a.Value(p)
			if !pr.keep(x, a.I[p], j) {
				continue
			}
			iout[c] = a.I[p]
			if xout != nil {
				xout[c] = x
			}
			c++
		}
	}
}
