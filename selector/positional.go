// SPDX-License-Identifier: MIT

// Package selector - monotone search for positional kinds.
//
// Within one vector the indices I[lo:hi] ascend strictly, so every
// positional kind keeps at most two contiguous runs of that vector:
//
//	tril, rowgt            [split, hi)     split = first I >= target
//	triu, rowle, resize    [lo, split)
//	diag                   [s, s+1) if I[s] == target
//	offdiag, rowindex      [lo, s) ∪ [s+1, hi) if I[s] == target, else [lo, hi)
//	colindex, colle, colgt [lo, hi) or nothing (depends on j only)
//
// One binary search per vector replaces a scan of the whole vector.

package selector

import "sort"

// run is a half-open range [lo, hi) of packed positions.
type run struct{ lo, hi int }

// runs returns the kept runs of the vector with index j stored at I[lo:hi].
// Complexity: O(log(hi-lo)).
func (pr *predicate[T]) runs(I []int, lo, hi, j int) ([2]run, int) {
	var out [2]run
	vec := I[lo:hi]
	// first returns the first position whose index is >= target.
	first := func(target int) int { return lo + sort.SearchInts(vec, target) }

	switch pr.kind {
	case KindTril:
		// j-i <= off  ⇔  i >= j-off
		out[0] = run{first(j - pr.off), hi}
	case KindTriu:
		// j-i >= off  ⇔  i <= j-off
		out[0] = run{lo, first(j - pr.off + 1)}
	case KindDiag:
		s := first(j - pr.off)
		if s < hi && I[s] == j-pr.off {
			out[0] = run{s, s + 1}
		}
	case KindOffDiag:
		return splitAround(I, lo, hi, first(j-pr.off), j-pr.off)
	case KindRowIndex:
		return splitAround(I, lo, hi, first(-pr.off), -pr.off)
	case KindRowLE:
		out[0] = run{lo, first(pr.off + 1)}
	case KindRowGT:
		out[0] = run{first(pr.off + 1), hi}
	case KindColIndex:
		if j+pr.off != 0 {
			out[0] = run{lo, hi}
		}
	case KindColLE:
		if j <= pr.off {
			out[0] = run{lo, hi}
		}
	case KindColGT:
		if j > pr.off {
			out[0] = run{lo, hi}
		}
	case KindResize:
		if j < pr.vdim {
			out[0] = run{lo, first(pr.vlen)}
		}
	case kindAll:
		out[0] = run{lo, hi}
	}

	if out[0].lo >= out[0].hi {
		return out, 0
	}

	return out, 1
}

// splitAround keeps [lo, hi) minus the single position s when I[s] == target.
func splitAround(I []int, lo, hi, s, target int) ([2]run, int) {
	var out [2]run
	if s >= hi || I[s] != target {
		if lo == hi {
			return out, 0
		}
		out[0] = run{lo, hi}
		return out, 1
	}
	n := 0
	if s > lo {
		out[n] = run{lo, s}
		n++
	}
	if s+1 < hi {
		out[n] = run{s + 1, hi}
		n++
	}

	return out, n
}

// clip intersects r with the task window [lo, hi).
func (r run) clip(lo, hi int) (int, int) {
	return max(r.lo, lo), min(r.hi, hi)
}
