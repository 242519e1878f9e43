// SPDX-License-Identifier: MIT

package selector

// Test bridge (white-box) for package selector_test.
//
// Purpose:
//   - Expose panic messages, the resolved options, the guarded allocator and
//     the positional run search without widening the production API.

// Panic messages of the option constructors.
const (
	PanicWorkersInvalid = panicWorkersInvalid
	PanicChunkInvalid   = panicChunkInvalid
)

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Workers   int
	Chunk     int
	HasLogger bool
	Budget    *Budget
}

// GatherOptionsSnapshot resolves opts over the defaults.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Workers: o.workers, Chunk: o.chunk, HasLogger: o.logger != nil, Budget: o.budget}
}

// MakeInts exposes the guarded allocator.
func MakeInts(n int) ([]int, error) { return makeSlice[int](n) }

// Workspace exposes the guarded per-task workspace allocator.
func Workspace(n, parts int) ([][]int, error) { return workspace(n, parts) }

// PruneEmpty exposes the hypersparse pruning step.
func PruneEmpty(h, p []int, nvec int) int { return pruneEmpty(h, p, nvec) }

// FlipKind exposes the orientation rewrite of positional kinds.
func FlipKind(k Kind, off int) (Kind, int) { return k.flip(off) }

// KeptPositions returns the positions of I[lo:hi] (vector j) kept by a
// vector-space positional kind, once through the binary-search runs and
// once through the per-entry predicate.
func KeptPositions(k Kind, off, vlen, vdim int, I []int, lo, hi, j int) (byRuns, byKeep []int) {
	pr := &predicate[float64]{kind: k, off: off, vlen: vlen, vdim: vdim, positional: true}
	pr.keep = positionalKeep[float64](k, off, vlen, vdim)

	runs, n := pr.runs(I, lo, hi, j)
	byRuns, byKeep = []int{}, []int{}
	for _, r := range runs[:n] {
		for p := r.lo; p < r.hi; p++ {
			byRuns = append(byRuns, p)
		}
	}
	for p := lo; p < hi; p++ {
		if pr.keep(0, I[p], j) {
			byKeep = append(byKeep, p)
		}
	}

	return byRuns, byKeep
}
