// SPDX-License-Identifier: MIT

// Package selector - the dispatch façade and the two-phase sparse kernel.
//
// Flow (sparse/hypersparse):
//
//	resolve ─► Plan/Slice ─► Phase 1 (parallel count) ─► Merge ─► prefix sum
//	        ─► Cursors ─► Phase 2 (parallel compact) ─► resize/prune ─► C
//
// Bitmap and full inputs take the single-pass path in bitmap.go.

package selector

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/katalvlaran/lvsparse/slicer"
)

// Select returns a new matrix C holding the entries of a that satisfy d.
//
// Contract:
//   - C has a's shape (or Descriptor.Rows×Cols for KindResize), orientation,
//     format family and iso-ness; within every vector the surviving entries
//     keep their ascending index order.
//   - C never shares arrays with a, except that an InPlace selection on a
//     bitmap returns a itself with B and Nvals updated.
//   - The result does not depend on the worker count.
//   - a must satisfy the packed invariants (see matrix.Validate); they are
//     not re-checked here.
//
// Errors (wrapped as "Select(<kind>): ..."):
//   - matrix.ErrNilMatrix, matrix.ErrInvalidFormat.
//   - Configuration: ErrUnknownKind, ErrThunkRequired, ErrThunkType,
//     ErrUserFunc, ErrBounds, ErrInPlace.
//   - Resources: ErrOutOfMemory (allocation failure or Budget refusal).
//   - ErrPredicatePanic when a user predicate panics.
//
// On error no partial output is returned and a is unchanged. The one
// exception is an InPlace selection aborted by a panicking predicate: the
// flags of a may then be partially rewritten while Nvals is left stale.
//
// Complexity:
//   - Sparse: O(nnz/workers + nvec) time, O(nvec + survivors) space;
//     positional kinds replace the per-entry scan with one binary search per
//     vector plus bulk copies.
//   - Bitmap/full: O(Vlen*Vdim/workers).
func Select[T matrix.Number](a *matrix.Matrix[T], d Descriptor, opts ...Option) (*matrix.Matrix[T], error) {
	if a == nil {
		return nil, fmt.Errorf("Select(%s): %w", d.Kind, matrix.ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	if !a.Format.Valid() {
		return nil, fmt.Errorf("Select(%s): format %d: %w", d.Kind, a.Format, matrix.ErrInvalidFormat)
	}

	pr, err := resolve(a, d)
	if err != nil {
		o.logger.Debug("select rejected", "kind", d.Kind, "err", err)
		return nil, fmt.Errorf("Select(%s): %w", d.Kind, err)
	}

	start := time.Now()
	o.logger.Debug("select",
		"kind", d.Kind,
		"resolved", pr.kind,
		"format", a.Format,
		"rows", a.Rows(),
		"cols", a.Cols(),
		"nvals", a.NVals(),
		"workers", o.workers,
	)

	l := &lease{b: o.budget}
	defer l.close()

	var out *matrix.Matrix[T]
	if a.Format.IsDenseLike() {
		out, err = selectDense(a, pr, d, o, l)
	} else {
		out, err = selectSparse(a, pr, o, l)
	}
	if err != nil {
		o.logger.Warn("select failed", "kind", d.Kind, "format", a.Format, "err", err)
		return nil, fmt.Errorf("Select(%s): %w", d.Kind, err)
	}

	o.logger.Debug("select done",
		"kind", d.Kind,
		"format", out.Format,
		"nvals", out.NVals(),
		"elapsed", time.Since(start),
	)

	return out, nil
}

// selectSparse runs the two-phase kernel over a Sparse or Hypersparse matrix.
// Implementation:
//   - Stage 1: reserve and allocate cnt (nvec+1) and the per-task partials.
//   - Stage 2: Phase 1 in parallel; sequential Merge and prefix sum.
//   - Stage 3: reserve and allocate the output; Cursors; Phase 2 in parallel.
//   - Stage 4: trim to the resized shape; prune empty hypersparse vectors.
func selectSparse[T matrix.Number](a *matrix.Matrix[T], pr *predicate[T], o Options, l *lease) (*matrix.Matrix[T], error) {
	nvec := a.Nvec
	tasks := slicer.Slice(a.P, nvec, slicer.Plan(o.workers, a.NVals(), o.chunk))
	ntasks := len(tasks)

	if err := l.grow(int64(nvec+1+len(a.H)+3*ntasks) * intSize); err != nil {
		return nil, err
	}
	cnt, err := makeSlice[int](nvec + 1)
	if err != nil {
		return nil, err
	}
	ws, err := workspace(ntasks, 3)
	if err != nil {
		return nil, err
	}
	wfirst, wlast, cursor := ws[0], ws[1], ws[2]

	// Phase 1.
	if err = parallelFor(o.workers, ntasks, func(t int) {
		countTask(a, pr, tasks[t], t, cnt, wfirst, wlast)
	}); err != nil {
		return nil, err
	}
	slicer.Merge(tasks, cnt, wfirst, wlast)
	total := cumsum(cnt, nvec)
	o.logger.Debug("select counted", "tasks", ntasks, "survivors", total)

	// Output arrays.
	xlen := total
	if a.Iso {
		xlen = 1
	}
	if err = l.grow(int64(total)*intSize + int64(xlen)*valueSize[T]()); err != nil {
		return nil, err
	}
	iout, err := makeSlice[int](total)
	if err != nil {
		return nil, err
	}
	xout, err := makeSlice[T](xlen)
	if err != nil {
		return nil, err
	}
	xwrite := xout
	if a.Iso {
		xout[0] = a.X[0]
		xwrite = nil
	}

	// Phase 2.
	slicer.Cursors(cursor, tasks, cnt, wfirst, wlast)
	if err = parallelFor(o.workers, ntasks, func(t int) {
		compactTask(a, pr, tasks[t], cursor[t], cnt, iout, xwrite)
	}); err != nil {
		return nil, err
	}

	out := &matrix.Matrix[T]{
		Vlen:   a.Vlen,
		Vdim:   a.Vdim,
		Nvec:   nvec,
		P:      cnt,
		I:      iout,
		X:      xout,
		Format: a.Format,
		Iso:    a.Iso,
		ByRow:  a.ByRow,
	}
	if a.Format == matrix.Hypersparse {
		if out.H, err = makeSlice[int](nvec); err != nil {
			return nil, err
		}
		copy(out.H, a.H)
	}
	if pr.kind == KindResize {
		shrink(out, pr.vlen, pr.vdim)
	}
	if out.Format == matrix.Hypersparse {
		out.Nvec = pruneEmpty(out.H, out.P, out.Nvec)
		out.H = out.H[:out.Nvec]
		out.P = out.P[:out.Nvec+1]
	}

	return out, nil
}

// shrink cuts the vector set of a resized sparse result to vdim vectors and
// sets the new vector length. Vectors at or beyond vdim are already empty.
func shrink[T matrix.Number](m *matrix.Matrix[T], vlen, vdim int) {
	m.Vlen, m.Vdim = vlen, vdim
	if m.Format == matrix.Hypersparse {
		cut := sort.SearchInts(m.H, vdim)
		m.H = m.H[:cut]
		m.P = m.P[:cut+1]
		m.Nvec = cut
		return
	}
	m.P = m.P[:vdim+1]
	m.Nvec = vdim
}

// pruneEmpty drops empty vectors from (h, p) in place and returns the new
// vector count. p[0] stays 0; survivors keep their order.
// Complexity: O(nvec).
func pruneEmpty(h, p []int, nvec int) int {
	n, prev := 0, p[0]
	for k := 0; k < nvec; k++ {
		end := p[k+1]
		if end > prev {
			h[n] = h[k]
			p[n+1] = end
			n++
		}
		prev = end
	}

	return n
}

// intSize is the in-memory size of an int in bytes.
const intSize = strconv.IntSize / 8
