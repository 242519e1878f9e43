// SPDX-License-Identifier: MIT

// Package selector - single-pass selection over bitmap and full matrices.
//
// Purpose:
//   - Every slot is addressable as p = j*Vlen + i, so one flat parallel pass
//     decides each slot; there is no count/compact split.
//
// Layout:
//   - Flags: out.B[p] = 1 iff the slot was live and the predicate keeps it.
//   - Values: copied unconditionally; a dead slot's value is never read.
//   - Counts: one partial per task, reduced after the join.

package selector

import (
	"unsafe"

	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/katalvlaran/lvsparse/slicer"
)

// selectDense selects from a Bitmap or Full matrix.
// Implementation:
//   - Stage 1: reserve and allocate flags/values (skipped for in-place).
//   - Stage 2: flat ranges; each task writes its own flags and count.
//   - Stage 3: reduce counts; pick Full when a full input kept every slot.
//
// Complexity:
//   - Time O(Vlen*Vdim / workers), Space O(Vlen*Vdim).
func selectDense[T matrix.Number](a *matrix.Matrix[T], pr *predicate[T], d Descriptor, o Options, l *lease) (*matrix.Matrix[T], error) {
	if pr.kind == KindResize {
		return resizeDense(a, pr, o, l)
	}

	n := a.Vlen * a.Vdim
	var (
		bout []int8
		xout []T
		err  error
	)
	if d.InPlace {
		bout = a.B
	} else {
		if err = l.grow(int64(n) * (1 + valueSize[T]())); err != nil {
			return nil, err
		}
		if bout, err = makeSlice[int8](n); err != nil {
			return nil, err
		}
		if xout, err = makeSlice[T](denseValues(a.Iso, n)); err != nil {
			return nil, err
		}
	}

	ranges := slicer.Ranges(n, slicer.Plan(o.workers, n, o.chunk))
	counts, err := taskCounts(len(ranges), l)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("select dense", "kind", pr.kind, "slots", n, "tasks", len(ranges), "in_place", d.InPlace)

	err = parallelFor(o.workers, len(ranges), func(t int) {
		r := ranges[t]
		i, j := r.Lo%a.Vlen, r.Lo/a.Vlen
		c := 0
		for p := r.Lo; p < r.Hi; p++ {
			live := a.B == nil || a.B[p] != 0
			if live && pr.keep(a.Value(p), i, j) {
				bout[p] = 1
				c++
			} else {
				bout[p] = 0
			}
			if i++; i == a.Vlen {
				i, j = 0, j+1
			}
		}
		if xout != nil && !a.Iso {
			copy(xout[r.Lo:r.Hi], a.X[r.Lo:r.Hi])
		}
		counts[t] = c
	})
	if err != nil {
		return nil, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	if d.InPlace {
		a.Nvals = total
		return a, nil
	}
	if a.Iso {
		xout[0] = a.X[0]
	}

	out := &matrix.Matrix[T]{
		Vlen:   a.Vlen,
		Vdim:   a.Vdim,
		Nvec:   a.Vdim,
		X:      xout,
		Iso:    a.Iso,
		ByRow:  a.ByRow,
		Format: matrix.Bitmap,
		B:      bout,
		Nvals:  total,
	}
	if a.Format == matrix.Full && total == n {
		out.Format, out.B, out.Nvals = matrix.Full, nil, 0
	}

	return out, nil
}

// resizeDense gathers the leading vlen×vdim block (vector terms) of a into a
// new grid. Slots outside the block are dropped; slots inside keep their
// live flag.
// Complexity: O(vlen*vdim / workers).
func resizeDense[T matrix.Number](a *matrix.Matrix[T], pr *predicate[T], o Options, l *lease) (*matrix.Matrix[T], error) {
	vlen, vdim := pr.vlen, pr.vdim
	n := vlen * vdim
	full := a.Format == matrix.Full

	if err := l.grow(int64(n) * (1 + valueSize[T]())); err != nil {
		return nil, err
	}
	var bout []int8
	if !full {
		var err error
		if bout, err = makeSlice[int8](n); err != nil {
			return nil, err
		}
	}
	xout, err := makeSlice[T](denseValues(a.Iso, n))
	if err != nil {
		return nil, err
	}

	ranges := slicer.Ranges(n, slicer.Plan(o.workers, n, o.chunk))
	counts, err := taskCounts(len(ranges), l)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("select dense resize", "vlen", vlen, "vdim", vdim, "tasks", len(ranges))

	err = parallelFor(o.workers, len(ranges), func(t int) {
		r := ranges[t]
		i, j := r.Lo%vlen, r.Lo/vlen
		c := 0
		for q := r.Lo; q < r.Hi; q++ {
			p := j*a.Vlen + i
			if !a.Iso {
				xout[q] = a.X[p]
			}
			if bout != nil {
				bout[q] = a.B[p]
				c += int(a.B[p])
			}
			if i++; i == vlen {
				i, j = 0, j+1
			}
		}
		counts[t] = c
	})
	if err != nil {
		return nil, err
	}
	if a.Iso {
		xout[0] = a.X[0]
	}

	out := &matrix.Matrix[T]{
		Vlen:   vlen,
		Vdim:   vdim,
		Nvec:   vdim,
		X:      xout,
		B:      bout,
		Iso:    a.Iso,
		ByRow:  a.ByRow,
		Format: a.Format,
	}
	if !full {
		for _, c := range counts {
			out.Nvals += c
		}
	}

	return out, nil
}

// taskCounts reserves and allocates one count slot per task.
func taskCounts(ntasks int, l *lease) ([]int, error) {
	if err := l.grow(int64(ntasks) * intSize); err != nil {
		return nil, err
	}
	ws, err := workspace(ntasks, 1)
	if err != nil {
		return nil, err
	}

	return ws[0], nil
}

// denseValues is the length of a dense value array: 1 when iso.
func denseValues(iso bool, n int) int {
	if iso {
		return 1
	}

	return n
}

// valueSize is the in-memory size of one element of T in bytes.
func valueSize[T matrix.Number]() int64 {
	var zero T

	return int64(unsafe.Sizeof(zero))
}
