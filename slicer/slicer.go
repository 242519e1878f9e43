// SPDX-License-Identifier: MIT

// Package slicer - task planning and element-balanced partitioning.
//
// Purpose:
//   - Decide how many tasks a kernel runs (Plan).
//   - Cut the element range into contiguous, near-equal tasks (Slice, Ranges).
//
// Determinism:
//   - Partitions depend only on (P, nvec, ntasks); no randomness, no timing.
//
// Complexity quicksheet:
//   - Plan: O(1); Slice: O(ntasks * log nvec); Ranges: O(ntasks).

package slicer

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultChunk is the minimum number of elements worth a task of its own.
// Inputs smaller than one chunk run as a single task.
const DefaultChunk = 4096

// ErrBadPartition is returned by Validate when tasks leave gaps, overlap, or
// name the wrong boundary vectors.
var ErrBadPartition = errors.New("slicer: invalid partition")

// Task is one worker's contiguous share of the stored elements.
//   - [PStart, PEnd) is the element range.
//   - KFirst/KLast are the stored-vector slots holding PStart and PEnd-1.
type Task struct {
	KFirst, KLast int
	PStart, PEnd  int
}

// Range is a flat half-open interval [Lo, Hi) of slots.
type Range struct {
	Lo, Hi int
}

// Plan returns the number of tasks for work elements given a worker hint.
// Implementation:
//   - Stage 1: no work → 0 tasks.
//   - Stage 2: one task per chunk, capped by workers and by work itself.
//
// Behavior highlights:
//   - Degenerates to 1 when work < chunk or workers <= 1.
//   - Non-positive workers/chunk are treated as 1.
func Plan(workers, work, chunk int) int {
	if work <= 0 {
		return 0
	}
	if workers < 1 {
		workers = 1
	}
	if chunk < 1 {
		chunk = 1
	}

	return max(1, min(work/chunk, workers, work))
}

// Slice partitions the nnz = p[nvec] stored elements into ntasks tasks.
// Implementation:
//   - Stage 1: clamp ntasks to [1, nnz] so every task owns >= 1 element.
//   - Stage 2: task t covers [t*nnz/ntasks, (t+1)*nnz/ntasks).
//   - Stage 3: locate KFirst/KLast by binary search over p.
//
// Inputs:
//   - p: vector pointers (len nvec+1, p[0]==0, non-decreasing).
//   - nvec: number of stored vectors.
//   - ntasks: desired task count (usually from Plan).
//
// Returns:
//   - nil when there are no elements; otherwise min(ntasks, nnz) tasks.
//
// Complexity:
//   - Time O(ntasks * log nvec), Space O(ntasks).
func Slice(p []int, nvec, ntasks int) []Task {
	if nvec <= 0 || len(p) < nvec+1 {
		return nil
	}
	nnz := p[nvec]
	if nnz <= 0 {
		return nil
	}
	ntasks = max(1, min(ntasks, nnz))

	tasks := make([]Task, ntasks)
	for t := 0; t < ntasks; t++ {
		lo := t * nnz / ntasks
		hi := (t + 1) * nnz / ntasks
		tasks[t] = Task{
			KFirst: VectorOf(p, nvec, lo),
			KLast:  VectorOf(p, nvec, hi-1),
			PStart: lo,
			PEnd:   hi,
		}
	}

	return tasks
}

// VectorOf returns the stored-vector slot k with p[k] <= e < p[k+1].
// Empty vectors are skipped. e must lie in [0, p[nvec]).
// Complexity: O(log nvec).
func VectorOf(p []int, nvec, e int) int {
	return sort.Search(nvec, func(k int) bool { return p[k+1] > e })
}

// Bounds returns the part of vector k that belongs to the task: the vector's
// own range [p[k], p[k+1]) clipped to [PStart, PEnd).
// Complexity: O(1).
func (t Task) Bounds(p []int, k int) (lo, hi int) {
	lo, hi = p[k], p[k+1]
	if k == t.KFirst {
		lo = max(lo, t.PStart)
	}
	if k == t.KLast {
		hi = min(hi, t.PEnd)
	}

	return lo, hi
}

// Ranges cuts [0, n) into ntasks balanced flat ranges (bitmap/full kernels).
// Returns nil when n <= 0. ntasks is clamped to [1, n].
// Complexity: O(ntasks).
func Ranges(n, ntasks int) []Range {
	if n <= 0 {
		return nil
	}
	ntasks = max(1, min(ntasks, n))
	out := make([]Range, ntasks)
	for t := range out {
		out[t] = Range{Lo: t * n / ntasks, Hi: (t + 1) * n / ntasks}
	}

	return out
}

// Validate checks that tasks exactly tile [0, p[nvec]) in order and that
// each task names the vectors holding its first and last element.
// Complexity: O(ntasks * log nvec).
func Validate(tasks []Task, p []int, nvec int) error {
	nnz := 0
	if nvec > 0 {
		nnz = p[nvec]
	}
	next := 0
	for t, tk := range tasks {
		if tk.PStart != next || tk.PEnd <= tk.PStart || tk.PEnd > nnz {
			return fmt.Errorf("task %d [%d,%d) after %d: %w", t, tk.PStart, tk.PEnd, next, ErrBadPartition)
		}
		if tk.KFirst != VectorOf(p, nvec, tk.PStart) || tk.KLast != VectorOf(p, nvec, tk.PEnd-1) {
			return fmt.Errorf("task %d vectors [%d,%d]: %w", t, tk.KFirst, tk.KLast, ErrBadPartition)
		}
		next = tk.PEnd
	}
	if next != nnz {
		return fmt.Errorf("coverage ends at %d of %d: %w", next, nnz, ErrBadPartition)
	}

	return nil
}
