// SPDX-License-Identifier: MIT

package selector

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Budget is a byte limit shared by concurrent Select calls.
//
// A call reserves its workspace and output bytes up front and releases them
// when it returns (the output then belongs to the caller). Reservation never
// blocks: when the limit would be exceeded the call fails with
// ErrOutOfMemory and nothing is allocated for it.
type Budget struct {
	sem   *semaphore.Weighted
	limit int64
	used  atomic.Int64
}

// NewBudget returns a Budget allowing limit bytes in flight.
// A non-positive limit yields an unlimited Budget that only tracks usage.
func NewBudget(limit int64) *Budget {
	b := &Budget{limit: limit}
	if limit > 0 {
		b.sem = semaphore.NewWeighted(limit)
	}

	return b
}

// Limit returns the configured limit (<= 0 means unlimited).
func (b *Budget) Limit() int64 { return b.limit }

// InUse returns the bytes currently reserved by running calls.
func (b *Budget) InUse() int64 { return b.used.Load() }

func (b *Budget) tryAcquire(n int64) bool {
	if b.sem != nil && !b.sem.TryAcquire(n) {
		return false
	}
	b.used.Add(n)

	return true
}

func (b *Budget) release(n int64) {
	if b.sem != nil {
		b.sem.Release(n)
	}
	b.used.Add(-n)
}

// lease accumulates the reservations of one call. A nil budget makes every
// grow succeed.
type lease struct {
	b    *Budget
	held int64
}

// grow reserves n more bytes or fails with ErrOutOfMemory.
func (l *lease) grow(n int64) error {
	if l.b == nil || n <= 0 {
		return nil
	}
	if !l.b.tryAcquire(n) {
		return fmt.Errorf("reserve %d bytes (in use %d, limit %d): %w", n, l.b.InUse(), l.b.limit, ErrOutOfMemory)
	}
	l.held += n

	return nil
}

// close releases everything the lease holds.
func (l *lease) close() {
	if l.b == nil || l.held == 0 {
		return
	}
	l.b.release(l.held)
	l.held = 0
}

// makeSlice allocates n elements, turning the runtime's allocation panics
// (negative or overflowing length) into ErrOutOfMemory.
func makeSlice[E any](n int) (s []E, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("allocate %d elements: %v: %w", n, r, ErrOutOfMemory)
		}
	}()

	return make([]E, n), nil
}

// workspace allocates parts per-task int arrays of n slots each from one
// guarded allocation. Each part is capped at n so appends never spill into
// a neighbour.
func workspace(n, parts int) ([][]int, error) {
	buf, err := makeSlice[int](n * parts)
	if err != nil {
		return nil, err
	}
	out := make([][]int, parts)
	for k := range out {
		out[k] = buf[k*n : (k+1)*n : (k+1)*n]
	}

	return out, nil
}
