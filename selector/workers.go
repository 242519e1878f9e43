// SPDX-License-Identifier: MIT

package selector

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// parallelFor runs fn(t) for every task t in [0, ntasks) on at most workers
// goroutines and returns after all of them have finished.
//
// Tasks never wait on one another. A panic inside fn (a user predicate) is
// recovered in its task and reported as ErrPredicatePanic; the remaining
// tasks still run to completion, and the first error is returned.
func parallelFor(workers, ntasks int, fn func(t int)) error {
	if ntasks <= 0 {
		return nil
	}
	if workers <= 1 || ntasks == 1 {
		for t := 0; t < ntasks; t++ {
			if err := runTask(t, fn); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for t := 0; t < ntasks; t++ {
		g.Go(func() error { return runTask(t, fn) })
	}

	return g.Wait()
}

// runTask calls fn(t), converting a panic into an error.
func runTask(t int, fn func(t int)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %d: %v: %w", t, r, ErrPredicatePanic)
		}
	}()
	fn(t)

	return nil
}
