// Package slicer partitions the stored-element range of a packed matrix into
// contiguous, balanced tasks for parallel kernels.
//
// The slicer provides:
//
//   - Plan, which turns a worker hint and a work size into a task count.
//   - Slice, which cuts [0, nnz) into equal element ranges and records, for
//     each range, the first and last vector it touches (Task).
//   - Ranges, the flat equivalent for bitmap/full slot grids.
//   - Merge and Cursors, the sequential boundary reconciliation that turns
//     per-task partial counts into per-vector counts and per-task output
//     offsets.
//
// A task owns every vector strictly between KFirst and KLast exclusively.
// Its first and last vectors may be shared with neighbouring tasks, which is
// why per-task counts for those two vectors are kept apart (first/last
// partials) and reconciled after all workers have joined.
//
//	P:      0     3  3        8    10
//	vector: |--0--|1-|---2----|--3--|
//	tasks:  |-t0--|---t1---|---t2---|
//	t0 = {KFirst:0, KLast:0, PStart:0, PEnd:3}
//	t1 = {KFirst:2, KLast:2, PStart:3, PEnd:6}
//	t2 = {KFirst:2, KLast:3, PStart:6, PEnd:10}
//
// Vector 1 is empty and belongs to no task; vector 2 is split between t1
// and t2.
package slicer
