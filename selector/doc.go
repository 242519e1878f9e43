// Package selector implements C = select(A, predicate): a new matrix holding
// exactly the entries of A that satisfy a predicate, with the surviving
// entries of every vector kept in ascending index order.
//
// The selector package provides:
//
//   - Kind, the closed set of predicates: positional (tril, triu, diag,
//     offdiag, rowindex, colindex, rowle, rowgt, colle, colgt, resize), zero
//     tests, value thresholds against a thunk, and user index-unary callbacks.
//   - Descriptor and its constructors (Tril, Diag, Value, UserDefined, ...).
//   - Select, the dispatch entry point, with Options for the worker count,
//     task size, logging and a shared memory Budget.
//
// Sparse and hypersparse inputs run in two parallel phases over tasks cut by
// package slicer:
//
//	Phase 1  count survivors per vector; a task's first and last vector go
//	         to private partials, merged sequentially after the join
//	Prefix   exclusive cumulative sum of the counts gives the output pointers
//	Phase 2  re-apply the predicate and write survivors at their final place
//
// Positional kinds are monotone within a vector, so both phases find the kept
// runs with one binary search per vector and copy them in bulk.
//
// Bitmap and full inputs run a single parallel pass that writes existence
// flags and reduces per-task counts. A full input keeps the full format only
// when every slot survives.
//
// Orientation: predicates are stated in (row, col). On row-oriented storage,
// or when Descriptor.SwapRowCol is set (but not both), positional kinds are
// rewritten once into vector terms (tril(k) ⇄ triu(-k), row ⇄ col) and user
// callbacks receive swapped coordinates.
//
// Errors are detected before any worker starts when they concern the
// configuration; allocation failures and panicking user predicates abort the
// call without producing output.
package selector
