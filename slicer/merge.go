// SPDX-License-Identifier: MIT

// Package slicer - sequential reconciliation of boundary vectors.
//
// Both functions run after every worker has joined; they are the only code
// that reads the first/last partial arrays.

package slicer

// Merge adds every task's first/last partial counts into cnt.
// Implementation:
//   - Stage 1: walk tasks in order.
//   - Stage 2: cnt[KFirst] += wfirst[t]; if the task spans more than one
//     vector, cnt[KLast] += wlast[t].
//
// Contract:
//   - cnt holds the counts workers wrote for vectors strictly inside a task
//     and zero for every task boundary vector.
//   - A vector shared by several consecutive tasks accumulates all of their
//     partials, so chains of single-vector tasks reconcile correctly.
//
// Complexity:
//   - Time O(ntasks), Space O(1).
func Merge(tasks []Task, cnt, wfirst, wlast []int) {
	for t, tk := range tasks {
		cnt[tk.KFirst] += wfirst[t]
		if tk.KLast > tk.KFirst {
			cnt[tk.KLast] += wlast[t]
		}
	}
}

// Cursors fills dst[t] with the output position where task t writes the
// first surviving element of its KFirst vector.
// Implementation:
//   - Stage 1: a task whose KFirst differs from the previous task's last
//     vector starts at pout[KFirst].
//   - Stage 2: otherwise it starts after the survivors already emitted for
//     that vector by earlier tasks.
//
// Inputs:
//   - dst: len(tasks) slots, overwritten.
//   - pout: exclusive prefix sum of the merged counts.
//
// Complexity:
//   - Time O(ntasks), Space O(1).
func Cursors(dst []int, tasks []Task, pout, wfirst, wlast []int) {
	kprior, used := -1, 0
	for t, tk := range tasks {
		if tk.KFirst != kprior {
			used = 0
		}
		dst[t] = pout[tk.KFirst] + used
		used += wfirst[t]
		kprior = tk.KFirst
		if tk.KLast > tk.KFirst {
			kprior = tk.KLast
			used = wlast[t]
		}
	}
}
