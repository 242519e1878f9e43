// SPDX-License-Identifier: MIT

package matrix

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// Pattern returns the structure of m as a compressed bitmap of linear ids
// row*Cols()+col, independent of format and orientation.
//
// Two matrices with the same Pattern hold entries at the same positions;
// set algebra on patterns (And, AndNot, Or) is how callers compare or combine
// selections without touching values.
//
// Complexity: O(nvals) plus the slot scan for bitmap/full.
func (m *Matrix[T]) Pattern() *roaring64.Bitmap {
	bm := roaring64.New()
	if m == nil {
		return bm
	}
	cols := uint64(m.Cols())
	m.Do(func(r, c int, _ T) bool {
		bm.Add(uint64(r)*cols + uint64(c))
		return true
	})

	return bm
}
