// Package matrix defines the packed storage model consumed and produced by the
// selection kernel (see package selector).
//
// The matrix package provides:
//
//   - Matrix[T], a 2-D container of numeric values held in one of four
//     densities: Sparse, Hypersparse, Bitmap or Full.
//   - Build, which packs COO triplets into any of those formats.
//   - NewSparse / NewHypersparse / NewBitmap / NewFull, which wrap raw arrays
//     that the caller already holds in packed form.
//   - Convert, Validate, Equal and Pattern utilities.
//
// Storage is orientation independent. A matrix is a set of Vdim vectors of
// length Vlen; ByRow selects whether vectors are rows (CSR-like) or columns
// (CSC-like). Within a vector the indices in I are strictly ascending.
//
//	Sparse       P[k]..P[k+1]-1 index I and X for vector k (k == vector index)
//	Hypersparse  as Sparse, plus H[k] = vector index of stored slot k
//	Bitmap       B[j*Vlen+i] != 0 marks a live slot, X has one value per slot
//	Full         every slot is live, X has one value per slot
//
// An iso matrix stores a single value in X[0] shared by all entries.
//
// See the selector package for the kernel that consumes these matrices.
package matrix
