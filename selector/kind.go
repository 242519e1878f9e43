// SPDX-License-Identifier: MIT

// Package selector - the closed set of predicate kinds.
//
// Kinds fall in four families:
//   - positional: depend only on (row, col); admit a per-vector binary search.
//   - zero tests: compare the value against T's zero.
//   - value thresholds: compare the value against a thunk of type T.
//   - user: an index-unary callback; evaluated entry by entry.

package selector

import (
	"fmt"
	"strings"
)

// Kind identifies a selection predicate.
type Kind uint8

const (
	// KindInvalid is the zero Kind; Select rejects it with ErrUnknownKind.
	KindInvalid Kind = iota

	// KindTril keeps entries with col-row <= Offset.
	KindTril
	// KindTriu keeps entries with col-row >= Offset.
	KindTriu
	// KindDiag keeps entries with col-row == Offset.
	KindDiag
	// KindOffDiag keeps entries with col-row != Offset.
	KindOffDiag
	// KindRowIndex keeps entries with row+Offset != 0.
	KindRowIndex
	// KindColIndex keeps entries with col+Offset != 0.
	KindColIndex
	// KindRowLE keeps entries with row <= Offset.
	KindRowLE
	// KindRowGT keeps entries with row > Offset.
	KindRowGT
	// KindColLE keeps entries with col <= Offset.
	KindColLE
	// KindColGT keeps entries with col > Offset.
	KindColGT
	// KindResize keeps entries with row < Rows and col < Cols and shrinks
	// the output to Rows×Cols.
	KindResize

	// KindNonZero keeps entries with x != 0.
	KindNonZero
	// KindEqZero keeps entries with x == 0.
	KindEqZero
	// KindGtZero keeps entries with x > 0.
	KindGtZero
	// KindGeZero keeps entries with x >= 0.
	KindGeZero
	// KindLtZero keeps entries with x < 0.
	KindLtZero
	// KindLeZero keeps entries with x <= 0.
	KindLeZero

	// KindValueEQ keeps entries with x == thunk.
	KindValueEQ
	// KindValueNE keeps entries with x != thunk.
	KindValueNE
	// KindValueGT keeps entries with x > thunk.
	KindValueGT
	// KindValueGE keeps entries with x >= thunk.
	KindValueGE
	// KindValueLT keeps entries with x < thunk.
	KindValueLT
	// KindValueLE keeps entries with x <= thunk.
	KindValueLE

	// KindUser keeps entries for which the user callback returns true.
	KindUser

	kindCount
)

// Internal kinds produced by resolution only (never accepted from callers):
// an iso matrix under a value test keeps either every entry or none.
const (
	kindAll Kind = 0x80 + iota
	kindNone
)

var kindNames = [kindCount]string{
	KindInvalid:  "invalid",
	KindTril:     "tril",
	KindTriu:     "triu",
	KindDiag:     "diag",
	KindOffDiag:  "offdiag",
	KindRowIndex: "rowindex",
	KindColIndex: "colindex",
	KindRowLE:    "rowle",
	KindRowGT:    "rowgt",
	KindColLE:    "colle",
	KindColGT:    "colgt",
	KindResize:   "resize",
	KindNonZero:  "nonzero",
	KindEqZero:   "eqzero",
	KindGtZero:   "gtzero",
	KindGeZero:   "gezero",
	KindLtZero:   "ltzero",
	KindLeZero:   "lezero",
	KindValueEQ:  "valueeq",
	KindValueNE:  "valuene",
	KindValueGT:  "valuegt",
	KindValueGE:  "valuege",
	KindValueLT:  "valuelt",
	KindValueLE:  "valuele",
	KindUser:     "user",
}

// operator spellings accepted by ParseKind in addition to the names above.
var kindAliases = map[string]Kind{
	"!=0": KindNonZero,
	"==0": KindEqZero,
	">0":  KindGtZero,
	">=0": KindGeZero,
	"<0":  KindLtZero,
	"<=0": KindLeZero,
	"==":  KindValueEQ,
	"=":   KindValueEQ,
	"!=":  KindValueNE,
	"<>":  KindValueNE,
	">":   KindValueGT,
	">=":  KindValueGE,
	"<":   KindValueLT,
	"<=":  KindValueLE,
}

// String returns the canonical lower-case name of k.
func (k Kind) String() string {
	switch {
	case k < kindCount:
		return kindNames[k]
	case k == kindAll:
		return "all"
	case k == kindNone:
		return "none"
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a canonical name ("tril", "valuelt", ...) or an operator
// spelling ("!=0", "<", ">=", ...) to its Kind. Matching is case-insensitive
// and ignores surrounding blanks.
// Errors: ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	for k := KindTril; k < kindCount; k++ {
		if kindNames[k] == key {
			return k, nil
		}
	}

	return KindInvalid, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Valid reports whether k is a caller-visible kind other than KindInvalid.
func (k Kind) Valid() bool { return k > KindInvalid && k < kindCount }

// Positional reports whether k depends only on the entry position.
func (k Kind) Positional() bool {
	return (k >= KindTril && k <= KindResize) || k == kindAll || k == kindNone
}

// ZeroTest reports whether k compares values against zero.
func (k Kind) ZeroTest() bool { return k >= KindNonZero && k <= KindLeZero }

// UsesThunk reports whether k compares values against Descriptor.Thunk.
func (k Kind) UsesThunk() bool { return k >= KindValueEQ && k <= KindValueLE }

// valueOnly reports whether k ignores positions entirely.
func (k Kind) valueOnly() bool { return k.ZeroTest() || k.UsesThunk() }

// thunkKind maps a zero test onto the equivalent thunk comparison against 0.
func (k Kind) thunkKind() Kind {
	switch k {
	case KindNonZero:
		return KindValueNE
	case KindEqZero:
		return KindValueEQ
	case KindGtZero:
		return KindValueGT
	case KindGeZero:
		return KindValueGE
	case KindLtZero:
		return KindValueLT
	case KindLeZero:
		return KindValueLE
	}

	return k
}

// flip rewrites a positional kind and its offset for transposed coordinates,
// i.e. when the stored vector index plays the role of the row.
//
//	tril(k) ⇄ triu(-k), diag(k) → diag(-k), offdiag(k) → offdiag(-k),
//	row* ⇄ col* with the same offset.
func (k Kind) flip(off int) (Kind, int) {
	switch k {
	case KindTril:
		return KindTriu, -off
	case KindTriu:
		return KindTril, -off
	case KindDiag, KindOffDiag:
		return k, -off
	case KindRowIndex:
		return KindColIndex, off
	case KindColIndex:
		return KindRowIndex, off
	case KindRowLE:
		return KindColLE, off
	case KindColLE:
		return KindRowLE, off
	case KindRowGT:
		return KindColGT, off
	case KindColGT:
		return KindRowGT, off
	}

	return k, off
}
