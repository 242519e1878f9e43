// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for package matrix_test.
//
// Purpose:
//   - Expose the panic message and the resolved options snapshot without
//     widening the production API (this file only compiles under go test).

// PanicFormatInvalid mirrors the WithFormat panic message.
const PanicFormatInvalid = panicFormatInvalid

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Format   Format
	ByRow    bool
	Iso      bool
	Validate bool
}

// GatherOptionsSnapshot resolves opts over the defaults.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Format: o.format, ByRow: o.byRow, Iso: o.iso, Validate: o.validate}
}
