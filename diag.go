package thumb7

import (
	"fmt"
	"os"
)

// warnf emits a diagnostic to stderr when debug mode is enabled. It never
// influences a trap code or any other return value; it exists purely to
// surface conditions the historical source flagged as suspicious but not
// fatal (an odd PC, a PUSH of LR with its low bit clear, a POP of PC
// without its low bit set).
//
// Grounded on the sibling M68K interpreter's use of plain stdlib logging
// for the same class of diagnostic; see DESIGN.md for why no third-party
// logging library is pulled in for this.
func (c *Core) warnf(format string, args ...any) {
	if !c.debug {
		return
	}
	fmt.Fprintf(os.Stderr, "thumb7: "+format+"\n", args...)
}

// tracef emits an instruction-level disassembly line when debug mode is
// enabled, mirroring the historical source's DISS output.
func (c *Core) tracef(format string, args ...any) {
	if !c.debug {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
