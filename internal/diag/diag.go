// Package diag formats the compiler's stderr diagnostics (SPEC_FULL.md
// §3, spec.md §6-§7): one line per problem, prefixed by the program
// name. Deliberately plain fmt+os output rather than structured
// logging — the way fastcat-wirelink/log/log.go favors a minimal writer
// for a stream meant to be read by a human at a terminal, not ingested
// by a log pipeline.
package diag

import (
	"fmt"
	"os"

	"github.com/dbsystems/dtc"
)

// Prog is the program name used to prefix every diagnostic line
// (argv[0], per spec.md §6).
var Prog = "dtc"

// Report writes err to stderr as "<prog>: <message>". A
// dtc.CompileError tied to a source position already carries its own
// file/row context in its Error() text.
func Report(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", Prog, err)
}

// Counters prints the supplemented SPEC_FULL.md §6 informational lines
// (original_source/dtc.c main prints these to stderr before compiling).
func Counters(s dtc.Stats) {
	fmt.Fprintf(os.Stderr, "%s: Names: %d\n", Prog, s.Names)
	fmt.Fprintf(os.Stderr, "%s: Inferences: %d\n", Prog, s.Inferences)
	fmt.Fprintf(os.Stderr, "%s: Independent values: %d\n", Prog, s.Independent)
}
