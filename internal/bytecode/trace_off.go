//go:build !trace

package bytecode

// TraceExecution enables the per-instruction execution trace and the
// post-compile disassembly dump. Build with -tags trace to turn it on.
const TraceExecution = false
