//go:build trace

package bytecode

const TraceExecution = true
