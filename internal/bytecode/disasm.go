package bytecode

import (
	"fmt"
	"io"
)

// Disassemble writes a header and every instruction in the chunk. It is a pure
// reader: disassembling the same chunk twice produces identical output.
func Disassemble(w io.Writer, c *Chunk, name string) {
	fmt.Fprintf(w, "== %s ==\n", name)

	for offset := 0; offset < len(c.Code); {
		offset = DisassembleInstruction(w, c, offset)
	}
}

// DisassembleInstruction writes one instruction at offset and returns the
// offset of the next one. The line column shows "   |" when the line matches
// the previous byte's line. Unknown bytes are reported and skipped one byte at
// a time so the rest of the chunk still prints.
func DisassembleInstruction(w io.Writer, c *Chunk, offset int) int {
	fmt.Fprintf(w, "%04d ", offset)
	line := c.LineAt(offset)
	if offset > 0 && line == c.LineAt(offset-1) {
		fmt.Fprint(w, "   | ")
	} else {
		fmt.Fprintf(w, "%4d ", line)
	}

	op, err := DecodeOp(c.Code[offset])
	if err != nil {
		fmt.Fprintf(w, "Unknown opcode: %d\n", c.Code[offset])
		return offset + 1
	}

	switch op {
	case OpConstant:
		return constantInstruction(w, op, c, offset)
	default:
		return simpleInstruction(w, op, offset)
	}
}

func constantInstruction(w io.Writer, op OpCode, c *Chunk, offset int) int {
	index := c.Code[offset+1]
	fmt.Fprintf(w, "%-16s %4d '%s'\n", op, index, c.Constants[index])
	return offset + 2
}

func simpleInstruction(w io.Writer, op OpCode, offset int) int {
	fmt.Fprintf(w, "%s\n", op)
	return offset + 1
}
