package bytecode

// Chunk is an append-only bytecode buffer: instruction/operand bytes, one
// source line per byte, and a constant pool indexed by single-byte operands.
// A chunk is built once by the compiler and read-only afterwards. Capacity
// checks (the 256-entry pool limit) are the caller's job; Chunk itself always
// succeeds.
type Chunk struct {
	Code      []byte
	Lines     []int
	Constants []Value
}

func NewChunk() *Chunk {
	return &Chunk{}
}

// Write appends one instruction or operand byte tagged with its source line.
func (c *Chunk) Write(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

// WriteOp appends an opcode byte.
func (c *Chunk) WriteOp(op OpCode, line int) {
	c.Write(byte(op), line)
}

// AddConstant appends a value to the pool and returns its index.
func (c *Chunk) AddConstant(v Value) int {
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}

// LineAt returns the source line for the byte at offset.
func (c *Chunk) LineAt(offset int) int {
	return c.Lines[offset]
}
