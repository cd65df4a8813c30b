package bytecode

import "fmt"

type OpCode byte

const (
	OpConstant OpCode = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpNegate
	OpReturn
)

// DecodeOp validates a raw bytecode byte. The compiler never emits an unknown
// byte, so a decode failure means the chunk is corrupt.
func DecodeOp(b byte) (OpCode, error) {
	op := OpCode(b)
	if op > OpReturn {
		return 0, fmt.Errorf("unknown opcode %d", b)
	}
	return op, nil
}

func (op OpCode) String() string {
	switch op {
	case OpConstant:
		return "OP_CONSTANT"
	case OpAdd:
		return "OP_ADD"
	case OpSubtract:
		return "OP_SUBTRACT"
	case OpMultiply:
		return "OP_MULTIPLY"
	case OpDivide:
		return "OP_DIVIDE"
	case OpNegate:
		return "OP_NEGATE"
	case OpReturn:
		return "OP_RETURN"
	}
	return fmt.Sprintf("OP_UNKNOWN(%d)", byte(op))
}
