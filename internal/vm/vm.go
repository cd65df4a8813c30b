package vm

import (
	"fmt"
	"io"
	"os"

	"lox/internal/bytecode"
	"lox/internal/compiler"
)

// StackMax is the fixed operand-stack capacity.
const StackMax = 256

// VM executes one chunk at a time over a fixed-capacity operand stack. A
// chunk that reaches Run has been vetted by the compiler, so malformed
// bytecode and unbalanced stack traffic are invariant violations, not
// recoverable runtime errors: they panic.
type VM struct {
	chunk  *bytecode.Chunk
	ip     int
	stack  []bytecode.Value
	out    io.Writer
	errOut io.Writer
}

func New() *VM {
	return &VM{
		stack:  make([]bytecode.Value, 0, StackMax),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

// SetOutput redirects result printing away from stdout.
func (vm *VM) SetOutput(w io.Writer) {
	vm.out = w
}

// SetErrorOutput redirects compile diagnostics away from stderr.
func (vm *VM) SetErrorOutput(w io.Writer) {
	vm.errOut = w
}

// Interpret compiles source and, only on a clean compile, executes the result.
// The returned value is the one printed by the final return instruction.
func (vm *VM) Interpret(source string) (bytecode.Value, error) {
	c := compiler.NewCompiler(source)
	c.SetErrorOutput(vm.errOut)
	chunk, err := c.Compile()
	if err != nil {
		return 0, err
	}
	return vm.Run(chunk), nil
}

// Run executes a compiled chunk start to finish and returns the value popped
// by the return instruction.
func (vm *VM) Run(chunk *bytecode.Chunk) bytecode.Value {
	vm.chunk = chunk
	vm.ip = 0
	vm.stack = vm.stack[:0]

	for {
		if bytecode.TraceExecution {
			vm.traceStep()
		}

		op, err := bytecode.DecodeOp(vm.readByte())
		if err != nil {
			panic(err)
		}

		switch op {
		case bytecode.OpConstant:
			vm.push(vm.readConstant())

		case bytecode.OpAdd:
			b := vm.pop()
			a := vm.pop()
			vm.push(a + b)

		case bytecode.OpSubtract:
			b := vm.pop()
			a := vm.pop()
			vm.push(a - b)

		case bytecode.OpMultiply:
			b := vm.pop()
			a := vm.pop()
			vm.push(a * b)

		case bytecode.OpDivide:
			// Division by zero follows IEEE-754: ±Inf or NaN, not an error.
			b := vm.pop()
			a := vm.pop()
			vm.push(a / b)

		case bytecode.OpNegate:
			vm.push(-vm.pop())

		case bytecode.OpReturn:
			result := vm.pop()
			fmt.Fprintln(vm.out, result)
			return result
		}
	}
}

func (vm *VM) readByte() byte {
	b := vm.chunk.Code[vm.ip]
	vm.ip++
	return b
}

func (vm *VM) readConstant() bytecode.Value {
	return vm.chunk.Constants[vm.readByte()]
}

func (vm *VM) push(v bytecode.Value) {
	if len(vm.stack) >= StackMax {
		panic("stack overflow")
	}
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pop() bytecode.Value {
	if len(vm.stack) == 0 {
		panic("stack underflow: attempted to pop from an empty stack")
	}
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v
}

// traceStep prints the stack and the disassembly of the instruction about to
// execute, in exactly the disassembler's format.
func (vm *VM) traceStep() {
	fmt.Fprint(vm.out, "          ")
	for _, v := range vm.stack {
		fmt.Fprintf(vm.out, "[ %s ]", v)
	}
	fmt.Fprintln(vm.out)
	bytecode.DisassembleInstruction(vm.out, vm.chunk, vm.ip)
}
