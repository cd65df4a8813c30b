// internal/compiler/compiler.go
package compiler

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"lox/internal/bytecode"
	loxerrors "lox/internal/errors"
	"lox/internal/lexer"
)

// Precedence is the parser's binding-power ladder, lowest to highest.
type Precedence byte

const (
	PrecNone       Precedence = iota
	PrecAssignment            // =
	PrecOr                    // or
	PrecAnd                   // and
	PrecEquality              // == !=
	PrecComparison            // < > <= >=
	PrecTerm                  // + -
	PrecFactor                // * /
	PrecUnary                 // ! -
	PrecCall                  // . ()
	PrecPrimary
)

// precedenceOf gives a token's binding power as a binary operator. Tokens that
// are not binary operators bind at PrecNone and never enter the binary loop.
func precedenceOf(t lexer.TokenType) Precedence {
	switch t {
	case lexer.TokenPlus, lexer.TokenMinus:
		return PrecTerm
	case lexer.TokenStar, lexer.TokenSlash:
		return PrecFactor
	}
	return PrecNone
}

// Compiler drives the scanner one token at a time and emits bytecode straight
// into its chunk while parsing; no intermediate tree is built. It holds one
// token of lookahead plus two error flags: hadError is sticky and decides
// overall success, panicMode suppresses further reporting (not parsing) so one
// fault produces one diagnostic.
type Compiler struct {
	scanner   *lexer.Scanner
	chunk     *bytecode.Chunk
	current   lexer.Token
	previous  lexer.Token
	hadError  bool
	panicMode bool
	firstErr  *loxerrors.Error
	errOut    io.Writer
}

func NewCompiler(source string) *Compiler {
	return &Compiler{
		scanner: lexer.NewScanner(source),
		chunk:   bytecode.NewChunk(),
		errOut:  os.Stderr,
	}
}

// SetErrorOutput redirects diagnostics away from stderr.
func (c *Compiler) SetErrorOutput(w io.Writer) {
	c.errOut = w
}

// Compile parses one expression followed by end of input and returns the
// finished chunk. On any reported error the chunk is withheld: invalid
// bytecode must never reach the VM.
func (c *Compiler) Compile() (*bytecode.Chunk, error) {
	c.advance()
	c.expression()
	c.consume(lexer.TokenEOF, "Expect end of expression.")
	c.endCompiler()

	if c.hadError {
		return nil, c.firstErr
	}
	return c.chunk, nil
}

// Compile is the package-level convenience for one-shot compilation.
func Compile(source string) (*bytecode.Chunk, error) {
	return NewCompiler(source).Compile()
}

func (c *Compiler) expression() {
	c.parsePrecedence(PrecAssignment)
}

// parsePrecedence parses anything at the given precedence or tighter: a prefix
// form first, then binary operators while the upcoming token binds at least as
// strongly as prec.
func (c *Compiler) parsePrecedence(prec Precedence) {
	c.advance()
	switch c.previous.Type {
	case lexer.TokenNumber:
		c.number()
	case lexer.TokenLeftParen:
		c.grouping()
	case lexer.TokenMinus:
		c.unary()
	default:
		c.error("Expect expression.")
		return
	}

	for prec <= precedenceOf(c.current.Type) {
		c.advance()
		c.binary()
	}
}

func (c *Compiler) number() {
	v, err := strconv.ParseFloat(c.previous.Lexeme, 64)
	if err != nil {
		c.error("Invalid number literal.")
		return
	}
	c.emitConstant(bytecode.Value(v))
}

func (c *Compiler) grouping() {
	c.expression()
	c.consume(lexer.TokenRightParen, "Expect ')' after expression.")
}

func (c *Compiler) unary() {
	// Operand first, so the negate pops the value it just pushed.
	c.parsePrecedence(PrecUnary)
	c.emitOp(bytecode.OpNegate)
}

// binary compiles the right operand one level above the operator's own
// precedence, which is what makes the operators left-associative.
func (c *Compiler) binary() {
	op := c.previous.Type
	c.parsePrecedence(precedenceOf(op) + 1)

	switch op {
	case lexer.TokenPlus:
		c.emitOp(bytecode.OpAdd)
	case lexer.TokenMinus:
		c.emitOp(bytecode.OpSubtract)
	case lexer.TokenStar:
		c.emitOp(bytecode.OpMultiply)
	case lexer.TokenSlash:
		c.emitOp(bytecode.OpDivide)
	}
}

// advance shifts the lookahead window one token. Error tokens never reach the
// parse rules: they are reported here and skipped, so scanning continues and
// the scanner stays usable after a fault.
func (c *Compiler) advance() {
	c.previous = c.current
	for {
		c.current = c.scanner.ScanToken()
		if c.current.Type != lexer.TokenError {
			break
		}
		c.errorAtCurrent(c.current.Lexeme)
	}
}

func (c *Compiler) consume(t lexer.TokenType, message string) {
	if c.current.Type == t {
		c.advance()
		return
	}
	c.errorAtCurrent(message)
}

func (c *Compiler) endCompiler() {
	c.emitOp(bytecode.OpReturn)
	if bytecode.TraceExecution && !c.hadError {
		bytecode.Disassemble(os.Stdout, c.chunk, "code")
	}
}

func (c *Compiler) emitByte(b byte) {
	c.chunk.Write(b, c.previous.Line)
}

func (c *Compiler) emitOp(op bytecode.OpCode) {
	c.emitByte(byte(op))
}

func (c *Compiler) emitConstant(v bytecode.Value) {
	c.emitOp(bytecode.OpConstant)
	c.emitByte(c.makeConstant(v))
}

// makeConstant adds v to the pool, enforcing the one-byte operand limit. On
// overflow it reports the error and substitutes index 0 so compilation keeps
// going and later errors still surface.
func (c *Compiler) makeConstant(v bytecode.Value) byte {
	index := c.chunk.AddConstant(v)
	if index > 255 {
		c.error("Too many constants in this chunk.")
		return 0
	}
	return byte(index)
}

func (c *Compiler) error(message string) {
	c.errorAt(c.previous, message)
}

func (c *Compiler) errorAtCurrent(message string) {
	c.errorAt(c.current, message)
}

func (c *Compiler) errorAt(token lexer.Token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true

	switch token.Type {
	case lexer.TokenEOF:
		fmt.Fprintf(c.errOut, "[line %d] Error at end: %s\n", token.Line, message)
	case lexer.TokenError:
		fmt.Fprintf(c.errOut, "[scanner error]: %s\n", message)
	default:
		fmt.Fprintf(c.errOut, "[line %d] Error '%s': %s\n", token.Line, token.Lexeme, message)
	}

	c.hadError = true
	if c.firstErr == nil {
		c.firstErr = loxerrors.NewCompileError(message, token.Line)
	}
}
