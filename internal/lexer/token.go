package lexer

import "fmt"

type TokenType string

const (
	// Single-character tokens
	TokenLeftParen  TokenType = "("
	TokenRightParen TokenType = ")"
	TokenLeftBrace  TokenType = "{"
	TokenRightBrace TokenType = "}"
	TokenComma      TokenType = ","
	TokenDot        TokenType = "."
	TokenMinus      TokenType = "-"
	TokenPlus       TokenType = "+"
	TokenSemicolon  TokenType = ";"
	TokenSlash      TokenType = "/"
	TokenStar       TokenType = "*"

	// One or two character tokens
	TokenBang         TokenType = "!"
	TokenBangEqual    TokenType = "!="
	TokenEqual        TokenType = "="
	TokenEqualEqual   TokenType = "=="
	TokenGreater      TokenType = ">"
	TokenGreaterEqual TokenType = ">="
	TokenLess         TokenType = "<"
	TokenLessEqual    TokenType = "<="

	// Literals
	TokenIdentifier TokenType = "IDENT"
	TokenString     TokenType = "STRING"
	TokenNumber     TokenType = "NUMBER"

	// Keywords
	TokenAnd    TokenType = "AND"
	TokenClass  TokenType = "CLASS"
	TokenElse   TokenType = "ELSE"
	TokenFalse  TokenType = "FALSE"
	TokenFor    TokenType = "FOR"
	TokenFun    TokenType = "FUN"
	TokenIf     TokenType = "IF"
	TokenNil    TokenType = "NIL"
	TokenOr     TokenType = "OR"
	TokenPrint  TokenType = "PRINT"
	TokenReturn TokenType = "RETURN"
	TokenSuper  TokenType = "SUPER"
	TokenThis   TokenType = "THIS"
	TokenTrue   TokenType = "TRUE"
	TokenVar    TokenType = "VAR"
	TokenWhile  TokenType = "WHILE"

	// Sentinels. An ERROR token carries its message in Lexeme.
	TokenError TokenType = "ERROR"
	TokenEOF   TokenType = "EOF"
)

// keywords maps reserved identifiers to their token types.
var keywords = map[string]TokenType{
	"and":    TokenAnd,
	"class":  TokenClass,
	"else":   TokenElse,
	"false":  TokenFalse,
	"for":    TokenFor,
	"fun":    TokenFun,
	"if":     TokenIf,
	"nil":    TokenNil,
	"or":     TokenOr,
	"print":  TokenPrint,
	"return": TokenReturn,
	"super":  TokenSuper,
	"this":   TokenThis,
	"true":   TokenTrue,
	"var":    TokenVar,
	"while":  TokenWhile,
}

// Token is an immutable lexical unit. Number, String, Identifier and Error
// tokens carry their text in Lexeme; Number keeps the raw lexeme rather than a
// parsed value so the compiler decides when to parse it.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
}

func (t Token) String() string {
	return fmt.Sprintf("[%s] '%s'", t.Type, t.Lexeme)
}
