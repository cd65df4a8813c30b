package lexer

import "testing"

func scanAll(t *testing.T, source string) []Token {
	t.Helper()
	s := NewScanner(source)
	var tokens []Token
	for {
		tok := s.ScanToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

func expectTokens(t *testing.T, source string, want []Token) {
	t.Helper()
	got := scanAll(t, source)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v (line %d), want %v (line %d)",
				i, got[i], got[i].Line, want[i], want[i].Line)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	source := "andy formless fo _ _123 _abc ab123\n" +
		"abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890_"
	expectTokens(t, source, []Token{
		{TokenIdentifier, "andy", 1},
		{TokenIdentifier, "formless", 1},
		{TokenIdentifier, "fo", 1},
		{TokenIdentifier, "_", 1},
		{TokenIdentifier, "_123", 1},
		{TokenIdentifier, "_abc", 1},
		{TokenIdentifier, "ab123", 1},
		{TokenIdentifier, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890_", 2},
		{TokenEOF, "", 2},
	})
}

func TestKeywords(t *testing.T) {
	source := "and class else false for fun if nil or print return super this true var while"
	expectTokens(t, source, []Token{
		{TokenAnd, "and", 1},
		{TokenClass, "class", 1},
		{TokenElse, "else", 1},
		{TokenFalse, "false", 1},
		{TokenFor, "for", 1},
		{TokenFun, "fun", 1},
		{TokenIf, "if", 1},
		{TokenNil, "nil", 1},
		{TokenOr, "or", 1},
		{TokenPrint, "print", 1},
		{TokenReturn, "return", 1},
		{TokenSuper, "super", 1},
		{TokenThis, "this", 1},
		{TokenTrue, "true", 1},
		{TokenVar, "var", 1},
		{TokenWhile, "while", 1},
		{TokenEOF, "", 1},
	})
}

func TestNumbers(t *testing.T) {
	// A dot with no following digit is not part of the number.
	source := "123\n123.456\n.456\n123."
	expectTokens(t, source, []Token{
		{TokenNumber, "123", 1},
		{TokenNumber, "123.456", 2},
		{TokenDot, ".", 3},
		{TokenNumber, "456", 3},
		{TokenNumber, "123", 4},
		{TokenDot, ".", 4},
		{TokenEOF, "", 4},
	})
}

func TestPunctuators(t *testing.T) {
	source := "(){};,+-*!===<=>=!=<>/."
	expectTokens(t, source, []Token{
		{TokenLeftParen, "(", 1},
		{TokenRightParen, ")", 1},
		{TokenLeftBrace, "{", 1},
		{TokenRightBrace, "}", 1},
		{TokenSemicolon, ";", 1},
		{TokenComma, ",", 1},
		{TokenPlus, "+", 1},
		{TokenMinus, "-", 1},
		{TokenStar, "*", 1},
		{TokenBangEqual, "!=", 1},
		{TokenEqualEqual, "==", 1},
		{TokenLessEqual, "<=", 1},
		{TokenGreaterEqual, ">=", 1},
		{TokenBangEqual, "!=", 1},
		{TokenLess, "<", 1},
		{TokenGreater, ">", 1},
		{TokenSlash, "/", 1},
		{TokenDot, ".", 1},
		{TokenEOF, "", 1},
	})
}

func TestStrings(t *testing.T) {
	source := "\"\"\n\"string\""
	expectTokens(t, source, []Token{
		{TokenString, `""`, 1},
		{TokenString, `"string"`, 2},
		{TokenEOF, "", 2},
	})
}

func TestMultilineStringAdvancesLine(t *testing.T) {
	// The string body spans three lines; tokens after it carry the closing
	// quote's line, not the opening quote's.
	source := "\"a\nb\nc\" after"
	expectTokens(t, source, []Token{
		{TokenString, "\"a\nb\nc\"", 3},
		{TokenIdentifier, "after", 3},
		{TokenEOF, "", 3},
	})
}

func TestUnterminatedString(t *testing.T) {
	s := NewScanner("\"never closed")
	tok := s.ScanToken()
	if tok.Type != TokenError {
		t.Fatalf("got %v, want error token", tok)
	}
	if tok.Lexeme != "Unterminated string." {
		t.Errorf("got message %q", tok.Lexeme)
	}
}

func TestUnexpectedCharacterDoesNotPoison(t *testing.T) {
	s := NewScanner("@ 42")
	tok := s.ScanToken()
	if tok.Type != TokenError {
		t.Fatalf("got %v, want error token", tok)
	}
	// The scanner keeps going after a bad byte.
	tok = s.ScanToken()
	if tok.Type != TokenNumber || tok.Lexeme != "42" {
		t.Errorf("after error, got %v, want number '42'", tok)
	}
}

func TestCommentsAndWhitespace(t *testing.T) {
	source := "space    tabs\t\t\t\tnewlines\n// a comment line\n\n\nend"
	expectTokens(t, source, []Token{
		{TokenIdentifier, "space", 1},
		{TokenIdentifier, "tabs", 1},
		{TokenIdentifier, "newlines", 1},
		{TokenIdentifier, "end", 5},
		{TokenEOF, "", 5},
	})
}

func TestEOFIsSticky(t *testing.T) {
	s := NewScanner("")
	for i := 0; i < 3; i++ {
		if tok := s.ScanToken(); tok.Type != TokenEOF {
			t.Fatalf("call %d: got %v, want EOF", i, tok)
		}
	}
}
