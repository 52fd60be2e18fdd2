// Copyright © 2024 The Slip authors

package lexer

import (
	"strconv"

	"github.com/slip-lang/slip/parser/token"
)

// Lexer converts a byte stream into tokens.  The rules are deliberately
// small: ASCII whitespace separates tokens, a fixed set of single characters
// form tokens on their own, a leading digit starts a floating point literal,
// and anything else is a maximal run of non-whitespace characters checked
// against the keyword table.
type Lexer struct {
	scanner *token.Scanner
}

// New initializes and returns a Lexer reading from s.
func New(s *token.Scanner) *Lexer {
	return &Lexer{scanner: s}
}

// Name returns the name of the underlying source stream.
func (lex *Lexer) Name() string {
	return lex.scanner.Name()
}

// ReadToken scans and returns the next token.  At the end of the stream it
// returns a token of kind End.
func (lex *Lexer) ReadToken() *token.Token {
	c, ok := lex.skipSpace()
	if !ok {
		return &token.Token{Kind: token.End}
	}
	if k := token.Self(c); k != token.Invalid {
		return &token.Token{Kind: k}
	}
	if isDigit(c) {
		return lex.readNumber(c)
	}
	return lex.readWord(c)
}

// IgnoreLine discards input through the next newline.  The parser calls this
// after a Comment token.
func (lex *Lexer) IgnoreLine() {
	lex.scanner.IgnoreLine()
}

// EOF reports whether the source stream is exhausted.
func (lex *Lexer) EOF() bool {
	return lex.scanner.EOF()
}

func (lex *Lexer) skipSpace() (byte, bool) {
	for {
		c, ok := lex.scanner.Next()
		if !ok {
			return 0, false
		}
		if !isSpace(c) {
			return c, true
		}
	}
}

// readNumber scans a floating point literal starting with digit c.
// Scientific notation is accepted.  The literal ends at the first byte that
// cannot extend it, which is pushed back for the next token.
func (lex *Lexer) readNumber(c byte) *token.Token {
	buf := []byte{c}
	buf = lex.scanDigits(buf)
	if lex.acceptByte('.') {
		buf = append(buf, '.')
		buf = lex.scanDigits(buf)
	}
	if b, ok := lex.scanner.Peek(); ok && (b == 'e' || b == 'E') {
		lex.scanner.Next()
		exp := []byte{b}
		if s, ok := lex.scanner.Peek(); ok && (s == '+' || s == '-') {
			lex.scanner.Next()
			exp = append(exp, s)
		}
		if d, ok := lex.scanner.Peek(); ok && isDigit(d) {
			exp = lex.scanDigits(exp)
			buf = append(buf, exp...)
		} else {
			// Not an exponent after all; return the marker bytes.
			for i := len(exp) - 1; i >= 0; i-- {
				lex.scanner.Unread(exp[i])
			}
		}
	}
	// ParseFloat accepts every literal the scan admits, "1." included.  An
	// exponent too large for a double is a range error reported alongside
	// ±Inf, and that infinity is kept as the value.
	num, _ := strconv.ParseFloat(string(buf), 64)
	return &token.Token{Kind: token.Number, Num: num}
}

func (lex *Lexer) scanDigits(buf []byte) []byte {
	for {
		c, ok := lex.scanner.Next()
		if !ok {
			return buf
		}
		if !isDigit(c) {
			lex.scanner.Unread(c)
			return buf
		}
		buf = append(buf, c)
	}
}

func (lex *Lexer) acceptByte(want byte) bool {
	c, ok := lex.scanner.Next()
	if !ok {
		return false
	}
	if c == want {
		return true
	}
	lex.scanner.Unread(c)
	return false
}

// readWord scans a maximal run of non-whitespace characters, strips trailing
// ')' characters back onto the stream, and classifies the remaining lexeme
// against the keyword table.
func (lex *Lexer) readWord(c byte) *token.Token {
	buf := []byte{c}
	for {
		b, ok := lex.scanner.Next()
		if !ok {
			break
		}
		if isSpace(b) {
			break
		}
		buf = append(buf, b)
	}
	for len(buf) > 0 && buf[len(buf)-1] == ')' {
		buf = buf[:len(buf)-1]
		lex.scanner.Unread(')')
	}
	lexeme := string(buf)
	if k := token.Keyword(lexeme); k != token.Invalid {
		return &token.Token{Kind: k}
	}
	return &token.Token{Kind: token.Name, Text: lexeme}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
