// Copyright © 2024 The Slip authors

package token

import (
	"bufio"
	"io"
)

// Scanner reads single bytes from an input stream with pushback.  The lexer
// uses pushback both to terminate maximal-run reads without losing the
// following byte and to return stripped ')' characters to the stream.
type Scanner struct {
	name     string
	br       *bufio.Reader
	pushback []byte
	eof      bool
}

// NewScanner initializes and returns a new Scanner reading from r.  The name
// identifies the source stream in diagnostics.
func NewScanner(name string, r io.Reader) *Scanner {
	return &Scanner{
		name: name,
		br:   bufio.NewReader(r),
	}
}

// Name returns the name given to the source stream.
func (s *Scanner) Name() string {
	return s.name
}

// Next returns the next byte of the stream.  The second return value is false
// when the stream is exhausted.
func (s *Scanner) Next() (byte, bool) {
	if n := len(s.pushback); n > 0 {
		c := s.pushback[n-1]
		s.pushback = s.pushback[:n-1]
		return c, true
	}
	c, err := s.br.ReadByte()
	if err != nil {
		s.eof = true
		return 0, false
	}
	return c, true
}

// Unread pushes c back onto the stream.  Bytes are replayed in LIFO order, so
// multiple stripped ')' characters come back in the order they were removed.
func (s *Scanner) Unread(c byte) {
	s.pushback = append(s.pushback, c)
	s.eof = false
}

// Peek returns the next byte without consuming it.
func (s *Scanner) Peek() (byte, bool) {
	c, ok := s.Next()
	if !ok {
		return 0, false
	}
	s.Unread(c)
	return c, true
}

// Accept consumes the next byte and returns true when fn approves it.
func (s *Scanner) Accept(fn func(byte) bool) bool {
	c, ok := s.Next()
	if !ok {
		return false
	}
	if fn(c) {
		return true
	}
	s.Unread(c)
	return false
}

// AcceptAny consumes the next byte when it appears in charset.
func (s *Scanner) AcceptAny(charset string) bool {
	return s.Accept(func(c byte) bool {
		for i := 0; i < len(charset); i++ {
			if charset[i] == c {
				return true
			}
		}
		return false
	})
}

// EOF reports whether the stream is exhausted.  It only returns true after a
// read has failed with no pushback remaining.
func (s *Scanner) EOF() bool {
	return s.eof && len(s.pushback) == 0
}

// IgnoreLine discards bytes through the next newline.
func (s *Scanner) IgnoreLine() {
	for {
		c, ok := s.Next()
		if !ok || c == '\n' {
			return
		}
	}
}
