// Copyright © 2024 The Slip authors

package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerNext(t *testing.T) {
	s := NewScanner("test", strings.NewReader("ab"))
	c, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, byte('a'), c)
	c, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, byte('b'), c)
	_, ok = s.Next()
	assert.False(t, ok)
	assert.True(t, s.EOF())
}

func TestScannerUnreadLIFO(t *testing.T) {
	s := NewScanner("test", strings.NewReader(""))
	s.Unread(')')
	s.Unread(')')
	s.Unread('x')
	var got []byte
	for {
		c, ok := s.Next()
		if !ok {
			break
		}
		got = append(got, c)
	}
	assert.Equal(t, "x))", string(got))
	assert.True(t, s.EOF())
}

func TestScannerUnreadClearsEOF(t *testing.T) {
	s := NewScanner("test", strings.NewReader(""))
	_, ok := s.Next()
	require.False(t, ok)
	require.True(t, s.EOF())
	s.Unread(')')
	assert.False(t, s.EOF())
	c, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, byte(')'), c)
}

func TestScannerPeek(t *testing.T) {
	s := NewScanner("test", strings.NewReader("z"))
	c, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, byte('z'), c)
	c, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, byte('z'), c)
}

func TestScannerAccept(t *testing.T) {
	s := NewScanner("test", strings.NewReader("1a"))
	digit := func(c byte) bool { return '0' <= c && c <= '9' }
	assert.True(t, s.Accept(digit))
	assert.False(t, s.Accept(digit))
	c, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, byte('a'), c, "rejected byte is pushed back")
}

func TestScannerIgnoreLine(t *testing.T) {
	s := NewScanner("test", strings.NewReader("skip me\nx"))
	s.IgnoreLine()
	c, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, byte('x'), c)
}
