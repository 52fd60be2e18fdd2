// Copyright © 2024 The Slip authors

package repl

import (
	"sort"
	"strings"

	"github.com/slip-lang/slip/lisp"
)

// reserved is the set of keyword completions offered alongside bound names.
var reserved = []string{
	"and", "begin", "car", "cat", "cdr", "cond", "cons", "define", "else",
	"empty?", "include", "lambda", "let", "list", "not", "or",
}

// symbolCompleter implements readline.AutoCompleter by enumerating names
// bound in the global frame plus the reserved words.
type symbolCompleter struct {
	env *lisp.Env
}

func (c *symbolCompleter) Do(line []rune, pos int) ([][]rune, int) {
	// Extract the word being typed (backwards from cursor to whitespace or open paren).
	start := pos
	for start > 0 {
		ch := line[start-1]
		if ch == ' ' || ch == '\t' || ch == '(' || ch == '\n' {
			break
		}
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	candidates := c.collectSymbols(prefix)
	if len(candidates) == 0 {
		return nil, 0
	}

	// Build completions: each entry is the suffix to append.
	result := make([][]rune, 0, len(candidates))
	for _, sym := range candidates {
		result = append(result, []rune(sym[len(prefix):]))
	}
	return result, len(prefix)
}

func (c *symbolCompleter) collectSymbols(prefix string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, word := range reserved {
		if strings.HasPrefix(word, prefix) && !seen[word] {
			seen[word] = true
			result = append(result, word)
		}
	}
	for name := range c.env.Scope {
		if strings.HasPrefix(name, prefix) && !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	sort.Strings(result)
	return result
}
