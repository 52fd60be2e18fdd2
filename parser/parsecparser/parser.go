// Copyright © 2024 The Slip authors

/*
Package parsecparser provides an alternate parser built on parser
combinators.

	form    := '(' <expr>* ')'
	expr    := <comment> | <number> | <op> | <word> | <form> | ''' <expr>
	number  := /[0-9]+([.][0-9]+)?([eE][+-]?[0-9]+)?/
	op      := /[!&*+\-\/<=>|]/
	word    := /[^\s()';]+/

It produces the same cell trees as the hand-rolled parser for complete,
non-interactive input.  Unlike the scanner-based lexer it has no source
stack, so include directives evaluated from its output cannot switch
streams, and words terminate at parentheses and quotes rather than at
whitespace alone.
*/
package parsecparser

import (
	"fmt"
	"io"
	"strconv"

	parsec "github.com/prataprc/goparsec"
	"github.com/slip-lang/slip/lisp"
	"github.com/slip-lang/slip/parser/token"
)

// splice is a run of cells injected into the enclosing form as consecutive
// elements.  Quotation produces one: 'x becomes a Quote cell followed by x.
type splice []*lisp.Cell

// Read parses every top-level expression from r.
func Read(name string, r io.Reader) ([]lisp.List, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseProgram(b)
}

// ParseProgram parses top-level forms from text.  Every form must be
// parenthesised; comments between forms are discarded.
func ParseProgram(text []byte) ([]lisp.List, error) {
	s := parsec.NewScanner(text)
	parser := newParsecParser()

	var forms []lisp.List
	for {
		root, next := parser(s)
		if root == nil {
			break
		}
		s = next
		switch node := root.(type) {
		case error:
			return nil, node
		case *parsec.Terminal:
			// comment between forms
		case *lisp.Cell:
			if node.Kind != token.Expr {
				return nil, lisp.ErrorConditionf(lisp.UnbalancedParens,
					"top-level expression must be parenthesised: %s", node)
			}
			forms = append(forms, node.List)
		case splice:
			return nil, lisp.ErrorConditionf(lisp.MalformedQuote,
				"quote cannot appear at top level")
		default:
			return nil, fmt.Errorf("unexpected parse node %T", root)
		}
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		rest, _ := s.Match(`.{1,16}`)
		return nil, fmt.Errorf("unexpected source text possibly starting: %s", rest)
	}
	return forms, nil
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	q := parsec.Atom("'", "QUOTE")
	comment := parsec.Token(`;([^\n]*[^\s])?`, "COMMENT")
	number := parsec.Token(`[0-9]+([.][0-9]+)?([eE][+-]?[0-9]+)?`, "NUMBER")
	op := parsec.Token(`[!&*+\-/<=>|]`, "OP")
	word := parsec.Token(`[^\s()';]+`, "WORD")
	term := parsec.OrdChoice(termNode, number, op, word)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(sexprNode, openP, exprList, closeP)
	qexpr := parsec.And(qexprNode, q, &expr)
	expr = parsec.OrdChoice(firstNode, comment, term, sexpr, qexpr)
	return expr
}

func firstNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func termNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	if len(nodes) == 0 {
		return nil
	}
	term, ok := nodes[0].(*parsec.Terminal)
	if !ok {
		return nodes[0]
	}
	switch term.Name {
	case "NUMBER":
		num, err := strconv.ParseFloat(term.Value, 64)
		if err != nil {
			return fmt.Errorf("bad number %q: %v", term.Value, err)
		}
		return lisp.Number(num)
	case "OP":
		k := token.Self(term.Value[0])
		if k == token.Invalid {
			return fmt.Errorf("bad operator %q", term.Value)
		}
		return lisp.New(k)
	case "WORD":
		if k := token.Keyword(term.Value); k != token.Invalid {
			return lisp.New(k)
		}
		return lisp.Name(term.Value)
	default:
		return fmt.Errorf("unexpected terminal %s", term.Name)
	}
}

func sexprNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	var cells lisp.List
	var walk func(parsec.ParsecNode) error
	walk = func(n parsec.ParsecNode) error {
		switch node := n.(type) {
		case error:
			return node
		case *parsec.Terminal:
			// parens and comments carry no cells
			return nil
		case *lisp.Cell:
			cells = append(cells, node)
			return nil
		case splice:
			cells = append(cells, node...)
			return nil
		case []parsec.ParsecNode:
			for _, c := range node {
				if err := walk(c); err != nil {
					return err
				}
			}
			return nil
		default:
			return fmt.Errorf("unexpected parse node %T", n)
		}
	}
	for _, n := range nodes {
		if err := walk(n); err != nil {
			return err
		}
	}
	// A nil list keeps empty forms identical to the scanner-based parser's.
	return lisp.Expr(cells)
}

func qexprNode(nodes []parsec.ParsecNode) parsec.ParsecNode {
	if len(nodes) != 2 {
		return fmt.Errorf("malformed quote")
	}
	out := splice{lisp.New(token.Quote)}
	switch node := nodes[1].(type) {
	case error:
		return node
	case *lisp.Cell:
		return append(out, node)
	case splice:
		return append(out, node...)
	default:
		return fmt.Errorf("unexpected quoted node %T", nodes[1])
	}
}
