// Package reparse parses the two textual regular-expression syntaxes the
// command layer accepts into a reast.Node: infix, with the usual
// precedence of "*" over concatenation over "+", and reverse Polish,
// a flat postfix operator stream. Both produce the same algebra, built
// through reast's smart constructors so "0" and "1" absorb the way the
// spec requires regardless of which syntax wrote them.
package reparse

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"relab/reast"
	"relab/rerrors"
)

var infixLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "Zero", Pattern: `0`},
	{Name: "One", Pattern: `1`},
	{Name: "Literal", Pattern: `[^01+*()\s]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// exprGrammar is a "+"-separated sequence of concatGrammar alternatives.
type exprGrammar struct {
	Concats []*concatGrammar `parser:"@@ ('+' @@)*"`
}

// concatGrammar is a juxtaposed sequence of postfixGrammar terms.
type concatGrammar struct {
	Terms []*postfixGrammar `parser:"@@+"`
}

// postfixGrammar is an atom followed by zero or more "*".
type postfixGrammar struct {
	Atom  *atomGrammar `parser:"@@"`
	Stars []string     `parser:"@'*'*"`
}

type atomGrammar struct {
	Group *exprGrammar `parser:"'(' @@ ')'"`
	Zero  bool         `parser:"| @'0'"`
	One   bool         `parser:"| @'1'"`
	Lit   string       `parser:"| @Literal"`
}

var infixParser = participle.MustBuild[exprGrammar](
	participle.Lexer(infixLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseInfix parses s as an infix regular expression: "0" and "1" as the
// empty-set and empty-string atoms, any other single character as a
// literal symbol, "*" as postfix iteration, juxtaposition as
// concatenation, and "+" as alternation, with parentheses for grouping.
func ParseInfix(s string) (*reast.Node, error) {
	g, err := infixParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("reparse: parse infix %q: %v: %w", s, err, rerrors.InvalidInput)
	}
	return exprToNode(g), nil
}

func exprToNode(e *exprGrammar) *reast.Node {
	n := concatToNode(e.Concats[0])
	for _, c := range e.Concats[1:] {
		n = reast.Alt(n, concatToNode(c))
	}
	return n
}

func concatToNode(c *concatGrammar) *reast.Node {
	n := postfixToNode(c.Terms[0])
	for _, t := range c.Terms[1:] {
		n = reast.Concat(n, postfixToNode(t))
	}
	return n
}

func postfixToNode(p *postfixGrammar) *reast.Node {
	n := atomToNode(p.Atom)
	for range p.Stars {
		n = reast.Iterate(n)
	}
	return n
}

func atomToNode(a *atomGrammar) *reast.Node {
	switch {
	case a.Group != nil:
		return exprToNode(a.Group)
	case a.Zero:
		return reast.None()
	case a.One:
		return reast.Empty()
	default:
		return reast.Literal(a.Lit[0])
	}
}
