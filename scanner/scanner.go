// Package scanner turns a raw search query string into lexical tokens.
//
// The token stream round-trips: concatenating the range-sliced substrings of
// the emitted tokens reconstructs the input exactly.
package scanner

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/codesurf/querytext/token"
)

// Sentinel errors
var (
	ErrUnterminatedQuote = errors.New("unterminated quoted string")
)

// TokenIterator uses the Go 1.23 iterator pattern.
type TokenIterator iter.Seq2[token.Token, error]

// Scanner scans a single-line query string into tokens. Free text terms are
// emitted as pattern tokens labeled with the configured pattern kind.
type Scanner struct {
	input string
	kind  token.PatternKind
}

// New creates a Scanner for input. Free text is labeled with kind.
func New(input string, kind token.PatternKind) *Scanner {
	return &Scanner{input: input, kind: kind}
}

// Tokens returns an iterator over the tokens of the input.
func (s *Scanner) Tokens() TokenIterator {
	return func(yield func(token.Token, error) bool) {
		c := &cursor{input: s.input, kind: s.kind}
		for !c.eof() {
			tok, err := c.next()
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// All collects every token into a slice.
func (s *Scanner) All() ([]token.Token, error) {
	tokens := make([]token.Token, 0, 16)
	for tok, err := range s.Tokens() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Scan is a convenience wrapper scanning input in one call.
func Scan(input string, kind token.PatternKind) ([]token.Token, error) {
	return New(input, kind).All()
}

// Internal scanner implementation
type cursor struct {
	input string
	pos   int
	kind  token.PatternKind
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.input)
}

func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.input[c.pos]
}

func (c *cursor) peekAt(offset int) byte {
	if c.pos+offset >= len(c.input) {
		return 0
	}
	return c.input[c.pos+offset]
}

func (c *cursor) next() (token.Token, error) {
	switch ch := c.peek(); {
	case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
		return c.readWhitespace(), nil
	case ch == '(':
		tok := token.OpeningParen{CharacterRange: token.CharacterRange{Start: c.pos, End: c.pos + 1}}
		c.pos++
		return tok, nil
	case ch == ')':
		tok := token.ClosingParen{CharacterRange: token.CharacterRange{Start: c.pos, End: c.pos + 1}}
		c.pos++
		return tok, nil
	case ch == '/' && c.peekAt(1) == '/':
		return c.readComment(), nil
	case ch == '"' || ch == '\'':
		return c.readQuoted(ch)
	default:
		return c.readTerm()
	}
}

// readWhitespace reads a run of whitespace characters.
func (c *cursor) readWhitespace() token.Token {
	start := c.pos
	for !c.eof() && isSpace(c.peek()) {
		c.pos++
	}
	return token.Whitespace{CharacterRange: token.CharacterRange{Start: start, End: c.pos}}
}

// readComment reads a '//' comment through the end of the line.
func (c *cursor) readComment() token.Token {
	start := c.pos
	for !c.eof() && c.peek() != '\n' {
		c.pos++
	}
	return token.Comment{
		CharacterRange: token.CharacterRange{Start: start, End: c.pos},
		Value:          c.input[start:c.pos],
	}
}

// readQuoted reads a quoted string. The range covers the quotes; the token
// value holds the unescaped contents.
func (c *cursor) readQuoted(delimiter byte) (token.Token, error) {
	start := c.pos
	c.pos++ // opening quote

	var value strings.Builder
	for !c.eof() && c.peek() != delimiter {
		if c.peek() == '\\' && c.peekAt(1) != 0 {
			c.pos++
		}
		value.WriteByte(c.peek())
		c.pos++
	}
	if c.eof() {
		return nil, fmt.Errorf("%w: %c at offset %d", ErrUnterminatedQuote, delimiter, start)
	}
	c.pos++ // closing quote

	return token.Quoted{
		CharacterRange: token.CharacterRange{Start: start, End: c.pos},
		QuotedValue:    value.String(),
	}, nil
}

// readTerm reads a filter, keyword, or pattern starting at the cursor.
func (c *cursor) readTerm() (token.Token, error) {
	start := c.pos

	if filter, ok, err := c.readFilter(); err != nil {
		return nil, err
	} else if ok {
		return filter, nil
	}

	for !c.eof() && !isBoundary(c.peek()) {
		// Structural holes may contain spaces and parens; consume the whole
		// hole so :[x y] stays one pattern.
		if c.kind == token.PatternStructural && c.peek() == ':' && c.peekAt(1) == '[' {
			c.pos += 2
			for !c.eof() && c.peek() != ']' {
				c.pos++
			}
			if !c.eof() {
				c.pos++
			}
			continue
		}
		c.pos++
	}

	value := c.input[start:c.pos]
	if kind, ok := keywordKind(value); ok {
		return token.Keyword{
			CharacterRange: token.CharacterRange{Start: start, End: c.pos},
			Kind:           kind,
			Value:          value,
		}, nil
	}

	return token.Pattern{
		CharacterRange: token.CharacterRange{Start: start, End: c.pos},
		Kind:           c.kind,
		Value:          value,
	}, nil
}

// readFilter attempts to read a -field:value pair at the cursor. It reports
// false without advancing when the term is not a filter.
func (c *cursor) readFilter() (token.Token, bool, error) {
	start := c.pos
	pos := c.pos

	negated := false
	if c.input[pos] == '-' {
		negated = true
		pos++
	}

	fieldStart := pos
	for pos < len(c.input) && isFieldChar(c.input[pos]) {
		pos++
	}
	if pos == fieldStart || pos >= len(c.input) || c.input[pos] != ':' {
		return nil, false, nil
	}

	field := token.Literal{
		CharacterRange: token.CharacterRange{Start: fieldStart, End: pos},
		Value:          c.input[fieldStart:pos],
	}
	c.pos = pos + 1 // consume ':'

	value, err := c.readFilterValue()
	if err != nil {
		return nil, false, err
	}

	return token.Filter{
		CharacterRange: token.CharacterRange{Start: start, End: c.pos},
		Field:          field,
		Value:          value,
		Negated:        negated,
	}, true, nil
}

// readFilterValue reads the value following a filter's colon. A quoted value
// may contain spaces and parens; a bare value runs to the next boundary. An
// absent value yields nil.
func (c *cursor) readFilterValue() (token.Token, error) {
	if c.eof() || isBoundary(c.peek()) {
		return nil, nil
	}
	if ch := c.peek(); ch == '"' || ch == '\'' {
		return c.readQuoted(ch)
	}

	start := c.pos
	for !c.eof() && !isBoundary(c.peek()) {
		c.pos++
	}
	return token.Literal{
		CharacterRange: token.CharacterRange{Start: start, End: c.pos},
		Value:          c.input[start:c.pos],
	}, nil
}

func keywordKind(value string) (token.KeywordKind, bool) {
	switch strings.ToLower(value) {
	case "or":
		return token.KeywordOr, true
	case "and":
		return token.KeywordAnd, true
	case "not":
		return token.KeywordNot, true
	default:
		return 0, false
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// isBoundary reports whether ch terminates a bare term.
func isBoundary(ch byte) bool {
	return isSpace(ch) || ch == '(' || ch == ')'
}

func isFieldChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}
