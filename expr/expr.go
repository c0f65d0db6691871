// Package expr provides structural checks over a scanned token stream:
// boolean operator presence, global-scope context filters, and query shape
// validation.
package expr

import (
	"fmt"
	"slices"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/codesurf/querytext"
	"github.com/codesurf/querytext/token"
)

var (
	// Space parses a whitespace token.
	Space = PrimitiveType("space", token.TypeWhitespace)
	// Leaf parses any non-grouping term of a query.
	Leaf = PrimitiveType("leaf",
		token.TypePattern, token.TypeLiteral, token.TypeQuoted,
		token.TypeComment, token.TypeFilter, token.TypeKeyword)
	// ParenOpen parses an opening parenthesis.
	ParenOpen = PrimitiveType("parenOpen", token.TypeOpeningParen)
	// ParenClose parses a closing parenthesis.
	ParenClose = PrimitiveType("parenClose", token.TypeClosingParen)

	// SP consumes zero or more whitespace tokens.
	SP = pc.Drop(pc.ZeroOrMore("space", Space))
	// EOS matches end of stream.
	EOS = pc.EOS[token.Token]()
)

// PrimitiveType matches a single token of one of the given types.
func PrimitiveType(typeName string, types ...token.Type) pc.Parser[token.Token] {
	return func(pctx *pc.ParseContext[token.Token], tokens []pc.Token[token.Token]) (int, []pc.Token[token.Token], error) {
		if len(tokens) > 0 && slices.Contains(types, tokens[0].Val.Type()) {
			return 1, tokens[:1], nil
		}
		return 0, nil, pc.ErrNotMatch
	}
}

// expression is the recursive query shape: terms and parenthesized groups
// separated by whitespace. Declared as a variable and wired in init so the
// group parser can refer back to it.
var expression pc.Parser[token.Token]

func expressionRef(pctx *pc.ParseContext[token.Token], tokens []pc.Token[token.Token]) (int, []pc.Token[token.Token], error) {
	return expression(pctx, tokens)
}

func init() {
	group := pc.Seq(ParenOpen, pc.Parser[token.Token](expressionRef), ParenClose)
	expression = pc.Seq(SP, pc.ZeroOrMore("terms", pc.Seq(pc.Or(Leaf, group), SP)))
}

// ToParserTokens converts scanned tokens into parser combinator tokens.
func ToParserTokens(query string, tokens []token.Token) []pc.Token[token.Token] {
	results := make([]pc.Token[token.Token], len(tokens))
	for i, t := range tokens {
		results[i] = pc.Token[token.Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  1,
				Col:   t.Range().Start + 1,
				Index: t.Range().Start,
			},
			Val: t,
			Raw: t.Range().Slice(query),
		}
	}
	return results
}

// Validate checks that the token stream has a well-formed shape: balanced
// parentheses with every token consumed.
func Validate(query string, tokens []token.Token) error {
	pctx := pc.NewParseContext[token.Token]()
	_, _, err := pc.Seq(expression, EOS)(pctx, ToParserTokens(query, tokens))
	if err != nil {
		return fmt.Errorf("%w: %w", querytext.ErrUnbalancedParens, err)
	}
	return nil
}

// ContainsOperator reports whether the stream contains a boolean operator
// keyword (and, or, not).
func ContainsOperator(tokens []token.Token) bool {
	for _, t := range tokens {
		if _, ok := t.(token.Keyword); ok {
			return true
		}
	}
	return false
}

// ContextFilters returns every context filter in the stream, in order.
func ContextFilters(tokens []token.Token) []token.Filter {
	var filters []token.Filter
	for _, t := range tokens {
		if f, ok := t.(token.Filter); ok && querytext.CanonicalFilterName(f.Field.Value) == "context" {
			filters = append(filters, f)
		}
	}
	return filters
}

// GlobalContext returns the context filter scoping the whole query: the
// single context filter, sitting at parenthesis depth zero. It reports false
// when the query has no context filter, several, or only a nested one.
func GlobalContext(tokens []token.Token) (token.Filter, bool) {
	if len(ContextFilters(tokens)) != 1 {
		return token.Filter{}, false
	}
	depth := 0
	for _, t := range tokens {
		switch f := t.(type) {
		case token.OpeningParen:
			depth++
		case token.ClosingParen:
			depth--
		case token.Filter:
			if depth == 0 && querytext.CanonicalFilterName(f.Field.Value) == "context" {
				return f, true
			}
		}
	}
	return token.Filter{}, false
}
