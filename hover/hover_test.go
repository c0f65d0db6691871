package hover

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/codesurf/querytext/scanner"
	"github.com/codesurf/querytext/token"
)

func scan(t *testing.T, query string, kind token.PatternKind) []token.Token {
	t.Helper()
	tokens, err := scanner.Scan(query, kind)
	assert.NoError(t, err)
	return tokens
}

func TestFilterHover(t *testing.T) {
	tokens := scan(t, "repo:foo bar", token.PatternLiteral)

	result := Get(tokens, 2, false)
	assert.NotZero(t, result)
	assert.Equal(t, []string{
		"Include only results from repositories whose path matches the given pattern.",
	}, result.Contents)
	// The highlight covers the field name plus its colon.
	assert.Equal(t, token.CharacterRange{Start: 0, End: 5}, result.Range)
}

func TestNegatedFilterHover(t *testing.T) {
	tokens := scan(t, "-repo:foo", token.PatternLiteral)

	result := Get(tokens, 3, false)
	assert.NotZero(t, result)
	assert.Equal(t, []string{
		"Exclude results from repositories whose path matches the given pattern.",
	}, result.Contents)
	assert.Equal(t, token.CharacterRange{Start: 1, End: 6}, result.Range)
}

func TestPatternHover(t *testing.T) {
	tokens := scan(t, "repo:foo bar", token.PatternLiteral)

	result := Get(tokens, 10, false)
	assert.NotZero(t, result)
	assert.Equal(t, []string{"Matches the string `bar`."}, result.Contents)
	assert.Equal(t, token.CharacterRange{Start: 9, End: 12}, result.Range)

	result = Get(scan(t, "x", token.PatternLiteral), 1, false)
	assert.NotZero(t, result)
	assert.Equal(t, []string{"Matches the character `x`."}, result.Contents)
}

func TestKeywordHover(t *testing.T) {
	tokens := scan(t, "a or b", token.PatternLiteral)

	result := Get(tokens, 3, false)
	assert.NotZero(t, result)
	assert.Equal(t, []string{
		"**Or operator.** Matches results from the expression on either side.",
	}, result.Contents)
}

func TestNothingUnderCursor(t *testing.T) {
	tokens := scan(t, "repo:foo bar", token.PatternLiteral)

	// Column 9 is the whitespace between terms, which has no description.
	assert.Zero(t, Get(tokens, 9, false))
	// Columns outside the query match nothing.
	assert.Zero(t, Get(tokens, 0, false))
	assert.Zero(t, Get(tokens, 99, false))
}

func TestSmartRegexpHover(t *testing.T) {
	tokens := scan(t, "foo.*bar", token.PatternRegexp)

	result := Get(tokens, 4, true)
	assert.NotZero(t, result)
	assert.Equal(t, []string{
		"**Dot.** Matches any single character except a line break.",
	}, result.Contents)
	assert.Equal(t, token.CharacterRange{Start: 3, End: 4}, result.Range)
}

func TestSmartGroupHighlightsWholeGroup(t *testing.T) {
	tokens := []token.Token{token.Pattern{
		CharacterRange: token.CharacterRange{Start: 0, End: 5},
		Kind:           token.PatternRegexp,
		Value:          "(foo)",
	}}

	result := Get(tokens, 1, true)
	assert.NotZero(t, result)
	assert.Equal(t, []string{
		"**Group.** Groups several tokens so that operators apply to the whole sub-expression.",
	}, result.Contents)
	assert.Equal(t, token.CharacterRange{Start: 0, End: 5}, result.Range)
}

func TestSmartRevisionHover(t *testing.T) {
	tokens := scan(t, "repo:foo@main", token.PatternLiteral)

	result := Get(tokens, 10, true)
	assert.NotZero(t, result)
	assert.Equal(t, []string{
		"Include only results from repositories whose path matches the given pattern.",
		"**Branch or tag.** Search the repository at this branch or tag.",
	}, result.Contents)
	assert.Equal(t, token.CharacterRange{Start: 9, End: 13}, result.Range)
}

func TestSmartSelectorHoverLastRangeWins(t *testing.T) {
	tokens := scan(t, "select:repo", token.PatternLiteral)

	result := Get(tokens, 8, true)
	assert.NotZero(t, result)
	assert.Equal(t, []string{
		"Show only query results of the given kind, such as \"repo\" or \"symbol.function\".",
		"Select and display distinct repository paths from search results.",
	}, result.Contents)
	assert.Equal(t, token.CharacterRange{Start: 7, End: 11}, result.Range)
}

func TestUnknownFilterHasNoHover(t *testing.T) {
	tokens := scan(t, "bogus:value foo", token.PatternLiteral)
	assert.Zero(t, Get(tokens, 2, false))
}
