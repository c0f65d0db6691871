package decorate

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/codesurf/querytext/token"
)

func rng(start, end int) token.CharacterRange {
	return token.CharacterRange{Start: start, End: end}
}

// assertCovers checks that the decorated tokens tile the token's range with
// no gaps and no overlaps.
func assertCovers(t *testing.T, decorated []Decorated, full token.CharacterRange) {
	t.Helper()
	pos := full.Start
	for _, d := range decorated {
		assert.Equal(t, pos, d.Range().Start)
		pos = d.Range().End
	}
	assert.Equal(t, full.End, pos)
}

func TestDecorateRegexpPattern(t *testing.T) {
	pattern := token.Pattern{
		CharacterRange: rng(0, 11),
		Kind:           token.PatternRegexp,
		Value:          "(foo)|bar.*",
	}
	decorated := Decorate(pattern)
	assertCovers(t, decorated, pattern.CharacterRange)

	group := rng(0, 5)
	assert.Equal(t, []Decorated{
		MetaRegexp{CharacterRange: rng(0, 1), GroupRange: &group, Kind: RegexpDelimited, Value: "("},
		Pattern{CharacterRange: rng(1, 4), Kind: token.PatternRegexp, Value: "foo"},
		MetaRegexp{CharacterRange: rng(4, 5), GroupRange: &group, Kind: RegexpDelimited, Value: ")"},
		MetaRegexp{CharacterRange: rng(5, 6), Kind: RegexpAlternative, Value: "|"},
		Pattern{CharacterRange: rng(6, 9), Kind: token.PatternRegexp, Value: "bar"},
		MetaRegexp{CharacterRange: rng(9, 10), Kind: RegexpCharacterSet, Value: "."},
		MetaRegexp{CharacterRange: rng(10, 11), Kind: RegexpRangeQuantifier, Value: "*"},
	}, decorated)
}

func TestDecorateRegexpEscapesAndQuantifiers(t *testing.T) {
	decorated, ok := decorateRegexp(`\bfoo\d+?`)
	assert.True(t, ok)
	assert.Equal(t, []Decorated{
		MetaRegexp{CharacterRange: rng(0, 2), Kind: RegexpAssertion, Value: `\b`},
		Pattern{CharacterRange: rng(2, 5), Kind: token.PatternRegexp, Value: "foo"},
		MetaRegexp{CharacterRange: rng(5, 7), Kind: RegexpCharacterSet, Value: `\d`},
		MetaRegexp{CharacterRange: rng(7, 8), Kind: RegexpRangeQuantifier, Value: "+"},
		MetaRegexp{CharacterRange: rng(8, 9), Kind: RegexpLazyQuantifier, Value: "?"},
	}, decorated)
}

func TestDecorateRegexpCharacterClass(t *testing.T) {
	decorated, ok := decorateRegexp("[a-z0]")
	assert.True(t, ok)

	class := rng(0, 6)
	span := rng(1, 4)
	assert.Equal(t, []Decorated{
		MetaRegexp{CharacterRange: rng(0, 1), GroupRange: &class, Kind: RegexpCharacterClass, Value: "["},
		MetaRegexp{CharacterRange: rng(1, 2), GroupRange: &span, Kind: RegexpCharacterClassRange, Value: "a"},
		MetaRegexp{CharacterRange: rng(2, 3), GroupRange: &span, Kind: RegexpCharacterClassRangeHyphen, Value: "-"},
		MetaRegexp{CharacterRange: rng(3, 4), GroupRange: &span, Kind: RegexpCharacterClassRange, Value: "z"},
		MetaRegexp{CharacterRange: rng(4, 5), Kind: RegexpCharacterClassMember, Value: "0"},
		MetaRegexp{CharacterRange: rng(5, 6), GroupRange: &class, Kind: RegexpCharacterClass, Value: "]"},
	}, decorated)
}

func TestDecorateRegexpRangeQuantifierBrace(t *testing.T) {
	decorated, ok := decorateRegexp("a{2,3}b{x}")
	assert.True(t, ok)
	assert.Equal(t, []Decorated{
		Pattern{CharacterRange: rng(0, 1), Kind: token.PatternRegexp, Value: "a"},
		MetaRegexp{CharacterRange: rng(1, 6), Kind: RegexpRangeQuantifier, Value: "{2,3}"},
		Pattern{CharacterRange: rng(6, 10), Kind: token.PatternRegexp, Value: "b{x}"},
	}, decorated)
}

func TestDecorateRegexpDegradesOnMalformedSyntax(t *testing.T) {
	malformed := []string{
		"a(b",     // unclosed group
		"a)b",     // unmatched closing paren
		"*foo",    // quantifier with nothing to repeat
		"(*)",     // quantifier directly after group open
		"[abc",    // unclosed character class
		"foo\\",   // trailing backslash
		"a(?Pb)c", // unsupported group modifier
	}
	for _, value := range malformed {
		pattern := token.Pattern{
			CharacterRange: rng(3, 3+len(value)),
			Kind:           token.PatternRegexp,
			Value:          value,
		}
		decorated := Decorate(pattern)
		assert.Equal(t, []Decorated{
			Pattern{CharacterRange: pattern.CharacterRange, Kind: token.PatternRegexp, Value: value},
		}, decorated, "pattern %q should fall back undecorated", value)
	}
}

func TestDecorateStructuralPattern(t *testing.T) {
	pattern := token.Pattern{
		CharacterRange: rng(0, 15),
		Kind:           token.PatternStructural,
		Value:          `:[x] b :[y~\d+]`,
	}
	decorated := Decorate(pattern)
	assertCovers(t, decorated, pattern.CharacterRange)

	assert.Equal(t, []Decorated{
		MetaStructural{CharacterRange: rng(0, 2), Kind: StructuralHole, Value: ":["},
		MetaStructural{CharacterRange: rng(2, 3), Kind: StructuralVariable, Value: "x"},
		MetaStructural{CharacterRange: rng(3, 4), Kind: StructuralHole, Value: "]"},
		Pattern{CharacterRange: rng(4, 7), Kind: token.PatternStructural, Value: " b "},
		MetaStructural{CharacterRange: rng(7, 9), Kind: StructuralRegexpHole, Value: ":["},
		MetaStructural{CharacterRange: rng(9, 10), Kind: StructuralVariable, Value: "y"},
		MetaStructural{CharacterRange: rng(10, 11), Kind: StructuralRegexpSeparator, Value: "~"},
		MetaRegexp{CharacterRange: rng(11, 13), Kind: RegexpCharacterSet, Value: `\d`},
		MetaRegexp{CharacterRange: rng(13, 14), Kind: RegexpRangeQuantifier, Value: "+"},
		MetaStructural{CharacterRange: rng(14, 15), Kind: StructuralRegexpHole, Value: "]"},
	}, decorated)
}

func TestDecorateStructuralUnclosedHoleDegrades(t *testing.T) {
	pattern := token.Pattern{
		CharacterRange: rng(0, 6),
		Kind:           token.PatternStructural,
		Value:          "f(:[ar",
	}
	assert.Equal(t, []Decorated{
		Pattern{CharacterRange: rng(0, 6), Kind: token.PatternStructural, Value: "f(:[ar"},
	}, Decorate(pattern))
}

func TestDecorateRevisionInLiteralPattern(t *testing.T) {
	pattern := token.Pattern{
		CharacterRange: rng(0, 32),
		Kind:           token.PatternLiteral,
		Value:          "github.com/a/b@v1.*:deadbeefcafe",
	}
	decorated := Decorate(pattern)
	assertCovers(t, decorated, pattern.CharacterRange)

	assert.Equal(t, []Decorated{
		Pattern{CharacterRange: rng(0, 14), Kind: token.PatternLiteral, Value: "github.com/a/b"},
		MetaRepoRevisionSeparator{CharacterRange: rng(14, 15)},
		MetaRevision{CharacterRange: rng(15, 18), Kind: RevisionLabel, Value: "v1."},
		MetaRevision{CharacterRange: rng(18, 19), Kind: RevisionWildcard, Value: "*"},
		MetaRevision{CharacterRange: rng(19, 20), Kind: RevisionSeparator, Value: ":"},
		MetaRevision{CharacterRange: rng(20, 32), Kind: RevisionCommitHash, Value: "deadbeefcafe"},
	}, decorated)
}

func TestDecorateRepoFilterRevision(t *testing.T) {
	filter := token.Filter{
		CharacterRange: rng(0, 13),
		Field:          token.Literal{CharacterRange: rng(0, 4), Value: "repo"},
		Value:          token.Literal{CharacterRange: rng(5, 13), Value: "foo@main"},
	}
	assert.Equal(t, []Decorated{
		Plain{filter},
		Pattern{CharacterRange: rng(5, 8), Kind: token.PatternLiteral, Value: "foo"},
		MetaRepoRevisionSeparator{CharacterRange: rng(8, 9)},
		MetaRevision{CharacterRange: rng(9, 13), Kind: RevisionLabel, Value: "main"},
	}, Decorate(filter))
}

func TestDecorateRevFilterGlob(t *testing.T) {
	filter := token.Filter{
		CharacterRange: rng(0, 17),
		Field:          token.Literal{CharacterRange: rng(0, 3), Value: "rev"},
		Value:          token.Literal{CharacterRange: rng(4, 17), Value: "*refs/heads/*"},
	}
	assert.Equal(t, []Decorated{
		Plain{filter},
		MetaRevision{CharacterRange: rng(4, 5), Kind: RevisionIncludeGlobMarker, Value: "*"},
		MetaRevision{CharacterRange: rng(5, 16), Kind: RevisionReferencePath, Value: "refs/heads/"},
		MetaRevision{CharacterRange: rng(16, 17), Kind: RevisionWildcard, Value: "*"},
	}, Decorate(filter))
}

func TestDecorateRevisionExcludeGlob(t *testing.T) {
	decorated, ok := decorateRevision("foo@*!release/*")
	assert.True(t, ok)
	assert.Equal(t, []Decorated{
		Pattern{CharacterRange: rng(0, 3), Kind: token.PatternLiteral, Value: "foo"},
		MetaRepoRevisionSeparator{CharacterRange: rng(3, 4)},
		MetaRevision{CharacterRange: rng(4, 6), Kind: RevisionExcludeGlobMarker, Value: "*!"},
		MetaRevision{CharacterRange: rng(6, 14), Kind: RevisionReferencePath, Value: "release/"},
		MetaRevision{CharacterRange: rng(14, 15), Kind: RevisionWildcard, Value: "*"},
	}, decorated)
}

func TestDecorateSelectFilter(t *testing.T) {
	filter := token.Filter{
		CharacterRange: rng(0, 22),
		Field:          token.Literal{CharacterRange: rng(0, 6), Value: "select"},
		Value:          token.Literal{CharacterRange: rng(7, 22), Value: "symbol.function"},
	}
	assert.Equal(t, []Decorated{
		Plain{filter},
		MetaSelector{CharacterRange: rng(7, 22), Kind: SelectorSymbol, Value: "symbol.function"},
	}, Decorate(filter))
}

func TestDecorateUnknownSelectorRootStaysPlain(t *testing.T) {
	filter := token.Filter{
		CharacterRange: rng(0, 13),
		Field:          token.Literal{CharacterRange: rng(0, 6), Value: "select"},
		Value:          token.Literal{CharacterRange: rng(7, 13), Value: "bogus"},
	}
	assert.Equal(t, []Decorated{Plain{filter}}, Decorate(filter))
}

func TestDecoratePassthrough(t *testing.T) {
	ws := token.Whitespace{CharacterRange: rng(3, 4)}
	assert.Equal(t, []Decorated{Plain{ws}}, Decorate(ws))

	literal := token.Pattern{CharacterRange: rng(0, 3), Kind: token.PatternLiteral, Value: "foo"}
	assert.Equal(t, []Decorated{
		Pattern{CharacterRange: rng(0, 3), Kind: token.PatternLiteral, Value: "foo"},
	}, Decorate(literal))
}
