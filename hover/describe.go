package hover

import (
	"fmt"
	"unicode/utf8"

	"github.com/codesurf/querytext"
	"github.com/codesurf/querytext/decorate"
	"github.com/codesurf/querytext/token"
)

// describe returns the markdown description and highlight range for a
// decorated token. Tokens with nothing to say (whitespace, parens, bare
// literals) report false.
func describe(d decorate.Decorated) (string, token.CharacterRange, bool) {
	switch m := d.(type) {
	case decorate.Plain:
		return describeToken(m.Token)
	case decorate.Pattern:
		return describePattern(m.Value), m.CharacterRange, true
	case decorate.MetaRegexp:
		r := m.CharacterRange
		if m.GroupRange != nil {
			r = *m.GroupRange
		}
		return describeRegexp(m), r, true
	case decorate.MetaStructural:
		return describeStructural(m.Kind), m.CharacterRange, true
	case decorate.MetaRevision:
		return describeRevision(m.Kind), m.CharacterRange, true
	case decorate.MetaRepoRevisionSeparator:
		return "**Search at revision.** Separates a repository pattern from the revisions to search.", m.CharacterRange, true
	case decorate.MetaSelector:
		return describeSelector(m.Kind), m.CharacterRange, true
	default:
		return "", token.CharacterRange{}, false
	}
}

func describeToken(t token.Token) (string, token.CharacterRange, bool) {
	switch tk := t.(type) {
	case token.Filter:
		def, ok := querytext.LookupFilter(tk.Field.Value)
		if !ok {
			return "", token.CharacterRange{}, false
		}
		// Extend the field range by one character to include the ':'.
		r := token.CharacterRange{Start: tk.Field.Range().Start, End: tk.Field.Range().End + 1}
		return def.Describe(tk.Negated), r, true
	case token.Pattern:
		return describePattern(tk.Value), tk.Range(), true
	case token.Keyword:
		return describeKeyword(tk.Kind), tk.Range(), true
	default:
		return "", token.CharacterRange{}, false
	}
}

func describePattern(value string) string {
	if utf8.RuneCountInString(value) == 1 {
		return fmt.Sprintf("Matches the character `%s`.", value)
	}
	return fmt.Sprintf("Matches the string `%s`.", value)
}

func describeKeyword(kind token.KeywordKind) string {
	switch kind {
	case token.KeywordOr:
		return "**Or operator.** Matches results from the expression on either side."
	case token.KeywordAnd:
		return "**And operator.** Matches results containing both expressions."
	case token.KeywordNot:
		return "**Negation.** Excludes results matching the following expression."
	default:
		return ""
	}
}

func describeRegexp(m decorate.MetaRegexp) string {
	switch m.Kind {
	case decorate.RegexpAssertion:
		switch m.Value {
		case "^":
			return "**Start anchor.** Matches at the beginning of a string or line."
		case "$":
			return "**End anchor.** Matches at the end of a string or line."
		case `\b`:
			return "**Word boundary.** Matches at a position between a word character and a non-word character."
		case `\B`:
			return "**Non-word boundary.** Matches at any position that is not a word boundary."
		default:
			return "**Assertion.** Matches a position rather than a character."
		}
	case decorate.RegexpAlternative:
		return "**Or.** Matches either the expression before or the expression after the `|`."
	case decorate.RegexpDelimited:
		return "**Group.** Groups several tokens so that operators apply to the whole sub-expression."
	case decorate.RegexpCharacterSet:
		switch m.Value {
		case ".":
			return "**Dot.** Matches any single character except a line break."
		case `\d`:
			return "**Digit.** Matches any digit character."
		case `\D`:
			return "**Non-digit.** Matches any character that is not a digit."
		case `\w`:
			return "**Word.** Matches any letter, digit, or underscore."
		case `\W`:
			return "**Non-word.** Matches any character that is not a letter, digit, or underscore."
		case `\s`:
			return "**Whitespace.** Matches any whitespace character."
		case `\S`:
			return "**Non-whitespace.** Matches any character that is not whitespace."
		default:
			return "**Character set.** Matches any character in the set."
		}
	case decorate.RegexpCharacterClass:
		if len(m.Value) > 1 && m.Value[1] == '^' {
			return "**Negated character class.** Matches any character not listed in the class."
		}
		return "**Character class.** Matches any character listed in the class."
	case decorate.RegexpCharacterClassMember:
		return fmt.Sprintf("**Character.** Matches the character `%s`.", m.Value)
	case decorate.RegexpCharacterClassRange:
		return "**Character range.** Matches any character between the bounds, inclusive."
	case decorate.RegexpCharacterClassRangeHyphen:
		return "**Range separator.** Separates the low and high bounds of a character range."
	case decorate.RegexpRangeQuantifier:
		switch m.Value {
		case "*":
			return "**Zero or more.** Matches the previous expression any number of times."
		case "+":
			return "**One or more.** Matches the previous expression one or more times."
		case "?":
			return "**Optional.** Matches the previous expression zero or one time."
		default:
			return "**Quantifier.** Matches the previous expression the specified number of times."
		}
	case decorate.RegexpLazyQuantifier:
		return "**Lazy.** Matches as few characters as possible instead of as many as possible."
	case decorate.RegexpEscapedCharacter:
		escaped := m.Value
		if len(escaped) == 2 {
			escaped = escaped[1:]
		}
		return fmt.Sprintf("**Escaped character.** Matches the character `%s`.", escaped)
	default:
		return ""
	}
}

func describeStructural(kind decorate.StructuralKind) string {
	switch kind {
	case decorate.StructuralHole:
		return "**Hole.** Matches code structurally, including across whitespace and line breaks."
	case decorate.StructuralRegexpHole:
		return "**Regexp hole.** Matches code satisfying the regular expression inside this hole."
	case decorate.StructuralVariable:
		return "**Variable.** Names the matched value so the hole can be referenced."
	case decorate.StructuralRegexpSeparator:
		return "**Separator.** Separates the hole's variable name from its regular expression."
	default:
		return ""
	}
}

func describeRevision(kind decorate.RevisionKind) string {
	switch kind {
	case decorate.RevisionCommitHash:
		return "**Commit hash.** Search the repository at this commit."
	case decorate.RevisionLabel:
		return "**Branch or tag.** Search the repository at this branch or tag."
	case decorate.RevisionReferencePath:
		return "**Reference path.** Search revisions under this Git reference path."
	case decorate.RevisionWildcard:
		return "**Wildcard.** Matches any sequence of characters in the revision name."
	case decorate.RevisionIncludeGlobMarker:
		return "**Include glob.** Search every revision matching the glob pattern."
	case decorate.RevisionExcludeGlobMarker:
		return "**Exclude glob.** Exclude every revision matching the glob pattern."
	case decorate.RevisionSeparator:
		return "**Separator.** Separates multiple revisions to search across."
	default:
		return ""
	}
}

func describeSelector(kind decorate.SelectorKind) string {
	switch kind {
	case decorate.SelectorRepo:
		return "Select and display distinct repository paths from search results."
	case decorate.SelectorFile:
		return "Select and display distinct file paths from search results."
	case decorate.SelectorContent:
		return "Select only content matches from search results."
	case decorate.SelectorCommit:
		return "Select and display distinct commits from search results."
	case decorate.SelectorSymbol:
		return "Select and display distinct symbols from search results."
	default:
		return ""
	}
}
