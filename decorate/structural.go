package decorate

import (
	"strings"

	"github.com/codesurf/querytext/token"
)

// decorateStructural annotates structural-search hole syntax, :[name] and
// :[name~regexp], with meta tokens. Ranges are local to the pattern. It
// reports false when a hole is left unclosed.
func decorateStructural(value string) ([]Decorated, bool) {
	var decorated []Decorated
	pos := 0
	for pos < len(value) {
		hole := strings.Index(value[pos:], ":[")
		if hole < 0 {
			break
		}
		hole += pos
		if hole > pos {
			decorated = append(decorated, Pattern{
				CharacterRange: token.CharacterRange{Start: pos, End: hole},
				Kind:           token.PatternStructural,
				Value:          value[pos:hole],
			})
		}

		closing := strings.IndexByte(value[hole+2:], ']')
		if closing < 0 {
			return nil, false
		}
		closing += hole + 2

		decorated = append(decorated, decorateHole(value, hole, closing)...)
		pos = closing + 1
	}
	if pos < len(value) {
		decorated = append(decorated, Pattern{
			CharacterRange: token.CharacterRange{Start: pos, End: len(value)},
			Kind:           token.PatternStructural,
			Value:          value[pos:],
		})
	}
	return decorated, true
}

// decorateHole tokenizes one hole spanning value[open:closing+1], where open
// points at ':[' and closing at ']'.
func decorateHole(value string, open, closing int) []Decorated {
	body := value[open+2 : closing]
	name, expr, isRegexp := strings.Cut(body, "~")

	delimiter := StructuralHole
	if isRegexp {
		delimiter = StructuralRegexpHole
	}
	decorated := []Decorated{MetaStructural{
		CharacterRange: token.CharacterRange{Start: open, End: open + 2},
		Kind:           delimiter,
		Value:          ":[",
	}}
	if name != "" {
		decorated = append(decorated, MetaStructural{
			CharacterRange: token.CharacterRange{Start: open + 2, End: open + 2 + len(name)},
			Kind:           StructuralVariable,
			Value:          name,
		})
	}
	if isRegexp {
		separator := open + 2 + len(name)
		decorated = append(decorated, MetaStructural{
			CharacterRange: token.CharacterRange{Start: separator, End: separator + 1},
			Kind:           StructuralRegexpSeparator,
			Value:          "~",
		})
		exprStart := separator + 1
		if metas, ok := decorateRegexp(expr); ok {
			decorated = append(decorated, shiftAll(metas, exprStart)...)
		} else if expr != "" {
			decorated = append(decorated, Pattern{
				CharacterRange: token.CharacterRange{Start: exprStart, End: exprStart + len(expr)},
				Kind:           token.PatternRegexp,
				Value:          expr,
			})
		}
	}
	decorated = append(decorated, MetaStructural{
		CharacterRange: token.CharacterRange{Start: closing, End: closing + 1},
		Kind:           delimiter,
		Value:          "]",
	})
	return decorated
}
