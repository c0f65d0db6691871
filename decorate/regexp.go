package decorate

import (
	"regexp"
	"strings"

	"github.com/codesurf/querytext/token"
)

// quantifierBrace matches a {n}, {n,} or {n,m} repetition at the start of
// the remaining pattern.
var quantifierBrace = regexp.MustCompile(`^\{\d+(,\d*)?\}`)

// decorateRegexp annotates a regular expression pattern with meta tokens.
// The emitted tokens cover the pattern with no gaps or overlaps, in order,
// with ranges local to the pattern. It reports false when the pattern is not
// a well-formed regular expression, in which case the caller falls back to
// an undecorated pattern.
func decorateRegexp(value string) ([]Decorated, bool) {
	a := &regexpAnnotator{value: value}
	if !a.run() {
		return nil, false
	}
	return a.out, true
}

type openGroup struct {
	index int // position of the '(' token in out
	start int
}

type regexpAnnotator struct {
	value  string
	out    []Decorated
	groups []openGroup
}

func (a *regexpAnnotator) run() bool {
	v := a.value
	plain := -1
	flush := func(end int) {
		if plain < 0 {
			return
		}
		a.out = append(a.out, Pattern{
			CharacterRange: token.CharacterRange{Start: plain, End: end},
			Kind:           token.PatternRegexp,
			Value:          v[plain:end],
		})
		plain = -1
	}

	i := 0
	for i < len(v) {
		switch c := v[i]; c {
		case '\\':
			if i+1 >= len(v) {
				return false
			}
			flush(i)
			kind := RegexpEscapedCharacter
			switch v[i+1] {
			case 'd', 'D', 's', 'S', 'w', 'W':
				kind = RegexpCharacterSet
			case 'b', 'B':
				kind = RegexpAssertion
			}
			a.emit(kind, i, i+2)
			i += 2
		case '^', '$':
			flush(i)
			a.emit(RegexpAssertion, i, i+1)
			i++
		case '|':
			flush(i)
			a.emit(RegexpAlternative, i, i+1)
			i++
		case '.':
			flush(i)
			a.emit(RegexpCharacterSet, i, i+1)
			i++
		case '(':
			flush(i)
			end := i + 1
			if end < len(v) && v[end] == '?' {
				// Non-capturing groups and lookarounds keep their modifier
				// inside the delimiter token.
				switch {
				case strings.HasPrefix(v[end:], "?:"), strings.HasPrefix(v[end:], "?="), strings.HasPrefix(v[end:], "?!"):
					end += 2
				case strings.HasPrefix(v[end:], "?<="), strings.HasPrefix(v[end:], "?<!"):
					end += 3
				default:
					return false
				}
			}
			a.groups = append(a.groups, openGroup{index: len(a.out), start: i})
			a.emit(RegexpDelimited, i, end)
			i = end
		case ')':
			if len(a.groups) == 0 {
				return false
			}
			flush(i)
			g := a.groups[len(a.groups)-1]
			a.groups = a.groups[:len(a.groups)-1]
			groupRange := token.CharacterRange{Start: g.start, End: i + 1}
			a.setGroupRange(g.index, groupRange)
			a.emit(RegexpDelimited, i, i+1)
			a.setGroupRange(len(a.out)-1, groupRange)
			i++
		case '[':
			flush(i)
			next, ok := a.characterClass(i)
			if !ok {
				return false
			}
			i = next
		case '{':
			if m := quantifierBrace.FindString(v[i:]); m != "" {
				flush(i)
				a.emit(RegexpRangeQuantifier, i, i+len(m))
				i += len(m)
			} else {
				// An unmatched brace is an ordinary character.
				if plain < 0 {
					plain = i
				}
				i++
			}
		case '*', '+', '?':
			if i == 0 || v[i-1] == '(' || v[i-1] == '|' {
				return false
			}
			flush(i)
			kind := RegexpRangeQuantifier
			if c == '?' && a.endsWithQuantifier(i) {
				kind = RegexpLazyQuantifier
			}
			a.emit(kind, i, i+1)
			i++
		default:
			if plain < 0 {
				plain = i
			}
			i++
		}
	}
	if len(a.groups) > 0 {
		return false
	}
	flush(len(v))
	return true
}

// characterClass annotates a [...] class starting at start and returns the
// position just past the closing bracket.
func (a *regexpAnnotator) characterClass(start int) (int, bool) {
	v := a.value
	i := start + 1
	if i < len(v) && v[i] == '^' {
		i++
	}
	openIndex := len(a.out)
	a.emit(RegexpCharacterClass, start, i)

	// A ']' directly after the opening bracket is a literal member.
	first := true
	for i < len(v) && (v[i] != ']' || first) {
		first = false
		memberEnd := i + 1
		if v[i] == '\\' {
			if i+1 >= len(v) {
				return 0, false
			}
			memberEnd = i + 2
		}
		if memberEnd < len(v) && v[memberEnd] == '-' && memberEnd+1 < len(v) && v[memberEnd+1] != ']' {
			hiStart := memberEnd + 1
			hiEnd := hiStart + 1
			if v[hiStart] == '\\' {
				if hiStart+1 >= len(v) {
					return 0, false
				}
				hiEnd = hiStart + 2
			}
			groupRange := token.CharacterRange{Start: i, End: hiEnd}
			a.emitGrouped(RegexpCharacterClassRange, i, memberEnd, groupRange)
			a.emitGrouped(RegexpCharacterClassRangeHyphen, memberEnd, hiStart, groupRange)
			a.emitGrouped(RegexpCharacterClassRange, hiStart, hiEnd, groupRange)
			i = hiEnd
			continue
		}
		a.emit(RegexpCharacterClassMember, i, memberEnd)
		i = memberEnd
	}
	if i >= len(v) {
		return 0, false
	}
	a.emit(RegexpCharacterClass, i, i+1)

	classRange := token.CharacterRange{Start: start, End: i + 1}
	a.setGroupRange(openIndex, classRange)
	a.setGroupRange(len(a.out)-1, classRange)
	return i + 1, true
}

func (a *regexpAnnotator) emit(kind RegexpKind, start, end int) {
	a.out = append(a.out, MetaRegexp{
		CharacterRange: token.CharacterRange{Start: start, End: end},
		Kind:           kind,
		Value:          a.value[start:end],
	})
}

func (a *regexpAnnotator) emitGrouped(kind RegexpKind, start, end int, group token.CharacterRange) {
	a.out = append(a.out, MetaRegexp{
		CharacterRange: token.CharacterRange{Start: start, End: end},
		GroupRange:     &group,
		Kind:           kind,
		Value:          a.value[start:end],
	})
}

func (a *regexpAnnotator) setGroupRange(index int, group token.CharacterRange) {
	m := a.out[index].(MetaRegexp)
	m.GroupRange = &group
	a.out[index] = m
}

// endsWithQuantifier reports whether the token emitted immediately before
// position i is a quantifier, making a following '?' lazy.
func (a *regexpAnnotator) endsWithQuantifier(i int) bool {
	if len(a.out) == 0 {
		return false
	}
	m, ok := a.out[len(a.out)-1].(MetaRegexp)
	return ok && m.CharacterRange.End == i &&
		(m.Kind == RegexpRangeQuantifier || m.Kind == RegexpLazyQuantifier)
}
