package decorate

import (
	"regexp"
	"strings"

	"github.com/codesurf/querytext"
	"github.com/codesurf/querytext/token"
)

// Decorate expands a token into decorated tokens. Non-pattern tokens pass
// through unchanged as a single-element slice; pattern tokens are sub-parsed
// according to their kind, and filter tokens additionally yield meta tokens
// for select: paths and repo revision specifications. Decorate never fails;
// sub-syntax that does not parse is returned as an undecorated pattern.
func Decorate(tok token.Token) []Decorated {
	switch t := tok.(type) {
	case token.Pattern:
		return decoratePattern(t)
	case token.Filter:
		return decorateFilter(t)
	default:
		return []Decorated{Plain{tok}}
	}
}

func decoratePattern(t token.Pattern) []Decorated {
	var decorated []Decorated
	var ok bool
	switch t.Kind {
	case token.PatternRegexp:
		decorated, ok = decorateRegexp(t.Value)
	case token.PatternStructural:
		decorated, ok = decorateStructural(t.Value)
	case token.PatternLiteral:
		decorated, ok = decorateRevision(t.Value)
	}
	if !ok {
		return []Decorated{Pattern{CharacterRange: t.CharacterRange, Kind: t.Kind, Value: t.Value}}
	}
	return shiftAll(decorated, t.CharacterRange.Start)
}

func decorateFilter(f token.Filter) []Decorated {
	decorated := []Decorated{Plain{f}}

	value, ok := f.Value.(token.Literal)
	if !ok {
		return decorated
	}

	switch querytext.CanonicalFilterName(f.Field.Value) {
	case "select":
		if kind, known := selectorRoot(value.Value); known {
			decorated = append(decorated, MetaSelector{
				CharacterRange: value.CharacterRange,
				Kind:           kind,
				Value:          value.Value,
			})
		}
	case "repo":
		if revision, known := decorateRevision(value.Value); known {
			decorated = append(decorated, shiftAll(revision, value.CharacterRange.Start)...)
		}
	case "rev":
		if revisionSpec.MatchString(value.Value) {
			revision := decorateRevisionSpec(value.Value, 0)
			decorated = append(decorated, shiftAll(revision, value.CharacterRange.Start)...)
		}
	}
	return decorated
}

// revisionSpec matches the text permitted after the '@' of a revision
// specification: branch and tag labels, reference paths, commit hashes,
// wildcards and glob markers, separated by ':'.
var revisionSpec = regexp.MustCompile(`^[\w.:/*!^~+-]+$`)

// decorateRevision splits a literal of the form pattern@revspec into a
// pattern, the repo-revision separator, and revision meta tokens. It reports
// false when the literal does not match revision grammar. Ranges are local
// to the literal.
func decorateRevision(value string) ([]Decorated, bool) {
	at := strings.IndexByte(value, '@')
	if at < 0 {
		return nil, false
	}
	spec := value[at+1:]
	if spec == "" || !revisionSpec.MatchString(spec) {
		return nil, false
	}

	var decorated []Decorated
	if at > 0 {
		decorated = append(decorated, Pattern{
			CharacterRange: token.CharacterRange{Start: 0, End: at},
			Kind:           token.PatternLiteral,
			Value:          value[:at],
		})
	}
	decorated = append(decorated, MetaRepoRevisionSeparator{
		CharacterRange: token.CharacterRange{Start: at, End: at + 1},
	})
	decorated = append(decorated, decorateRevisionSpec(spec, at+1)...)
	return decorated, true
}

// decorateRevisionSpec tokenizes a ':'-separated revision specification,
// emitting ranges offset by base.
func decorateRevisionSpec(spec string, base int) []Decorated {
	var decorated []Decorated
	pos := 0
	for pos <= len(spec) {
		end := strings.IndexByte(spec[pos:], ':')
		if end < 0 {
			end = len(spec)
		} else {
			end += pos
		}

		decorated = append(decorated, decorateRevisionSegment(spec[pos:end], base+pos)...)

		if end == len(spec) {
			break
		}
		decorated = append(decorated, MetaRevision{
			CharacterRange: token.CharacterRange{Start: base + end, End: base + end + 1},
			Kind:           RevisionSeparator,
			Value:          ":",
		})
		pos = end + 1
	}
	return decorated
}

// decorateRevisionSegment tokenizes one revision between separators: an
// optional glob marker, then reference text with embedded wildcards.
func decorateRevisionSegment(segment string, base int) []Decorated {
	var decorated []Decorated
	pos := 0
	switch {
	case strings.HasPrefix(segment, "*!"):
		decorated = append(decorated, MetaRevision{
			CharacterRange: token.CharacterRange{Start: base, End: base + 2},
			Kind:           RevisionExcludeGlobMarker,
			Value:          "*!",
		})
		pos = 2
	case strings.HasPrefix(segment, "*"):
		decorated = append(decorated, MetaRevision{
			CharacterRange: token.CharacterRange{Start: base, End: base + 1},
			Kind:           RevisionIncludeGlobMarker,
			Value:          "*",
		})
		pos = 1
	}

	start := pos
	flush := func(end int) {
		if end == start {
			return
		}
		chunk := segment[start:end]
		decorated = append(decorated, MetaRevision{
			CharacterRange: token.CharacterRange{Start: base + start, End: base + end},
			Kind:           classifyRevision(chunk),
			Value:          chunk,
		})
	}
	for pos < len(segment) {
		if segment[pos] == '*' {
			flush(pos)
			decorated = append(decorated, MetaRevision{
				CharacterRange: token.CharacterRange{Start: base + pos, End: base + pos + 1},
				Kind:           RevisionWildcard,
				Value:          "*",
			})
			pos++
			start = pos
			continue
		}
		pos++
	}
	flush(pos)
	return decorated
}

var commitHash = regexp.MustCompile(`^[0-9a-fA-F]{7,40}$`)

func classifyRevision(chunk string) RevisionKind {
	switch {
	case commitHash.MatchString(chunk):
		return RevisionCommitHash
	case strings.ContainsRune(chunk, '/'):
		return RevisionReferencePath
	default:
		return RevisionLabel
	}
}

func selectorRoot(path string) (SelectorKind, bool) {
	root, _, _ := strings.Cut(path, ".")
	switch root {
	case "repo":
		return SelectorRepo, true
	case "file":
		return SelectorFile, true
	case "content":
		return SelectorContent, true
	case "commit":
		return SelectorCommit, true
	case "symbol":
		return SelectorSymbol, true
	default:
		return 0, false
	}
}

// shiftAll translates locally-ranged decorated tokens into the coordinate
// space of the enclosing query. Applying the translation in one place keeps
// range arithmetic out of the sub-parsers.
func shiftAll(decorated []Decorated, offset int) []Decorated {
	for i, d := range decorated {
		switch m := d.(type) {
		case Pattern:
			m.CharacterRange = m.CharacterRange.Shift(offset)
			decorated[i] = m
		case MetaRegexp:
			m.CharacterRange = m.CharacterRange.Shift(offset)
			if m.GroupRange != nil {
				shifted := m.GroupRange.Shift(offset)
				m.GroupRange = &shifted
			}
			decorated[i] = m
		case MetaStructural:
			m.CharacterRange = m.CharacterRange.Shift(offset)
			decorated[i] = m
		case MetaRevision:
			m.CharacterRange = m.CharacterRange.Shift(offset)
			decorated[i] = m
		case MetaRepoRevisionSeparator:
			m.CharacterRange = m.CharacterRange.Shift(offset)
			decorated[i] = m
		case MetaSelector:
			m.CharacterRange = m.CharacterRange.Shift(offset)
			decorated[i] = m
		}
	}
	return decorated
}
