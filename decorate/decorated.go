// Package decorate expands pattern tokens into fine-grained meta tokens
// describing regexp constructs, structural-search holes, revision syntax,
// and select: paths. Decoration runs on every keystroke of an editor, so it
// never fails: malformed sub-syntax degrades to an undecorated pattern.
package decorate

import "github.com/codesurf/querytext/token"

// Decorated is a token augmented with sub-structure: either a passthrough of
// a lexical token or one of the meta-token variants below.
type Decorated interface {
	Range() token.CharacterRange
	decorated()
}

// Plain passes a lexical token through undecorated.
type Plain struct {
	token.Token
}

// Pattern is a span of pattern text without further sub-structure.
type Pattern struct {
	token.CharacterRange
	Kind  token.PatternKind
	Value string
}

// RegexpKind classifies regular expression constructs.
type RegexpKind int

const (
	RegexpAssertion RegexpKind = iota
	RegexpAlternative
	RegexpDelimited
	RegexpCharacterSet
	RegexpCharacterClass
	RegexpCharacterClassMember
	RegexpCharacterClassRange
	RegexpCharacterClassRangeHyphen
	RegexpRangeQuantifier
	RegexpLazyQuantifier
	RegexpEscapedCharacter
)

// String returns the string representation of RegexpKind
func (k RegexpKind) String() string {
	switch k {
	case RegexpAssertion:
		return "assertion"
	case RegexpAlternative:
		return "alternative"
	case RegexpDelimited:
		return "delimited"
	case RegexpCharacterSet:
		return "characterSet"
	case RegexpCharacterClass:
		return "characterClass"
	case RegexpCharacterClassMember:
		return "characterClassMember"
	case RegexpCharacterClassRange:
		return "characterClassRange"
	case RegexpCharacterClassRangeHyphen:
		return "characterClassRangeHyphen"
	case RegexpRangeQuantifier:
		return "rangeQuantifier"
	case RegexpLazyQuantifier:
		return "lazyQuantifier"
	case RegexpEscapedCharacter:
		return "escapedCharacter"
	default:
		return "unknown"
	}
}

// MetaRegexp is a regular expression construct inside a regexp pattern.
// GroupRange, when set, covers the enclosing compound construct (the full
// delimited group or character range) for hover highlighting.
type MetaRegexp struct {
	token.CharacterRange
	GroupRange *token.CharacterRange
	Kind       RegexpKind
	Value      string
}

// StructuralKind classifies structural-search hole syntax.
type StructuralKind int

const (
	StructuralHole StructuralKind = iota
	StructuralRegexpHole
	StructuralVariable
	StructuralRegexpSeparator
)

// String returns the string representation of StructuralKind
func (k StructuralKind) String() string {
	switch k {
	case StructuralHole:
		return "hole"
	case StructuralRegexpHole:
		return "regexpHole"
	case StructuralVariable:
		return "variable"
	case StructuralRegexpSeparator:
		return "regexpSeparator"
	default:
		return "unknown"
	}
}

// MetaStructural is a structural-search construct such as :[hole].
type MetaStructural struct {
	token.CharacterRange
	Kind  StructuralKind
	Value string
}

// RevisionKind classifies @revision syntax following a repo pattern.
type RevisionKind int

const (
	RevisionCommitHash RevisionKind = iota
	RevisionLabel
	RevisionReferencePath
	RevisionWildcard
	RevisionIncludeGlobMarker
	RevisionExcludeGlobMarker
	RevisionSeparator
)

// String returns the string representation of RevisionKind
func (k RevisionKind) String() string {
	switch k {
	case RevisionCommitHash:
		return "commitHash"
	case RevisionLabel:
		return "label"
	case RevisionReferencePath:
		return "referencePath"
	case RevisionWildcard:
		return "wildcard"
	case RevisionIncludeGlobMarker:
		return "includeGlobMarker"
	case RevisionExcludeGlobMarker:
		return "excludeGlobMarker"
	case RevisionSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// MetaRevision is one element of a revision specification.
type MetaRevision struct {
	token.CharacterRange
	Kind  RevisionKind
	Value string
}

// MetaRepoRevisionSeparator is the literal '@' tying a repo pattern to its
// revision specification.
type MetaRepoRevisionSeparator struct {
	token.CharacterRange
}

// SelectorKind classifies the root of a select: path.
type SelectorKind int

const (
	SelectorRepo SelectorKind = iota
	SelectorFile
	SelectorContent
	SelectorCommit
	SelectorSymbol
)

// String returns the string representation of SelectorKind
func (k SelectorKind) String() string {
	switch k {
	case SelectorRepo:
		return "repo"
	case SelectorFile:
		return "file"
	case SelectorContent:
		return "content"
	case SelectorCommit:
		return "commit"
	case SelectorSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// MetaSelector is the value of a select: filter.
type MetaSelector struct {
	token.CharacterRange
	Kind  SelectorKind
	Value string
}

func (Plain) decorated()                     {}
func (Pattern) decorated()                   {}
func (MetaRegexp) decorated()                {}
func (MetaStructural) decorated()            {}
func (MetaRevision) decorated()              {}
func (MetaRepoRevisionSeparator) decorated() {}
func (MetaSelector) decorated()              {}
