package token

// CharacterRange is a half-open [Start, End) span of byte offsets on a
// single-line query string. Start == End denotes an empty span.
type CharacterRange struct {
	Start int
	End   int
}

// Range returns the range itself. It is promoted into every token variant
// that embeds CharacterRange, giving each of them the Token interface.
func (r CharacterRange) Range() CharacterRange {
	return r
}

// Contains reports whether the 1-based editor column falls on a character
// covered by the range.
func (r CharacterRange) Contains(column int) bool {
	return r.Start+1 <= column && column <= r.End
}

// Shift returns the range translated by offset characters.
func (r CharacterRange) Shift(offset int) CharacterRange {
	return CharacterRange{Start: r.Start + offset, End: r.End + offset}
}

// Slice returns the substring of query covered by the range.
func (r CharacterRange) Slice(query string) string {
	return query[r.Start:r.End]
}

// Type identifies the lexical kind of a token.
type Type int

const (
	TypeWhitespace Type = iota
	TypeOpeningParen
	TypeClosingParen
	TypeKeyword
	TypeComment
	TypeLiteral
	TypePattern
	TypeFilter
	TypeQuoted
)

// String returns the string representation of Type
func (t Type) String() string {
	switch t {
	case TypeWhitespace:
		return "whitespace"
	case TypeOpeningParen:
		return "openingParen"
	case TypeClosingParen:
		return "closingParen"
	case TypeKeyword:
		return "keyword"
	case TypeComment:
		return "comment"
	case TypeLiteral:
		return "literal"
	case TypePattern:
		return "pattern"
	case TypeFilter:
		return "filter"
	case TypeQuoted:
		return "quoted"
	default:
		return "unknown"
	}
}

// Token is the closed set of lexical query tokens. The concrete variants are
// Whitespace, OpeningParen, ClosingParen, Keyword, Comment, Literal, Pattern,
// Filter and Quoted; the unexported marker keeps the set closed so that every
// consumer switching over variants has to handle additions.
type Token interface {
	Type() Type
	Range() CharacterRange
	token()
}

// PatternKind labels how the free text of a Pattern token is interpreted.
// The kind is per token, independent of any global search mode, so a single
// query may mix kinds.
type PatternKind int

const (
	PatternLiteral PatternKind = iota + 1
	PatternRegexp
	PatternStructural
)

// String returns the string representation of PatternKind
func (k PatternKind) String() string {
	switch k {
	case PatternLiteral:
		return "literal"
	case PatternRegexp:
		return "regexp"
	case PatternStructural:
		return "structural"
	default:
		return "unknown"
	}
}

// KeywordKind distinguishes the boolean operator keywords.
type KeywordKind int

const (
	KeywordOr KeywordKind = iota
	KeywordAnd
	KeywordNot
)

// String returns the string representation of KeywordKind
func (k KeywordKind) String() string {
	switch k {
	case KeywordOr:
		return "or"
	case KeywordAnd:
		return "and"
	case KeywordNot:
		return "not"
	default:
		return "unknown"
	}
}

// Whitespace is a run of space characters between terms.
type Whitespace struct {
	CharacterRange
}

// OpeningParen marks a '(' grouping a sub-expression.
type OpeningParen struct {
	CharacterRange
}

// ClosingParen marks a ')' closing a sub-expression.
type ClosingParen struct {
	CharacterRange
}

// Keyword is a boolean operator term (case-insensitive and/or/not).
type Keyword struct {
	CharacterRange
	Kind  KeywordKind
	Value string
}

// Comment is a '//'-to-end-of-line comment.
type Comment struct {
	CharacterRange
	Value string
}

// Literal is an unquoted bare value, such as a filter field name or an
// unquoted filter value.
type Literal struct {
	CharacterRange
	Value string
}

// Pattern is a free-text search pattern together with the way it should be
// interpreted.
type Pattern struct {
	CharacterRange
	Kind  PatternKind
	Value string
}

// Quoted is a quoted string. QuotedValue holds the unescaped contents
// without the surrounding quotes; the range covers the quotes.
type Quoted struct {
	CharacterRange
	QuotedValue string
}

// Filter is a field:value pair. Value is nil, a Literal, or a Quoted token.
// Negated is true when the field was prefixed with '-'; Field.Value never
// includes the '-' or the ':'.
type Filter struct {
	CharacterRange
	Field   Literal
	Value   Token
	Negated bool
}

func (Whitespace) Type() Type   { return TypeWhitespace }
func (OpeningParen) Type() Type { return TypeOpeningParen }
func (ClosingParen) Type() Type { return TypeClosingParen }
func (Keyword) Type() Type      { return TypeKeyword }
func (Comment) Type() Type      { return TypeComment }
func (Literal) Type() Type      { return TypeLiteral }
func (Pattern) Type() Type      { return TypePattern }
func (Filter) Type() Type       { return TypeFilter }
func (Quoted) Type() Type       { return TypeQuoted }

func (Whitespace) token()   {}
func (OpeningParen) token() {}
func (ClosingParen) token() {}
func (Keyword) token()      {}
func (Comment) token()      {}
func (Literal) token()      {}
func (Pattern) token()      {}
func (Filter) token()       {}
func (Quoted) token()       {}
