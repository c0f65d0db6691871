// Package hover resolves the token under an editor cursor into markdown
// contents and a highlight range.
package hover

import (
	"github.com/codesurf/querytext/decorate"
	"github.com/codesurf/querytext/token"
)

// Result is hover information for an editor widget: markdown strings to
// render and the range to highlight.
type Result struct {
	Contents []string
	Range    token.CharacterRange
}

// Get resolves hover information at a 1-based column. With smart set, every
// token is first expanded into decorated tokens so that regexp constructs,
// structural holes, revisions, and selectors each describe themselves. All
// matching descriptions are aggregated; the last matching token's range is
// the highlight range. Returns nil when nothing under the cursor has a
// description.
func Get(tokens []token.Token, column int, smart bool) *Result {
	var items []decorate.Decorated
	if smart {
		for _, t := range tokens {
			items = append(items, decorate.Decorate(t)...)
		}
	} else {
		for _, t := range tokens {
			items = append(items, decorate.Plain{Token: t})
		}
	}

	var contents []string
	var highlight token.CharacterRange
	for _, item := range items {
		if !item.Range().Contains(column) {
			continue
		}
		description, r, ok := describe(item)
		if !ok {
			continue
		}
		contents = append(contents, description)
		highlight = r
	}
	if len(contents) == 0 {
		return nil
	}
	return &Result{Contents: contents, Range: highlight}
}
