// Package transform rewrites query strings: appending, updating, and
// omitting filters, redacting privacy-sensitive values, and grouping
// sub-expressions under a global context. Every function is a pure
// string-to-string computation.
package transform

import (
	"fmt"
	"strings"

	"github.com/codesurf/querytext"
	"github.com/codesurf/querytext/expr"
	"github.com/codesurf/querytext/scanner"
	"github.com/codesurf/querytext/token"
)

// AppendContextFilter prepends "context:spec " to the query unless the query
// already carries a context filter or spec is empty. The no-op cases return
// the query unchanged without allocating.
func AppendContextFilter(query, spec string) string {
	if spec == "" {
		return query
	}
	tokens, err := scanner.Scan(query, token.PatternLiteral)
	if err != nil || len(expr.ContextFilters(tokens)) > 0 {
		return query
	}
	return "context:" + spec + " " + query
}

// OmitFilter removes the filter's character range from the query, keeping a
// single separating space between the remaining halves.
func OmitFilter(query string, filter token.Filter) string {
	left := query[:filter.Range().Start]
	right := strings.TrimLeft(query[filter.Range().End:], " ")
	if left == "" {
		return right
	}
	if right != "" {
		left = strings.TrimRight(left, " ") + " "
	}
	return left + right
}

// UpdateFilter replaces the value of the first filter matching field,
// preserving its position, or appends field:value when the query has none.
// The query must be syntactically valid; a scan failure reports
// querytext.ErrInvalidQuery, signaling that the caller skipped validation.
func UpdateFilter(query, field, value string) (string, error) {
	updated, err := updateOccurrences(query, field, value, false, true)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(updated), nil
}

// UpdateFilters replaces the value of every filter matching field, or
// appends field:value when the query has none.
func UpdateFilters(query, field, value string) (string, error) {
	updated, err := updateOccurrences(query, field, value, true, true)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(updated), nil
}

// AppendFilter unconditionally appends field:value to the query.
func AppendFilter(query, field, value string) string {
	if query == "" {
		return field + ":" + value
	}
	return query + " " + field + ":" + value
}

// updateOccurrences rewrites the values of filters matching field. Matching
// is canonical: aliases and negated spellings of the same field all match.
// Occurrences are edited in reverse document order so earlier ranges stay
// valid across sequential edits.
func updateOccurrences(query, field, value string, all, appendWhenMissing bool) (string, error) {
	tokens, err := scanner.Scan(query, token.PatternLiteral)
	if err != nil {
		return "", fmt.Errorf("%w: %w", querytext.ErrInvalidQuery, err)
	}

	name := querytext.CanonicalFilterName(field)
	var matches []token.Filter
	for _, t := range tokens {
		if f, ok := t.(token.Filter); ok && querytext.CanonicalFilterName(f.Field.Value) == name {
			matches = append(matches, f)
		}
	}

	if len(matches) == 0 {
		if !appendWhenMissing {
			return query, nil
		}
		return AppendFilter(query, field, value), nil
	}
	if !all {
		matches = matches[:1]
	}
	for i := len(matches) - 1; i >= 0; i-- {
		query = replaceValue(query, matches[i], value)
	}
	return query, nil
}

// replaceValue substitutes a filter's value in place, leaving the field
// spelling, negation, and everything else byte-identical.
func replaceValue(query string, filter token.Filter, value string) string {
	if filter.Value != nil {
		r := filter.Value.Range()
		return query[:r.Start] + value + query[r.End:]
	}
	end := filter.Range().End
	return query[:end] + value + query[end:]
}

// Redacted is the replacement value for privacy-sensitive filters.
const Redacted = "[REDACTED]"

// RedactFilters replaces the values of the given filter fields (matching
// their negated and aliased spellings too) with [REDACTED]. Every other
// token of the query is left byte-identical. A query that does not scan is
// redacted wholesale rather than risking a leak.
func RedactFilters(query string, fields []string) string {
	sanitized := query
	for _, field := range fields {
		updated, err := updateOccurrences(sanitized, field, Redacted, true, false)
		if err != nil {
			return Redacted
		}
		sanitized = updated
	}
	return sanitized
}

// SanitizeQueryForTelemetry redacts the built-in privacy-sensitive filter
// set before a query may leave the process as telemetry.
func SanitizeQueryForTelemetry(query string) string {
	return RedactFilters(query, querytext.RedactedFilters)
}

// ParenthesizeQueryWithGlobalContext wraps the operator-bearing part of a
// query in parentheses, keeping the single global context filter outside the
// group: "context:ctx a or b" becomes "context:ctx (a or b)". Queries with
// no boolean operator, or whose context filters live inside sub-expressions,
// are returned unchanged.
func ParenthesizeQueryWithGlobalContext(query string) string {
	tokens, err := scanner.Scan(query, token.PatternLiteral)
	if err != nil || !expr.ContainsOperator(tokens) {
		return query
	}
	contexts := expr.ContextFilters(tokens)
	if len(contexts) > 1 {
		return query
	}
	if len(contexts) == 0 {
		return "(" + strings.TrimSpace(query) + ")"
	}
	global, ok := expr.GlobalContext(tokens)
	if !ok {
		return query
	}
	remainder := strings.TrimSpace(OmitFilter(query, global))
	if remainder == "" {
		return query
	}
	return global.Range().Slice(query) + " (" + remainder + ")"
}
