package querytext

import "strings"

// FilterDefinition describes a known query filter field.
type FilterDefinition struct {
	// Description explains the filter for hover tooltips.
	Description string
	// NegatedDescription explains the negated form; empty when the filter is
	// not negatable.
	NegatedDescription string
	// Alias is a short alternative spelling, or empty.
	Alias string
}

// Negatable reports whether the filter supports the '-' prefix.
func (d FilterDefinition) Negatable() bool {
	return d.NegatedDescription != ""
}

// Describe returns the hover description for the filter, honoring negation.
func (d FilterDefinition) Describe(negated bool) string {
	if negated && d.NegatedDescription != "" {
		return d.NegatedDescription
	}
	return d.Description
}

// filterDefinitions is the static registry of known filter fields, keyed by
// canonical lowercase name.
var filterDefinitions = map[string]FilterDefinition{
	"after": {
		Description: "Include only results from after the specified time, such as \"1 week ago\" or \"2006-01-02\".",
	},
	"archived": {
		Description: "Include results from archived repositories.",
	},
	"author": {
		Description:        "Include only results from diffs or commits authored by the given user.",
		NegatedDescription: "Exclude results from diffs or commits authored by the given user.",
	},
	"before": {
		Description: "Include only results from before the specified time, such as \"1 week ago\" or \"2006-01-02\".",
	},
	"case": {
		Description: "Treat the search pattern as case-sensitive.",
	},
	"committer": {
		Description:        "Include only results from diffs or commits committed by the given user.",
		NegatedDescription: "Exclude results from diffs or commits committed by the given user.",
	},
	"content": {
		Description:        "Explicitly override the search pattern.",
		NegatedDescription: "Exclude results containing the given pattern.",
	},
	"context": {
		Description: "Search only the repositories within the given search context.",
	},
	"count": {
		Description: "Number of results to fetch. \"all\" fetches every result.",
	},
	"file": {
		Description:        "Include only results from files whose full path matches the given pattern.",
		NegatedDescription: "Exclude results from files whose full path matches the given pattern.",
		Alias:              "f",
	},
	"fork": {
		Description: "Include results from forked repositories.",
	},
	"index": {
		Description: "Include results from indexed, unindexed, or both kinds of branches.",
	},
	"lang": {
		Description:        "Include only results from files in the given language.",
		NegatedDescription: "Exclude results from files in the given language.",
		Alias:              "l",
	},
	"message": {
		Description:        "Include only results from commits whose message matches the given pattern.",
		NegatedDescription: "Exclude results from commits whose message matches the given pattern.",
		Alias:              "msg",
	},
	"patterntype": {
		Description: "The pattern type (literal, regexp, or structural) of the search pattern.",
	},
	"repo": {
		Description:        "Include only results from repositories whose path matches the given pattern.",
		NegatedDescription: "Exclude results from repositories whose path matches the given pattern.",
		Alias:              "r",
	},
	"repohascommitafter": {
		Description: "Filter out stale repositories without commits after the given time.",
	},
	"repohasfile": {
		Description:        "Include only results from repositories containing a file path matching the given pattern.",
		NegatedDescription: "Exclude results from repositories containing a file path matching the given pattern.",
	},
	"rev": {
		Description: "Search a revision (branch, commit hash, or tag) instead of the default branch.",
		Alias:       "revision",
	},
	"select": {
		Description: "Show only query results of the given kind, such as \"repo\" or \"symbol.function\".",
	},
	"timeout": {
		Description: "Duration before the search times out, such as \"30s\" or \"1m\".",
	},
	"type": {
		Description: "Limit results to the given type, such as \"diff\", \"commit\", \"symbol\" or \"path\".",
	},
	"visibility": {
		Description: "Include only results from repositories with the given visibility (public, private, or any).",
	},
}

// filterAliases maps alias spellings back to canonical names. Built once at
// init from the registry.
var filterAliases = func() map[string]string {
	aliases := make(map[string]string)
	for name, def := range filterDefinitions {
		if def.Alias != "" {
			aliases[def.Alias] = name
		}
	}
	return aliases
}()

// RedactedFilters lists the privacy-sensitive filter fields whose values are
// replaced before a query may leave the process as telemetry.
var RedactedFilters = []string{"repo", "file", "rev", "repohasfile", "context", "message"}

// LookupFilter resolves a filter field name or alias, case-insensitively, to
// its definition.
func LookupFilter(field string) (FilterDefinition, bool) {
	name := CanonicalFilterName(field)
	def, ok := filterDefinitions[name]
	return def, ok
}

// CanonicalFilterName lowercases field and resolves aliases to the canonical
// filter name. Unknown fields are returned lowercased as-is.
func CanonicalFilterName(field string) string {
	name := strings.ToLower(field)
	if canonical, ok := filterAliases[name]; ok {
		return canonical
	}
	return name
}

// FilterAlias returns the alias of a canonical filter name, if it has one.
func FilterAlias(field string) (string, bool) {
	def, ok := filterDefinitions[strings.ToLower(field)]
	if !ok || def.Alias == "" {
		return "", false
	}
	return def.Alias, true
}
