// Package selector defines the taxonomy of select: filter values and the
// completion over it.
package selector

import "strings"

// Access is one node of the selector tree: a path segment name and its
// permitted sub-segments.
type Access struct {
	Name   string
	Fields []Access
}

// Selectors is the taxonomy of permitted select: paths. It is defined once
// and read-only at runtime.
var Selectors = []Access{
	{Name: "repo"},
	{Name: "file"},
	{Name: "content"},
	{Name: "symbol", Fields: []Access{
		{Name: "module"},
		{Name: "namespace"},
		{Name: "package"},
		{Name: "class"},
		{Name: "method"},
		{Name: "property"},
		{Name: "field"},
		{Name: "constructor"},
		{Name: "enum"},
		{Name: "interface"},
		{Name: "function"},
		{Name: "variable"},
		{Name: "constant"},
		{Name: "string"},
		{Name: "number"},
		{Name: "boolean"},
		{Name: "array"},
		{Name: "object"},
		{Name: "key"},
		{Name: "null"},
		{Name: "enum-member"},
		{Name: "struct"},
		{Name: "event"},
		{Name: "operator"},
		{Name: "type-parameter"},
	}},
	{Name: "commit"},
}

// DiscreteValues emits every dotted path name reachable within depth levels
// of the selector tree, in declaration order. A negative depth yields
// nothing; depth 0 yields only the root names.
func DiscreteValues(selectors []Access, depth int) []string {
	if depth < 0 {
		return nil
	}
	var values []string
	for _, access := range selectors {
		values = append(values, access.Name)
		if depth > 0 {
			for _, child := range DiscreteValues(access.Fields, depth-1) {
				values = append(values, access.Name+"."+child)
			}
		}
	}
	return values
}

// Complete suggests select: values for a partially typed path. An empty
// value yields the root names; a value that descends into a root kind (ends
// in '.' or has multiple segments) yields that root's children only.
func Complete(value string) []string {
	if value == "" {
		return DiscreteValues(Selectors, 0)
	}
	root, rest, descended := strings.Cut(value, ".")
	if !descended && rest == "" {
		return DiscreteValues(Selectors, 0)
	}
	for _, access := range Selectors {
		if access.Name != root {
			continue
		}
		var values []string
		for _, child := range DiscreteValues(access.Fields, 0) {
			values = append(values, access.Name+"."+child)
		}
		return values
	}
	return DiscreteValues(Selectors, 0)
}

// Valid reports whether a dotted path names a node of the selector tree.
func Valid(path string) bool {
	selectors := Selectors
	for _, segment := range strings.Split(path, ".") {
		found := false
		for _, access := range selectors {
			if access.Name == segment {
				selectors = access.Fields
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
