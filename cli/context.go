// Package cli implements the querytext debug commands.
package cli

import (
	"fmt"

	"github.com/codesurf/querytext"
	"github.com/codesurf/querytext/token"
)

// Context represents the global options shared by all commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

// LoadConfig loads configuration from the context's config path
func (ctx *Context) LoadConfig() (*querytext.Config, error) {
	return querytext.LoadConfig(ctx.Config)
}

// patternKind resolves the pattern kind for a command: the explicit flag
// wins, then the config, then literal.
func patternKind(flag string, config *querytext.Config) (token.PatternKind, error) {
	name := flag
	if name == "" && config != nil {
		name = config.PatternType
	}
	switch name {
	case "", "literal":
		return token.PatternLiteral, nil
	case "regexp":
		return token.PatternRegexp, nil
	case "structural":
		return token.PatternStructural, nil
	default:
		return 0, fmt.Errorf("unsupported pattern type %q", name)
	}
}
