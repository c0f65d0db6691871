package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/codesurf/querytext"
	"github.com/codesurf/querytext/scanner"
	"github.com/codesurf/querytext/telemetry"
	"github.com/codesurf/querytext/token"
	"github.com/codesurf/querytext/transform"
)

var (
	ErrMalformedUpdate = errors.New("update must have the form field=value")
	ErrFilterNotFound  = errors.New("filter not found in query")
)

// RewriteCmd represents the rewrite command
type RewriteCmd struct {
	Query   string   `arg:"" help:"Query string to rewrite"`
	Update  []string `help:"Replace a filter value (field=value); first occurrence only" short:"u"`
	All     bool     `help:"Apply updates to every occurrence" short:"a"`
	Omit    []string `help:"Remove the first filter with the given field" short:"o"`
	Context string   `help:"Prepend a context filter unless one exists"`
	Append  []string `help:"Append a filter (field=value)"`
	Group   bool     `help:"Parenthesize the query under its global context filter" short:"g"`
}

// Run executes the rewrite command
func (cmd *RewriteCmd) Run(ctx *Context) error {
	config, err := ctx.LoadConfig()
	if err != nil {
		return err
	}

	query := cmd.Query
	spec := cmd.Context
	if spec == "" && config.DefaultContext != "" {
		spec = config.DefaultContext
	}
	if spec != "" {
		query = transform.AppendContextFilter(query, spec)
	}

	for _, update := range cmd.Update {
		field, value, ok := strings.Cut(update, "=")
		if !ok {
			return fmt.Errorf("%w: %q", ErrMalformedUpdate, update)
		}
		if cmd.All {
			query, err = transform.UpdateFilters(query, field, value)
		} else {
			query, err = transform.UpdateFilter(query, field, value)
		}
		if err != nil {
			return err
		}
	}

	for _, field := range cmd.Omit {
		query, err = omitField(query, field)
		if err != nil {
			return err
		}
	}

	for _, pair := range cmd.Append {
		field, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("%w: %q", ErrMalformedUpdate, pair)
		}
		query = transform.AppendFilter(query, field, value)
	}

	if cmd.Group {
		query = transform.ParenthesizeQueryWithGlobalContext(query)
	}

	fmt.Println(query)
	return nil
}

// omitField removes the first filter matching field from the query.
func omitField(query, field string) (string, error) {
	tokens, err := scanner.Scan(query, token.PatternLiteral)
	if err != nil {
		return "", fmt.Errorf("%w: %w", querytext.ErrInvalidQuery, err)
	}
	name := querytext.CanonicalFilterName(field)
	for _, t := range tokens {
		if f, ok := t.(token.Filter); ok && querytext.CanonicalFilterName(f.Field.Value) == name {
			return transform.OmitFilter(query, f), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrFilterNotFound, field)
}

// SanitizeCmd represents the sanitize command
type SanitizeCmd struct {
	Query string `arg:"" help:"Query string to sanitize"`
	Event bool   `help:"Emit a full telemetry event as JSON" short:"e"`
}

// Run executes the sanitize command
func (cmd *SanitizeCmd) Run(ctx *Context) error {
	config, err := ctx.LoadConfig()
	if err != nil {
		return err
	}

	if cmd.Event {
		event := telemetry.NewSearchEvent(cmd.Query)
		if len(config.Redact) > 0 {
			event.Query = transform.RedactFilters(event.Query, config.Redact)
		}
		payload, err := event.JSON()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(payload, '\n'))
		return err
	}

	sanitized := transform.SanitizeQueryForTelemetry(cmd.Query)
	if len(config.Redact) > 0 {
		sanitized = transform.RedactFilters(sanitized, config.Redact)
	}
	fmt.Println(sanitized)
	return nil
}
