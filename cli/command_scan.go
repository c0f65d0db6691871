package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/codesurf/querytext/decorate"
	"github.com/codesurf/querytext/scanner"
	"github.com/codesurf/querytext/token"
)

// ScanCmd represents the scan command
type ScanCmd struct {
	Query   string `arg:"" help:"Query string to scan"`
	Pattern string `help:"Pattern type: literal, regexp, or structural" short:"p"`
	JSON    bool   `help:"Emit tokens as JSON" short:"j"`
}

// Run executes the scan command
func (cmd *ScanCmd) Run(ctx *Context) error {
	config, err := ctx.LoadConfig()
	if err != nil {
		return err
	}
	kind, err := patternKind(cmd.Pattern, config)
	if err != nil {
		return err
	}
	tokens, err := scanner.Scan(cmd.Query, kind)
	if err != nil {
		return fmt.Errorf("failed to scan query: %w", err)
	}

	if cmd.JSON {
		return writeTokenJSON(cmd.Query, tokens)
	}

	typeColor := color.New(color.FgCyan).SprintFunc()
	if !config.ColorEnabled() {
		typeColor = fmt.Sprint
	}
	for _, t := range tokens {
		r := t.Range()
		fmt.Printf("%-14s [%d,%d) %q\n", typeColor(t.Type().String()), r.Start, r.End, r.Slice(cmd.Query))
	}
	return nil
}

type tokenJSON struct {
	Type  string `json:"type"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

func writeTokenJSON(query string, tokens []token.Token) error {
	out := make([]tokenJSON, len(tokens))
	for i, t := range tokens {
		r := t.Range()
		out[i] = tokenJSON{Type: t.Type().String(), Start: r.Start, End: r.End, Text: r.Slice(query)}
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// DecorateCmd represents the decorate command
type DecorateCmd struct {
	Query   string `arg:"" help:"Query string to decorate"`
	Pattern string `help:"Pattern type: literal, regexp, or structural" short:"p"`
}

// Run executes the decorate command
func (cmd *DecorateCmd) Run(ctx *Context) error {
	config, err := ctx.LoadConfig()
	if err != nil {
		return err
	}
	kind, err := patternKind(cmd.Pattern, config)
	if err != nil {
		return err
	}
	tokens, err := scanner.Scan(cmd.Query, kind)
	if err != nil {
		return fmt.Errorf("failed to scan query: %w", err)
	}

	kindColor := color.New(color.FgMagenta).SprintFunc()
	if !config.ColorEnabled() {
		kindColor = fmt.Sprint
	}
	for _, t := range tokens {
		for _, d := range decorate.Decorate(t) {
			r := d.Range()
			fmt.Printf("%-26s [%d,%d) %q\n", kindColor(decoratedName(d)), r.Start, r.End, r.Slice(cmd.Query))
		}
	}
	return nil
}

func decoratedName(d decorate.Decorated) string {
	switch m := d.(type) {
	case decorate.Plain:
		return m.Token.Type().String()
	case decorate.Pattern:
		return "pattern." + m.Kind.String()
	case decorate.MetaRegexp:
		return "regexp." + m.Kind.String()
	case decorate.MetaStructural:
		return "structural." + m.Kind.String()
	case decorate.MetaRevision:
		return "revision." + m.Kind.String()
	case decorate.MetaRepoRevisionSeparator:
		return "repoRevisionSeparator"
	case decorate.MetaSelector:
		return "selector." + m.Kind.String()
	default:
		return "unknown"
	}
}
