package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/codesurf/querytext/decorate"
	"github.com/codesurf/querytext/scanner"
	"github.com/codesurf/querytext/token"
)

// HighlightCmd represents the highlight command
type HighlightCmd struct {
	Query   string `arg:"" help:"Query string to highlight"`
	Pattern string `help:"Pattern type: literal, regexp, or structural" short:"p"`
}

// Run executes the highlight command. It re-emits the query with each
// decorated span colored by kind; spans not covered by a decoration (the
// inner text of filter tokens) keep the filter color.
func (cmd *HighlightCmd) Run(ctx *Context) error {
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
	if !config.ColorEnabled() {
		fmt.Println(cmd.Query)
		return nil
	}

	for _, t := range tokens {
		if f, ok := t.(token.Filter); ok {
			cmd.printFilter(f)
			continue
		}
		for _, d := range decorate.Decorate(t) {
			styleOf(d).Print(d.Range().Slice(cmd.Query))
		}
	}
	fmt.Println()
	return nil
}

func (cmd *HighlightCmd) printFilter(f token.Filter) {
	fieldStyle := color.New(color.FgBlue, color.Bold)
	prefix := token.CharacterRange{Start: f.Range().Start, End: f.Field.Range().End + 1}
	fieldStyle.Print(prefix.Slice(cmd.Query))
	if f.Value == nil {
		return
	}
	if _, quoted := f.Value.(token.Quoted); quoted {
		color.New(color.FgGreen).Print(f.Value.Range().Slice(cmd.Query))
		return
	}
	// Literal values may decorate further (revisions, selector paths).
	value := f.Value.(token.Literal)
	for _, d := range decorate.Decorate(token.Pattern{
		CharacterRange: value.CharacterRange,
		Kind:           token.PatternLiteral,
		Value:          value.Value,
	}) {
		styleOf(d).Print(d.Range().Slice(cmd.Query))
	}
}

func styleOf(d decorate.Decorated) *color.Color {
	switch m := d.(type) {
	case decorate.Plain:
		switch m.Token.(type) {
		case token.Keyword:
			return color.New(color.FgRed, color.Bold)
		case token.Comment:
			return color.New(color.FgHiBlack)
		case token.Quoted:
			return color.New(color.FgGreen)
		case token.OpeningParen, token.ClosingParen:
			return color.New(color.FgYellow)
		default:
			return color.New(color.Reset)
		}
	case decorate.MetaRegexp:
		return color.New(color.FgMagenta)
	case decorate.MetaStructural:
		return color.New(color.FgCyan)
	case decorate.MetaRevision, decorate.MetaRepoRevisionSeparator:
		return color.New(color.FgYellow)
	case decorate.MetaSelector:
		return color.New(color.FgBlue)
	default:
		return color.New(color.Reset)
	}
}
