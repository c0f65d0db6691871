package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/codesurf/querytext/hover"
	"github.com/codesurf/querytext/scanner"
	"github.com/codesurf/querytext/selector"
)

// HoverCmd represents the hover command
type HoverCmd struct {
	Query   string `arg:"" help:"Query string"`
	Column  int    `help:"1-based cursor column" short:"c" required:""`
	Pattern string `help:"Pattern type: literal, regexp, or structural" short:"p"`
	Plain   bool   `help:"Skip decoration and hover over raw tokens only"`
	HTML    bool   `help:"Render the markdown contents to HTML"`
}

// Run executes the hover command
func (cmd *HoverCmd) Run(ctx *Context) error {
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

	result := hover.Get(tokens, cmd.Column, !cmd.Plain)
	if result == nil {
		fmt.Println("no hover information at this column")
		return nil
	}

	fmt.Printf("highlight [%d,%d) %q\n", result.Range.Start, result.Range.End, result.Range.Slice(cmd.Query))
	markdown := strings.Join(result.Contents, "\n\n")
	if !cmd.HTML {
		fmt.Println(markdown)
		return nil
	}

	var html bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &html); err != nil {
		return fmt.Errorf("failed to render hover markdown: %w", err)
	}
	_, err = html.WriteTo(os.Stdout)
	return err
}

// CompleteCmd represents the complete command for select: values
type CompleteCmd struct {
	Value string `arg:"" optional:"" help:"Partially typed select: value"`
}

// Run executes the complete command
func (cmd *CompleteCmd) Run(ctx *Context) error {
	for _, value := range selector.Complete(cmd.Value) {
		fmt.Println(value)
	}
	return nil
}
