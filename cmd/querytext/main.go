package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/codesurf/querytext/cli"
)

var CLI struct {
	Config  string `help:"Configuration file path" default:"querytext.yaml"`
	Verbose bool   `help:"Enable verbose output" short:"v"`
	Quiet   bool   `help:"Suppress output" short:"q"`

	Scan      cli.ScanCmd      `cmd:"" help:"Scan a query into tokens"`
	Decorate  cli.DecorateCmd  `cmd:"" help:"Expand a query into decorated meta tokens"`
	Hover     cli.HoverCmd     `cmd:"" help:"Resolve hover information at a cursor column"`
	Complete  cli.CompleteCmd  `cmd:"" help:"Suggest select: filter values"`
	Rewrite   cli.RewriteCmd   `cmd:"" help:"Rewrite a query's filters"`
	Sanitize  cli.SanitizeCmd  `cmd:"" help:"Redact privacy-sensitive filter values"`
	Highlight cli.HighlightCmd `cmd:"" help:"Print a query with syntax colors"`
	Version   VersionCmd       `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Println("querytext v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	appCtx := &cli.Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
