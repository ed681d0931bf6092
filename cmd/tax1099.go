package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/ofx/renderer"
	"github.com/google/subcommands"
)

type tax1099Cmd struct {
	signon signonFlags
	year   int
	json   bool
	query  string
}

func (*tax1099Cmd) Name() string     { return "tax1099" }
func (*tax1099Cmd) Synopsis() string { return "download 1099 tax forms" }
func (*tax1099Cmd) Usage() string {
	return `ofxc tax1099 -i <institution> -u <user> [-y <year>]

  Downloads the 1099-DIV and 1099-INT forms of a tax year, last year by
  default.
`
}

func (c *tax1099Cmd) SetFlags(f *flag.FlagSet) {
	c.signon.SetFlags(f)
	f.IntVar(&c.year, "y", time.Now().Year()-1, "tax year")
	f.BoolVar(&c.json, "json", false, "print the forms as JSON")
	f.StringVar(&c.query, "q", "", "jsonpath query over the JSON output. Implies -json.")
}

func (c *tax1099Cmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inst, creds, err := c.signon.connect()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	forms, err := inst.Tax1099(ctx, creds, c.year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error downloading tax forms: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json || c.query != "" {
		return exportJSON(forms, c.query)
	}
	printMarkdown(renderer.RenderTax1099(renderer.NewTax1099(forms)))
	return subcommands.ExitSuccess
}
