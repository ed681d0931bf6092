package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ofx"
	"github.com/etnz/ofx/renderer"
	"github.com/google/subcommands"
)

type profileCmd struct {
	signon signonFlags
	json   bool
	query  string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "read the profile of an institution" }
func (*profileCmd) Usage() string {
	return `ofxc profile -i <institution> [-json] [-q <jsonpath>]

  Reads the profile of the institution: its contact, the message sets it
  supports and its password rules. The profile is read anonymously.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	c.signon.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "print the profile as JSON")
	f.StringVar(&c.query, "q", "", "jsonpath query over the JSON output. Implies -json.")
}

func (c *profileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inst, err := c.signon.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := inst.ReadProfile(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading profile of %s: %v\n", inst.Data.ID, err)
		return subcommands.ExitFailure
	}

	if c.json || c.query != "" {
		return exportJSON(p, c.query)
	}
	printMarkdown(renderer.RenderProfile(renderer.NewProfile(p)))
	return subcommands.ExitSuccess
}

// exportJSON prints the JSON export of an aggregate, or the result of
// query q over it.
func exportJSON(v any, q string) subcommands.ExitStatus {
	data, err := ofx.ExportJSON(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printJSON(data, q); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
