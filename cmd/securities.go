package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/ofx"
	"github.com/etnz/ofx/renderer"
	"github.com/google/subcommands"
)

type securitiesCmd struct {
	signon   signonFlags
	currency string
	json     bool
	query    string
}

func (*securitiesCmd) Name() string     { return "securities" }
func (*securitiesCmd) Synopsis() string { return "describe securities" }
func (*securitiesCmd) Usage() string {
	return `ofxc securities -i <institution> -u <user> [<type>:]<id>...

  Describes securities from their unique id. The type of id defaults to
  CUSIP.

Usage Examples:
$ ofxc securities -i vanguard -u jdoe 037833100 ISIN:US0378331005

`
}

func (c *securitiesCmd) SetFlags(f *flag.FlagSet) {
	c.signon.SetFlags(f)
	f.StringVar(&c.currency, "c", "USD", "currency of the unit prices")
	f.BoolVar(&c.json, "json", false, "print the security list as JSON")
	f.StringVar(&c.query, "q", "", "jsonpath query over the JSON output. Implies -json.")
}

// parseSecurityID parses "type:id", the type defaulting to CUSIP.
func parseSecurityID(s string) ofx.SecurityID {
	typ, id, ok := strings.Cut(s, ":")
	if !ok {
		return ofx.SecurityID{UniqueID: s, UniqueIDType: "CUSIP"}
	}
	return ofx.SecurityID{UniqueID: id, UniqueIDType: strings.ToUpper(typ)}
}

func (c *securitiesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no security to describe")
		return subcommands.ExitUsageError
	}
	if !ofx.IsCurrency(c.currency) {
		fmt.Fprintf(os.Stderr, "Error: unknown currency %q\n", c.currency)
		return subcommands.ExitUsageError
	}
	var ids []ofx.SecurityID
	for _, arg := range f.Args() {
		id := parseSecurityID(arg)
		if err := id.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		ids = append(ids, id)
	}

	inst, creds, err := c.signon.connect()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	list, err := inst.SecurityList(ctx, creds, ids...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading securities: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json || c.query != "" {
		return exportJSON(list, c.query)
	}
	printMarkdown(renderer.RenderSecurities(renderer.NewSecurities(list, c.currency)))
	return subcommands.ExitSuccess
}
