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

type accountsCmd struct {
	signon signonFlags
	json   bool
	query  string
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the accounts of a user" }
func (*accountsCmd) Usage() string {
	return `ofxc accounts -i <institution> -u <user> [-json] [-q <jsonpath>]

  Lists the accounts the user holds at the institution. The password is read
  from the OFXC_PASSWORD environment variable.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	c.signon.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "print the accounts as JSON")
	f.StringVar(&c.query, "q", "", "jsonpath query over the JSON output. Implies -json.")
}

func (c *accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inst, creds, err := c.signon.connect()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	accounts, err := inst.ReadAccountProfiles(ctx, creds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading accounts: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json || c.query != "" {
		return exportJSON(&ofx.AccountInfoResponse{Accounts: accounts}, c.query)
	}
	printMarkdown(renderer.RenderAccounts(renderer.NewAccounts(accounts)))
	return subcommands.ExitSuccess
}
