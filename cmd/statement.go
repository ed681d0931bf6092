package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ofx"
	"github.com/etnz/ofx/date"
	"github.com/etnz/ofx/renderer"
	"github.com/google/subcommands"
)

// statementCmd holds the flags for the 'statement' subcommand.
type statementCmd struct {
	signon      signonFlags
	kind        string
	account     string
	bankID      string
	accountType string
	brokerID    string
	period      string
	from        date.Date
	to          date.Date
	json        bool
	query       string
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "download the statement of an account" }
func (*statementCmd) Usage() string {
	return `ofxc statement -i <institution> -u <user> -a <account> [-kind bank|cc|inv] [-from <date>] [-to <date> | -p <period>]

  Downloads the transactions and balances of an account. Bank accounts also
  need their routing number (-bank) and type (-type). Investment statements
  include the positions and the cash balance.

  Dates are in the YYYY-MM-DD format. -p selects the last complete period
  (week, month, quarter, year) instead.

Usage Examples:
# Last month of a checking account.
$ ofxc statement -i chase -u jdoe -bank 021000021 -a 0001 -p month

# Everything since January on a brokerage account.
$ ofxc statement -i vanguard -u jdoe -kind inv -a 12345 -from 2024-01-01

`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	c.signon.SetFlags(f)
	f.StringVar(&c.kind, "kind", "bank", "kind of account: bank, cc (credit card) or inv (investment)")
	f.StringVar(&c.account, "a", "", "account id")
	f.StringVar(&c.bankID, "bank", "", "routing number of a bank account")
	f.StringVar(&c.accountType, "type", string(ofx.Checking), "type of a bank account (CHECKING, SAVINGS, MONEYMRKT, CREDITLINE, CD)")
	f.StringVar(&c.brokerID, "broker", "", "broker id of an investment account. Defaults to the institution's.")
	f.StringVar(&c.period, "p", "", "download the last complete period (week, month, quarter, year)")
	f.Var(&c.from, "from", "first day of the statement")
	f.Var(&c.to, "to", "last day of the statement")
	f.BoolVar(&c.json, "json", false, "print the statement as JSON")
	f.StringVar(&c.query, "q", "", "jsonpath query over the JSON output. Implies -json.")
}

// window returns the range of the statement.
func (c *statementCmd) window(today date.Date) (date.Range, error) {
	r := date.Range{From: c.from, To: c.to}
	if c.period != "" {
		p, err := date.ParsePeriod(c.period)
		if err != nil {
			return r, err
		}
		r = date.Previous(today, p)
	}
	return r, r.Validate()
}

func (c *statementCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: missing account id, use -a")
		return subcommands.ExitUsageError
	}
	r, err := c.window(date.Today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	inst, creds, err := c.signon.connect()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var (
		stmt any
		md   func() string
	)
	switch c.kind {
	case "bank":
		typ, ok := ofx.ParseAccountType(c.accountType)
		if !ok || c.bankID == "" {
			fmt.Fprintln(os.Stderr, "Error: a bank account needs -bank and a valid -type")
			return subcommands.ExitUsageError
		}
		account := ofx.BankAccount{BankID: c.bankID, AccountID: c.account, Type: typ}
		s, err := inst.BankStatement(ctx, creds, account, r.Start(), r.End())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error downloading statement: %v\n", err)
			return subcommands.ExitFailure
		}
		stmt, md = s, func() string { return renderer.RenderStatement(renderer.NewBankStatement(s)) }
	case "cc":
		account := ofx.CreditCardAccount{AccountID: c.account}
		s, err := inst.CreditCardStatement(ctx, creds, account, r.Start(), r.End())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error downloading statement: %v\n", err)
			return subcommands.ExitFailure
		}
		stmt, md = s, func() string { return renderer.RenderStatement(renderer.NewCreditCardStatement(s)) }
	case "inv":
		account := ofx.InvestmentAccount{BrokerID: c.brokerID, AccountID: c.account}
		s, list, err := inst.InvestmentStatement(ctx, creds, account, r.Start(), r.End())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error downloading statement: %v\n", err)
			return subcommands.ExitFailure
		}
		stmt, md = s, func() string { return renderer.RenderInvestment(renderer.NewInvestment(s, list)) }
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown kind of account %q\n", c.kind)
		return subcommands.ExitUsageError
	}

	if c.json || c.query != "" {
		return exportJSON(stmt, c.query)
	}
	printMarkdown(md())
	return subcommands.ExitSuccess
}
