package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/ofx"
	"github.com/etnz/ofx/renderer"
	"github.com/google/subcommands"
)

type parseCmd struct {
	json     bool
	query    string
	validate string
}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "read an OFX file" }
func (*parseCmd) Usage() string {
	return `ofxc parse [-json] [-q <jsonpath>] [-validate <request.ofx>] <file.ofx>

  Reads an OFX file, version 1 (SGML) or 2 (XML), and prints the reports it
  carries. With -validate, the file is a response checked against the given
  request: same uid, every transaction answered, only successful statuses.

Usage Examples:
# Print the transactions of a downloaded statement.
$ ofxc parse statement.qfx

# Print the amounts of the transactions only.
$ ofxc parse -q '$.OFX.BANKMSGSRSV1.STMTTRNRS[*].STMTRS.BANKTRANLIST.STMTTRN[*].TRNAMT' statement.qfx

`
}

func (c *parseCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the document as JSON")
	f.StringVar(&c.query, "q", "", "jsonpath query over the JSON output. Implies -json.")
	f.StringVar(&c.validate, "validate", "", "request the file answers")
}

// readFile decodes the OFX document in file.
func readFile(file string) (any, ofx.Header, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, ofx.Header{}, err
	}
	d := ofx.NewDecoder(bytes.NewReader(data))
	v, err := d.DecodeAny()
	if err != nil {
		return nil, ofx.Header{}, fmt.Errorf("cannot read %s: %w", file, err)
	}
	return v, d.Header(), nil
}

// validateFile checks that resp answers the request in file. Statuses of
// severity INFO are reported, not fatal.
func validateFile(file string, resp *ofx.ResponseEnvelope) error {
	v, _, err := readFile(file)
	if err != nil {
		return err
	}
	req, ok := v.(*ofx.RequestEnvelope)
	if !ok {
		return fmt.Errorf("%s is not a request", file)
	}
	validator := ofx.Validator{
		TolerateInfo: true,
		OnStatus: func(s *ofx.StatusError) {
			fmt.Fprintf(os.Stderr, "Note: %v\n", s)
		},
	}
	return validator.Validate(req, resp)
}

func (c *parseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting a single OFX file")
		return subcommands.ExitUsageError
	}
	file := f.Arg(0)
	v, h, err := readFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if *Verbose {
		log.Printf("%s: OFX version %v, charset %s", file, h.Version, h.Charset)
	}

	resp, isResponse := v.(*ofx.ResponseEnvelope)
	if c.validate != "" {
		if !isResponse {
			fmt.Fprintf(os.Stderr, "Error: %s is not a response\n", file)
			return subcommands.ExitUsageError
		}
		if err := validateFile(c.validate, resp); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s does not answer %s: %v\n", file, c.validate, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "✅ %s answers %s.\n", file, c.validate)
	}

	if c.json || c.query != "" || !isResponse {
		return exportJSON(v, c.query)
	}
	printMarkdown(renderer.Response(resp))
	return subcommands.ExitSuccess
}
