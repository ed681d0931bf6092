package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/ofx/renderer"
	"github.com/goccy/go-json"
	"github.com/google/subcommands"
)

type institutionsCmd struct {
	json  bool
	query string
}

func (*institutionsCmd) Name() string     { return "institutions" }
func (*institutionsCmd) Synopsis() string { return "list or search the known institutions" }
func (*institutionsCmd) Usage() string {
	return `ofxc institutions [-json] [-q <jsonpath>] [<search>...]

  Lists the institutions of the directory, or the ones whose id or name
  contains one of the search terms.

Usage Examples:
# Find the institution id of a broker.
$ ofxc institutions vanguard

# Print the URL of the OFX server of an institution.
$ ofxc institutions -q '$[0].url' schwab

`
}

func (c *institutionsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the institutions as JSON")
	f.StringVar(&c.query, "q", "", "jsonpath query over the JSON output. Implies -json.")
}

func (c *institutionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dir, err := Directory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading institutions: %v\n", err)
		return subcommands.ExitFailure
	}

	list := dir.Institutions
	if f.NArg() > 0 {
		list = nil
		seen := make(map[string]bool)
		for _, term := range f.Args() {
			for _, inst := range dir.Search(term) {
				if id := strings.ToLower(inst.ID); !seen[id] {
					seen[id] = true
					list = append(list, inst)
				}
			}
		}
	}

	if c.json || c.query != "" {
		data, err := json.Marshal(list)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding institutions: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := printJSON(data, c.query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderInstitutions(renderer.NewInstitutions(list)))
	return subcommands.ExitSuccess
}
