package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ofx"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	version   string
	multiLine bool
	write     bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "formats OFX files, converting them between versions 1 and 2"
}
func (*fmtCmd) Usage() string {
	return `ofxc fmt [-to <version>] [-multiline] [-w] <file.ofx>...

  Reads OFX files and writes them back in a canonical form. Unknown
  elements are dropped. With -to the files are converted to another OFX
  version: 1 (SGML), 2 (XML), or a full version number such as 211.

Usage Examples:
# Converts a statement to XML, one tag per line.
$ ofxc fmt -to 2 -multiline statement.qfx > statement.xml

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.version, "to", "", "target OFX version. Keeps the version of each file by default.")
	f.BoolVar(&c.multiLine, "multiline", false, "put every tag on its own line")
	f.BoolVar(&c.write, "w", false, "write the result to the file instead of stdout")
}

// format returns the document data in version, or in its own version when
// version is zero.
func format(data []byte, version ofx.Version, multiLine bool) ([]byte, error) {
	d := ofx.NewDecoder(bytes.NewReader(data))
	v, err := d.DecodeAny()
	if err != nil {
		return nil, err
	}
	if version == 0 {
		version = d.Header().Version
	}
	var buf bytes.Buffer
	enc := ofx.NewEncoder(&buf, version)
	enc.MultiLine = multiLine
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no file to format")
		return subcommands.ExitUsageError
	}
	var version ofx.Version
	if c.version != "" {
		v, err := ofx.ParseVersion(c.version)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		version = v
	}

	status := subcommands.ExitSuccess
	for _, file := range f.Args() {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		out, err := format(data, version, c.multiLine)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %s: %v\n", file, err)
			status = subcommands.ExitFailure
			continue
		}
		if !c.write {
			os.Stdout.Write(out)
			continue
		}
		if err := os.WriteFile(file, out, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving %s: %v\n", file, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(os.Stderr, "Formatted %s.\n", file)
	}
	return status
}
