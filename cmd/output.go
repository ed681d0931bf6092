package cmd

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
	"github.com/goccy/go-json"
)

// printMarkdown prints md to stdout, rendered for the terminal unless -raw
// is set.
func printMarkdown(md string) {
	if *raw {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		log.Printf("cannot create markdown renderer: %v", err)
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// query evaluates the jsonpath expression q over the JSON document data and
// returns the result indented. An empty q returns the whole document.
func query(data []byte, q string) ([]byte, error) {
	if q == "" {
		var b bytes.Buffer
		if err := json.Indent(&b, data, "", "  "); err != nil {
			return nil, err
		}
		b.WriteByte('\n')
		return b.Bytes(), nil
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	v, err := jsonpath.Get(q, doc)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", q, err)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// printJSON prints the result of the query q over data.
func printJSON(data []byte, q string) error {
	out, err := query(data, q)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
