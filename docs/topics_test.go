package docs

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// fenced block kinds that take part in a scenario
const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	consoleCheck = "console check"
)

var listedTopic = regexp.MustCompile(`(?m)^\*\s+([^:]+):`)

// The readme lists exactly the topics there are, and each of them loads.
func TestTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatal(err)
	}
	var listed []string
	for _, m := range listedTopic.FindAllStringSubmatch(readme, -1) {
		listed = append(listed, strings.TrimSpace(m[1]))
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(all, listed, sortStrings); diff != "" {
		t.Errorf("readme topics mismatch (-files +listed):\n%s", diff)
	}
	if _, err := GetTopics(listed...); err != nil {
		t.Errorf("GetTopics(%v) error: %v", listed, err)
	}
}

var sortStrings = cmp.Transformer("sort", func(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
})

// TestCodeBlocks plays the shell scenarios of the manual and of the README
// against a freshly built ofxc.
func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	bin := t.TempDir()
	build := exec.Command("go", "build", "-o", filepath.Join(bin, "ofxc"), "../ofxc/")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("go build ofxc: %v\n%s", err, out)
	}
	// scenarios must not depend on the user's settings
	env := append(os.Environ(),
		"PATH="+bin+string(os.PathListSeparator)+os.Getenv("PATH"),
		"OFXC_CONFIG=", "OFXC_DUMP=", "OFXC_VERBOSE=",
	)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			s := scenario{env: env, dir: t.TempDir()}
			for _, b := range scenarioBlocks(t, file) {
				s.play(t, b)
			}
		})
	}
}

type block struct {
	kind string
	body string
	pos  string // file:line of the fence
}

// scenarioBlocks returns the fenced blocks of file that belong to a scenario.
func scenarioBlocks(t *testing.T, file string) []block {
	t.Helper()
	src, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}

	var blocks []block
	root := goldmark.DefaultParser().Parse(text.NewReader(src))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(src))
		switch kind {
		case bashSetup, bashRun, consoleCheck:
		default:
			return ast.WalkContinue, nil
		}
		var body strings.Builder
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			body.Write(seg.Value(src))
		}
		// goldmark keeps no line numbers
		line := bytes.Count(src[:fcb.Info.Segment.Start], []byte{'\n'}) + 1
		blocks = append(blocks, block{
			kind: kind,
			body: body.String(),
			pos:  file + ":" + strconv.Itoa(line),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// scenario is the state carried from one block to the next: the working
// directory, reset by every setup, and the output of the last run.
type scenario struct {
	env  []string
	dir  string
	last string
}

func (s *scenario) play(t *testing.T, b block) {
	t.Helper()
	if b.kind == consoleCheck {
		want := strings.TrimSpace(b.body)
		got := strings.TrimSpace(strings.ReplaceAll(s.last, "\t", "        "))
		if got != want {
			t.Errorf("%s: output mismatch (-want +got):\n%s", b.pos, cmp.Diff(want, got))
		}
		return
	}
	if b.kind == bashSetup {
		s.dir = t.TempDir()
	}

	cmd := exec.Command("bash", "-c", "set -e; "+b.body)
	cmd.Dir = s.dir
	cmd.Env = s.env
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%s: %s: %v\n%s", b.pos, b.kind, err, out)
	}
	if b.kind == bashRun {
		s.last = string(out)
	}
}
