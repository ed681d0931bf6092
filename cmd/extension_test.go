package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	script := "#!/bin/sh\necho \"$1 $" + EnvDump + " $" + EnvVerbose + "\" > \"$2\"\nexit 3\n"
	if err := os.WriteFile(filepath.Join(dir, "ofxc-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	old := *dumpDir
	*dumpDir = "/tmp/dumps"
	defer func() { *dumpDir = old }()

	found, code := RunExtension("hello", []string{"world", out})
	if !found || code != 3 {
		t.Fatalf("RunExtension() = %v, %d, want true, 3", found, code)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if want := "world /tmp/dumps false"; strings.TrimSpace(string(got)) != want {
		t.Errorf("extension saw %q, want %q", got, want)
	}

	if found, _ := RunExtension("nope-nothing-here", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}
