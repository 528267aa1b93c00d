package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/faizmokh/kamus/internal/files"
)

const sampleDictionary = `[
  {"content":"### a\nfirst","day_index":1},
  {"content":"### d","day_index":2},
  {"content":"### b"},
  {"content":"### f","day_index":5},
  {"content":"### e","day_index":2,"responses":"ignored"},
  {"content":"### c","day_index":1}
]`

func TestRootCommandHonoursFileFlag(t *testing.T) {
	mgr := newTempManager(t)
	path := writeDictionary(t, sampleDictionary)

	out := executeCommand(t, NewRootCommand(context.Background(), mgr),
		"show", "--file", path, "--format", "html", "--day", "5")
	assertContains(t, out, "Day 5 · Word 1 of 1")
}

func TestRootCommandReadsConfigFile(t *testing.T) {
	mgr := newTempManager(t)
	path := writeDictionary(t, sampleDictionary)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	config := "dictionary:\n  path: " + path + "\nui:\n  renderer: html\n"
	if err := os.WriteFile(configPath, []byte(config), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out := executeCommand(t, NewRootCommand(context.Background(), mgr),
		"--config", configPath, "jump", "2")
	assertContains(t, out, "<h3>d</h3>")
}

func TestRootCommandRejectsMissingConfig(t *testing.T) {
	mgr := newTempManager(t)

	cmd := NewRootCommand(context.Background(), mgr)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "days"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("Execute succeeded with missing --config file")
	}
}

func TestVersionCommand(t *testing.T) {
	out := executeCommand(t, newVersionCommand())
	assertContains(t, out, "kamus dev")
}

func newTempManager(t *testing.T) *files.Manager {
	t.Helper()
	for _, name := range []string{"KAMUS_CONFIG", "KAMUS_FILE", "KAMUS_RENDERER", "KAMUS_WIDTH", "KAMUS_LOG_FILE"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	base := t.TempDir()
	mgr, err := files.NewManager(base)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr
}

func newTestEnvironment(t *testing.T) *environment {
	t.Helper()
	env := newEnvironment(newTempManager(t))
	env.dictPath = writeDictionary(t, sampleDictionary)
	return env
}

func writeDictionary(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dict.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}
