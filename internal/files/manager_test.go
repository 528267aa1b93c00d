package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigPath(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	want := filepath.Join(tmp, "config.yaml")
	if got := mgr.ConfigPath(); got != want {
		t.Fatalf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestResolveExpandsTildeAndRelativePaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	mgr, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	got, err := mgr.Resolve("~/words.json")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(home, "words.json"); got != want {
		t.Fatalf("Resolve(~/words.json) = %q, want %q", got, want)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	got, err = mgr.Resolve("words.json")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(wd, "words.json"); got != want {
		t.Fatalf("Resolve(words.json) = %q, want %q", got, want)
	}
}

func TestOpenLogCreatesDirectories(t *testing.T) {
	tmp := t.TempDir()

	mgr, err := NewManager(tmp)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	file, err := mgr.OpenLog(filepath.Join("logs", "kamus.log"))
	if err != nil {
		t.Fatalf("OpenLog: %v", err)
	}
	if _, err := file.WriteString("first\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	file.Close()

	// A second open must append rather than truncate.
	file, err = mgr.OpenLog(filepath.Join("logs", "kamus.log"))
	if err != nil {
		t.Fatalf("OpenLog second call: %v", err)
	}
	if _, err := file.WriteString("second\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	file.Close()

	contents, err := os.ReadFile(filepath.Join(tmp, "logs", "kamus.log"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(contents) != "first\nsecond\n" {
		t.Fatalf("log contents = %q, want both lines", contents)
	}
}
