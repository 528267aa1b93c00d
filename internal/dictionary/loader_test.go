package dictionary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDictionary(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "dict.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoaderLoadReturnsSortedTable(t *testing.T) {
	path := writeDictionary(t, t.TempDir(), `[{"content":"x","day_index":2},{"content":"y"},{"content":"z","day_index":2}]`)

	table, err := NewLoader(nil).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}
	if got := table.At(0); got.Content != "y" || got.Day != 1 {
		t.Fatalf("At(0) = %+v, want y on day 1", got)
	}
}

func TestLoaderLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	table, err := NewLoader(nil).Load(context.Background(), path)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load error = %v, want ErrNotFound", err)
	}
	if table != nil {
		t.Fatalf("Load returned table %v, want nil", table)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error %q does not name the path", err)
	}
}

func TestLoaderLoadMalformedFile(t *testing.T) {
	path := writeDictionary(t, t.TempDir(), `{"broken":`)

	_, err := NewLoader(nil).Load(context.Background(), path)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Load error = %v, want ErrMalformed", err)
	}
}

func TestLoaderLoadIsMemoized(t *testing.T) {
	path := writeDictionary(t, t.TempDir(), `[{"content":"only"}]`)
	loader := NewLoader(nil)

	first, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}

	// The cached table must be served without touching the file again.
	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	second, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if first != second {
		t.Fatalf("second Load returned a different table")
	}
}

func TestLoaderDoesNotCacheFailures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.json")
	loader := NewLoader(nil)

	if _, err := loader.Load(context.Background(), path); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load error = %v, want ErrNotFound", err)
	}

	writeDictionary(t, dir, `[{"content":"late"}]`)
	table, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load after create: %v", err)
	}
	if table.At(0).Content != "late" {
		t.Fatalf("At(0).Content = %q, want late", table.At(0).Content)
	}
}
