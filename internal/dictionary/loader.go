package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Loader reads dictionary files and memoizes the resulting tables by path.
type Loader struct {
	logger *slog.Logger

	mu    sync.Mutex
	cache map[string]*Table
}

// NewLoader wires a loader that reports through logger. A nil logger discards output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		logger: logger,
		cache:  make(map[string]*Table),
	}
}

// Load returns the Table stored at path. The file is parsed only on the first
// call for a given absolute path; later calls return the cached Table.
func (l *Loader) Load(ctx context.Context, path string) (*Table, error) {
	if l == nil {
		return nil, errors.New("loader not initialized")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if table, ok := l.cache[abs]; ok {
		l.logger.DebugContext(ctx, "dictionary cache hit", slog.String("path", abs))
		return table, nil
	}

	file, err := os.Open(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	table, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.cache[abs] = table
	l.logger.DebugContext(ctx, "dictionary loaded",
		slog.String("path", abs),
		slog.Int("entries", table.Len()),
		slog.Int("days", len(table.Days())),
	)
	return table, nil
}
