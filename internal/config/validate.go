package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/faizmokh/kamus/internal/render"
)

// Validate checks settings that cleanenv cannot express as tags.
// Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dictionary.Path) == "" {
		return fmt.Errorf("dictionary.path must not be empty")
	}

	renderer := strings.ToLower(strings.TrimSpace(c.UI.Renderer))
	if renderer != "" && !slices.Contains(render.Names, renderer) {
		return fmt.Errorf("ui.renderer %q is not one of %s", c.UI.Renderer, strings.Join(render.Names, ", "))
	}
	if c.UI.Width < 0 {
		return fmt.Errorf("ui.width must be >= 0 (got %d)", c.UI.Width)
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}

	return nil
}
