package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the file at path and translates it into a Model. It does
	// not validate the result.
	Load(ctx context.Context, path string) (*Model, error)
}

// ExtensionLoader dispatches to a Loader chosen by file extension. Keys are
// lower-case extensions including the dot, e.g. ".hcl".
type ExtensionLoader map[string]Loader

// Load implements Loader.
func (l ExtensionLoader) Load(ctx context.Context, path string) (*Model, error) {
	ext := strings.ToLower(filepath.Ext(path))
	loader, ok := l[ext]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported config file extension %q for %s", ErrInvalidConfig, ext, path)
	}
	return loader.Load(ctx, path)
}
