package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/modu-ai/ngfs/internal/defs"
)

// FindProjectRoot locates the generated project enclosing dir by searching
// for the configuration document, from dir upward.
func FindProjectRoot(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	for {
		if info, err := os.Stat(filepath.Join(absDir, defs.ConfigFile)); err == nil && !info.IsDir() {
			return absDir, nil
		}

		parent := filepath.Dir(absDir)
		if parent == absDir {
			return "", fmt.Errorf("%w: no %s found in %s or any parent directory", ErrNotInProject, defs.ConfigFile, dir)
		}
		absDir = parent
	}
}
