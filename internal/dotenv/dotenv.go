// Package dotenv locates and loads a .env file for the command-line
// tools. Variables already present in the environment win over the file.
package dotenv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const fileName = ".env"

// Load searches dir and its ancestors for a .env file and loads the
// first one found. It returns the path of the loaded file, or "" when
// none exists. A missing file is not an error.
func Load(dir string) (string, error) {
	path, err := find(dir)
	if err != nil || path == "" {
		return "", err
	}

	if err := godotenv.Load(path); err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}
	return path, nil
}

// find walks from dir up to the filesystem root looking for a .env file.
func find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, fileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
