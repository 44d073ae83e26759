package vdl

import (
	"os"
	"path/filepath"
)

const (
	// markerDir is the conventionally named ancestor used to infer a
	// default download destination.
	markerDir = ".claude"

	downloadsDir = "Downloads"
)

// ResolveOutputDir picks the destination directory for downloads. An
// explicit directory always wins. Otherwise, when startDir or one of
// its ancestors is the marker directory, the marker's parent is used,
// preferring its Downloads subdirectory when that exists. Without a
// marker the start directory itself is used.
func ResolveOutputDir(explicit, startDir string) string {
	if explicit != "" {
		return explicit
	}

	base := markerParent(startDir)
	if base == "" {
		return startDir
	}

	downloads := filepath.Join(base, downloadsDir)
	if info, err := os.Stat(downloads); err == nil && info.IsDir() {
		return downloads
	}
	return base
}

// markerParent walks from dir upward and returns the parent of the
// first directory named like the marker, or "" when none is found.
func markerParent(dir string) string {
	for {
		if filepath.Base(dir) == markerDir {
			return filepath.Dir(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
