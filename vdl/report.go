package vdl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// mediaExtensions are the file types listed in the post-download report.
var mediaExtensions = map[string]bool{
	".mp4":  true,
	".mp3":  true,
	".webm": true,
	".mkv":  true,
}

// MediaFile describes one downloaded media file.
type MediaFile struct {
	Name string
	Size int64
	Path string
}

// ListMedia returns the media files present in dir, in directory order.
func ListMedia(dir string) ([]MediaFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list output directory: %w", err)
	}

	var files []MediaFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !mediaExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(dir, entry.Name()))
		if err != nil {
			abs = filepath.Join(dir, entry.Name())
		}
		files = append(files, MediaFile{Name: entry.Name(), Size: info.Size(), Path: abs})
	}
	return files, nil
}

// HumanSize renders a byte count the way the report prints it.
func HumanSize(n int64) string {
	switch {
	case n > 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n > 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
