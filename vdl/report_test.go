package vdl

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListMedia(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"video.mp4":    "aaaa",
		"audio.MP3":    "bb",
		"clip.webm":    "c",
		"movie.mkv":    "dddd",
		"notes.txt":    "ignore",
		"partial.part": "ignore",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.mp4"), 0o755); err != nil {
		t.Fatal(err)
	}

	media, err := ListMedia(dir)
	if err != nil {
		t.Fatalf("ListMedia() error = %v", err)
	}

	if len(media) != 4 {
		t.Fatalf("ListMedia() returned %d files, want 4: %+v", len(media), media)
	}
	for _, f := range media {
		if f.Size <= 0 {
			t.Errorf("media file %q has size %d, want > 0", f.Name, f.Size)
		}
		if !filepath.IsAbs(f.Path) {
			t.Errorf("media file %q path %q is not absolute", f.Name, f.Path)
		}
	}
}

func TestListMedia_MissingDir(t *testing.T) {
	if _, err := ListMedia(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("ListMedia() error = nil, want error for missing directory")
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{512, "512 bytes"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{5 << 20, "5.0 MB"},
		{1572864, "1.5 MB"},
	}

	for _, tt := range tests {
		if got := HumanSize(tt.n); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
