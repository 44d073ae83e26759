// Command vdl downloads videos from YouTube, Bilibili and other
// platforms via yt-dlp, with quality and format selection.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tabortao/Tabor-Skills/internal/config"
	"github.com/tabortao/Tabor-Skills/vdl"
)

func main() {
	fs := flag.NewFlagSet("vdl", flag.ExitOnError)
	var opts vdl.Options
	fs.StringVar(&opts.OutputDir, "o", "", "Output directory (default: smart detection)")
	fs.StringVar(&opts.OutputDir, "output", "", "Output directory (default: smart detection)")
	fs.StringVar(&opts.Quality, "q", "best", "Video quality: best, 1080p, 720p, 480p, 360p, worst")
	fs.StringVar(&opts.Quality, "quality", "best", "Video quality: best, 1080p, 720p, 480p, 360p, worst")
	fs.StringVar(&opts.Format, "f", "mp4", "Video format: mp4, webm, mkv")
	fs.StringVar(&opts.Format, "format", "mp4", "Video format: mp4, webm, mkv")
	fs.BoolVar(&opts.AudioOnly, "a", false, "Download only audio as MP3")
	fs.BoolVar(&opts.AudioOnly, "audio-only", false, "Download only audio as MP3")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `vdl - download videos from YouTube, Bilibili and other platforms

Usage:
  vdl [flags] <url>

Flags:
`)
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	argv := fs.Args()
	if len(argv) == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing url")
		fs.Usage()
		os.Exit(1)
	}

	if !contains(vdl.Qualities, opts.Quality) {
		fmt.Fprintf(os.Stderr, "Error: invalid quality %q (choose from %v)\n", opts.Quality, vdl.Qualities)
		os.Exit(1)
	}
	if !contains(vdl.Formats, opts.Format) {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q (choose from %v)\n", opts.Format, vdl.Formats)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fetcher := vdl.NewFetcher(cfg)
	if _, err := fetcher.Fetch(context.Background(), argv[0], opts); err != nil {
		os.Exit(1)
	}
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
