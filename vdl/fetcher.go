// Package vdl implements the video fetch pipeline: preflight of the
// external yt-dlp tool, URL probing and normalization, a monitored
// download attempt with a single conditional retry, and result
// reporting.
package vdl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/tabortao/Tabor-Skills/internal/config"
	"github.com/tabortao/Tabor-Skills/internal/httpx"
	"github.com/tabortao/Tabor-Skills/internal/retry"
)

// Options selects quality, container format and destination for one
// download.
type Options struct {
	// OutputDir is the destination directory. Empty means automatic
	// resolution (see ResolveOutputDir).
	OutputDir string
	// Quality is one of Qualities. Empty means "best".
	Quality string
	// Format is one of Formats.
	Format string
	// AudioOnly extracts a single MP3 track regardless of Quality and
	// Format.
	AudioOnly bool
}

// Accepted flag values.
var (
	Qualities = []string{"best", "1080p", "720p", "480p", "360p", "worst"}
	Formats   = []string{"mp4", "webm", "mkv"}
)

// Fetcher drives the whole download pipeline.
type Fetcher struct {
	cfg   *config.Config
	out   io.Writer
	probe *httpx.Client

	// workDir is the directory the automatic destination search starts
	// from. Defaults to the process working directory.
	workDir string
}

// NewFetcher creates a Fetcher writing its progress to stdout.
func NewFetcher(cfg *config.Config) *Fetcher {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Fetcher{
		cfg:   cfg,
		out:   os.Stdout,
		probe: httpx.New(httpx.Config{Timeout: cfg.ProbeTimeout}),
	}
}

// Fetch downloads the media behind rawURL. It returns the media files
// found in the destination directory on success. Diagnostics, progress
// and troubleshooting hints are printed to the fetcher's output as the
// pipeline runs; the returned error is the final outcome only.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, opts Options) ([]MediaFile, error) {
	fmt.Fprintln(f.out, "=== Video Downloader Started ===")

	installer := &Installer{YtdlpPath: f.cfg.YtdlpPath, PythonPath: f.cfg.PythonPath, Out: f.out}
	if err := installer.Ensure(ctx); err != nil {
		f.errorf("Failed to install or find yt-dlp. Please install it manually: pip install yt-dlp")
		return nil, err
	}

	fmt.Fprintf(f.out, "Testing URL accessibility: %s\n", rawURL)
	if !CheckURL(ctx, f.probe, rawURL) {
		f.warnf("URL might not be accessible. This could be due to:")
		fmt.Fprintln(f.out, "  - Network connectivity issues")
		fmt.Fprintln(f.out, "  - Video requires login/authentication")
		fmt.Fprintln(f.out, "  - Video is region-restricted")
		fmt.Fprintln(f.out, "  - Video has been removed or made private")
		fmt.Fprintln(f.out, "Continuing with download attempt anyway...")
	}

	outputDir, err := f.prepareOutputDir(opts.OutputDir)
	if err != nil {
		f.errorf("Failed to create output directory: %v", err)
		return nil, err
	}
	fmt.Fprintf(f.out, "Output directory: %s\n", outputDir)

	bilibili := IsBilibiliURL(rawURL)
	if bilibili {
		cleaned := NormalizeBilibiliURL(rawURL)
		if cleaned != rawURL {
			fmt.Fprintf(f.out, "Cleaned Bilibili URL: %s\n", cleaned)
			rawURL = cleaned
		}
		fmt.Fprintln(f.out, "[Bilibili detected] Using optimized download strategy...")
	}

	f.printPlan(rawURL, opts, bilibili)

	if info, err := FetchInfo(ctx, f.cfg.YtdlpPath, rawURL, f.cfg.InfoTimeout); err == nil {
		fmt.Fprintf(f.out, "Title: %s\n", info.Title)
		if info.Duration > 0 {
			fmt.Fprintf(f.out, "Duration: %s\n", info.DurationString())
		}
		fmt.Fprintf(f.out, "Uploader: %s\n\n", info.Uploader)
	} else {
		f.warnf("Could not fetch video info")
		fmt.Fprintln(f.out, "Attempting to download anyway...")
	}

	attempts, err := f.download(ctx, rawURL, opts, outputDir, bilibili)
	if err != nil {
		f.printFailure(attempts, err, bilibili)
		return nil, err
	}

	files := f.printSuccess(outputDir)
	return files, nil
}

// download runs yt-dlp, retrying once with the alternate extractor hint
// when the platform and the failure allow it. Every attempt's error is
// returned alongside the final outcome so the failure report can show
// what went wrong on each try.
func (f *Fetcher) download(ctx context.Context, rawURL string, opts Options, outputDir string, bilibili bool) ([]error, error) {
	runner := &Runner{Path: f.cfg.YtdlpPath, Timeout: f.cfg.DownloadTimeout, Out: f.out}

	retryCfg := retry.Config{}
	if bilibili {
		retryCfg = retry.Config{MaxRetries: 1, Delay: f.cfg.RetryDelay}
	}

	var attempts []error
	err := retry.Do(ctx, retryCfg, canRetry, func(ctx context.Context, attempt int) error {
		if attempt > 0 {
			fmt.Fprintln(f.out, "\n[RETRY] Attempting download with alternative settings...")
		} else {
			fmt.Fprintln(f.out, "Starting download...")
			fmt.Fprintln(f.out, "Download progress will be shown below (this may take a while for large videos):")
		}
		fmt.Fprintln(f.out, strings.Repeat("-", 60))

		err := runner.Run(ctx, BuildArgs(rawURL, opts, outputDir, attempt))
		if err == nil {
			fmt.Fprintln(f.out, strings.Repeat("-", 60))
			fmt.Fprintln(f.out, "Download completed successfully!")
		} else {
			attempts = append(attempts, err)
		}
		return err
	})
	return attempts, err
}

// canRetry rejects retrying when the failure indicates the content is
// blocked outright; a different extractor cannot help a 412.
func canRetry(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	return !strings.Contains(err.Error(), "412")
}

// prepareOutputDir resolves, creates and absolutizes the destination.
func (f *Fetcher) prepareOutputDir(explicit string) (string, error) {
	start := f.workDir
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		start = cwd
	}

	dir := ResolveOutputDir(explicit, start)
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return "", err
	}
	return abs, nil
}

func (f *Fetcher) printPlan(rawURL string, opts Options, bilibili bool) {
	fmt.Fprintf(f.out, "Downloading from: %s\n", rawURL)
	if bilibili {
		fmt.Fprintln(f.out, "Platform: Bilibili (with anti-412 protection)")
	}
	quality := opts.Quality
	if quality == "" {
		quality = "best"
	}
	fmt.Fprintf(f.out, "Quality: %s\n", quality)
	if opts.AudioOnly {
		fmt.Fprintln(f.out, "Format: mp3 (audio only)")
	} else {
		fmt.Fprintf(f.out, "Format: %s\n", opts.Format)
	}
}

// printSuccess enumerates downloaded media and prints the report.
func (f *Fetcher) printSuccess(outputDir string) []MediaFile {
	color.New(color.FgGreen).Fprintln(f.out, "\n[SUCCESS] Download complete!")
	fmt.Fprintf(f.out, "Saved to: %s\n", outputDir)

	files, err := ListMedia(outputDir)
	if err != nil {
		f.warnf("Could not list downloaded files: %v", err)
		return nil
	}
	if len(files) == 0 {
		fmt.Fprintln(f.out, "No media files found in output directory.")
		return nil
	}

	fmt.Fprintln(f.out, "\nDownloaded files:")
	fmt.Fprintln(f.out, strings.Repeat("-", 50))
	for _, file := range files {
		fmt.Fprintf(f.out, "  %s\n", file.Name)
		fmt.Fprintf(f.out, "    Size: %s\n", HumanSize(file.Size))
		fmt.Fprintf(f.out, "    Location: %s\n\n", file.Path)
	}
	return files
}

// printFailure prints every attempt's error text and hints matched
// against the combined text, so the original failure is not masked by
// the retry's.
func (f *Fetcher) printFailure(attempts []error, finalErr error, bilibili bool) {
	if len(attempts) == 0 {
		attempts = []error{finalErr}
	}

	f.errorf("Error downloading video:")
	fmt.Fprintf(f.out, "  %s\n", strings.ReplaceAll(attempts[0].Error(), "\n", "\n  "))
	for _, err := range attempts[1:] {
		fmt.Fprintf(f.out, "  Retry error: %s\n", strings.ReplaceAll(err.Error(), "\n", "\n  "))
	}

	var texts []string
	for _, err := range attempts {
		texts = append(texts, err.Error())
	}
	combined := strings.Join(texts, "\n")

	fmt.Fprintln(f.out, "\n[TROUBLESHOOTING TIPS]")
	for _, hint := range TroubleshootingHints(combined, bilibili) {
		fmt.Fprintln(f.out, hint)
	}
	fmt.Fprintf(f.out, "\nFor more help, visit: %s\n", wikiURL)
}

func (f *Fetcher) warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(f.out, "[WARNING] "+format+"\n", args...)
}

func (f *Fetcher) errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(f.out, "\n[ERROR] "+format+"\n", args...)
}
