package vdl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/tabortao/Tabor-Skills/internal/httpx"
)

const (
	defaultYtdlpPath      = "yt-dlp"
	defaultRunTimeout     = 5 * time.Minute
	bilibiliReferer       = "https://www.bilibili.com/"
	maxStreamedLineLength = 200
)

// bilibiliExtractorArgs are the extractor hints tried on Bilibili, in
// attempt order.
var bilibiliExtractorArgs = [2]string{
	"bilibili:videomode=html5",
	"bilibili:force_api=1",
}

// BuildArgs translates download options into a yt-dlp argument list.
// attempt selects the Bilibili extractor hint (0 = first try).
func BuildArgs(rawURL string, opts Options, outputDir string, attempt int) []string {
	var args []string

	if IsBilibiliURL(rawURL) {
		// Bilibili rejects requests without a referer and a browser UA.
		args = append(args,
			"--add-header", "Referer:"+bilibiliReferer,
			"--add-header", "User-Agent:"+httpx.DesktopUserAgent,
		)
		hint := bilibiliExtractorArgs[0]
		if attempt > 0 {
			hint = bilibiliExtractorArgs[1]
		}
		args = append(args, "--extractor-args", hint)
	}

	if opts.AudioOnly {
		args = append(args,
			"-x",
			"--audio-format", "mp3",
			"--audio-quality", "0",
		)
	} else {
		args = append(args,
			"-f", formatSelector(opts.Quality),
			"--merge-output-format", opts.Format,
		)
	}

	args = append(args,
		"-o", filepath.Join(outputDir, "%(title)s.%(ext)s"),
		"--no-playlist",
		"--verbose",
	)
	return append(args, rawURL)
}

// formatSelector maps a quality tier onto a yt-dlp format selector.
func formatSelector(quality string) string {
	switch quality {
	case "", "best":
		return "bestvideo+bestaudio/best"
	case "worst":
		return "worstvideo+worstaudio/worst"
	default:
		height := strings.TrimSuffix(quality, "p")
		return fmt.Sprintf("bestvideo[height<=%s]+bestaudio/best[height<=%s]", height, height)
	}
}

// Runner executes yt-dlp and streams its combined output.
type Runner struct {
	// Path is the path to the yt-dlp executable. Defaults to "yt-dlp".
	Path string
	// Timeout is the wall-clock limit for one invocation. Defaults to
	// 5 minutes.
	Timeout time.Duration
	// Out receives the streamed output lines. Defaults to os.Stdout.
	Out io.Writer
}

// Run invokes yt-dlp with args, echoing its combined stdout/stderr line
// by line as the download progresses. Overlong lines are abbreviated.
// When the timeout expires the subprocess is killed and the run fails
// with ErrTimeout.
func (r *Runner) Run(ctx context.Context, args []string) error {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = defaultRunTimeout
	}
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, r.path(), args...)
	// yt-dlp spawns ffmpeg children that inherit the output pipe; the
	// whole process group must die on timeout or the pipe stays open.
	setProcessGroup(cmd)

	pipeR, pipeW, err := os.Pipe()
	if err != nil {
		return &DownloadError{Message: "create output pipe failed", Err: err}
	}
	cmd.Stdout = pipeW
	cmd.Stderr = pipeW

	if err := cmd.Start(); err != nil {
		pipeR.Close()
		pipeW.Close()
		return &DownloadError{Message: fmt.Sprintf("start yt-dlp: %v", err), Err: err}
	}
	// The child holds its own copy of the write end.
	pipeW.Close()

	// Error lines are collected so failures can be classified by their
	// text afterwards.
	var errorLines []string
	scanDone := make(chan struct{})
	go func() {
		defer close(scanDone)
		scanner := bufio.NewScanner(pipeR)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			fmt.Fprintln(r.out(), abbreviate(line))
			if strings.Contains(line, "ERROR") {
				errorLines = append(errorLines, line)
			}
		}
	}()

	select {
	case <-scanDone:
	case <-cmdCtx.Done():
		// A surviving descendant may still hold the pipe open after the
		// kill; closing the read end unblocks the scanner.
		pipeR.Close()
		<-scanDone
	}
	pipeR.Close()

	err = cmd.Wait()
	if err == nil {
		return nil
	}

	if cmdCtx.Err() == context.DeadlineExceeded {
		return &DownloadError{
			Message: fmt.Sprintf("download timed out after %s", timeout),
			Err:     ErrTimeout,
		}
	}

	msg := fmt.Sprintf("yt-dlp failed with exit code %d", cmd.ProcessState.ExitCode())
	if len(errorLines) > 0 {
		msg += ": " + strings.Join(errorLines, "; ")
	}
	return &DownloadError{Message: msg, Err: err}
}

func (r *Runner) path() string {
	if r.Path != "" {
		return r.Path
	}
	return defaultYtdlpPath
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}

// abbreviate shortens verbose debug lines for readability.
func abbreviate(line string) string {
	if len(line) < maxStreamedLineLength {
		return line
	}
	return line[:100] + "..." + line[len(line)-50:]
}
