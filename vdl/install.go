package vdl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Installer verifies that yt-dlp is available and installs it via pip
// when it is not.
type Installer struct {
	// YtdlpPath is the yt-dlp executable to check. Defaults to "yt-dlp".
	YtdlpPath string
	// PythonPath is the interpreter used for pip. Defaults to "python3".
	PythonPath string
	// Out receives progress messages. Defaults to os.Stdout.
	Out io.Writer
}

// Ensure checks for yt-dlp and attempts a pip install when it is
// missing. The user-level bin directory is put on PATH first so a
// previous --user install is found. Failure of both install modes is
// fatal for the run.
func (i *Installer) Ensure(ctx context.Context) error {
	addUserBinToPath()

	if version, err := i.version(ctx); err == nil {
		fmt.Fprintf(i.out(), "yt-dlp version: %s\n", version)
		return nil
	}

	fmt.Fprintln(i.out(), "yt-dlp not found. Installing...")

	// Newer pip refuses to touch system site-packages without
	// --break-system-packages; older pip does not know the flag.
	if err := i.pipInstall(ctx, "--break-system-packages"); err != nil {
		if err := i.pipInstall(ctx, "--user"); err != nil {
			return fmt.Errorf("%w: %v", ErrYtdlpNotInstalled, err)
		}
	}

	fmt.Fprintln(i.out(), "yt-dlp installed successfully!")
	return nil
}

func (i *Installer) version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, i.ytdlpPath(), "--version").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (i *Installer) pipInstall(ctx context.Context, mode string) error {
	cmd := exec.CommandContext(ctx, i.pythonPath(), "-m", "pip", "install", mode, "yt-dlp")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("pip install %s: %w: %s", mode, err, msg)
		}
		return fmt.Errorf("pip install %s: %w", mode, err)
	}
	return nil
}

func (i *Installer) ytdlpPath() string {
	if i.YtdlpPath != "" {
		return i.YtdlpPath
	}
	return defaultYtdlpPath
}

func (i *Installer) pythonPath() string {
	if i.PythonPath != "" {
		return i.PythonPath
	}
	return "python3"
}

func (i *Installer) out() io.Writer {
	if i.Out != nil {
		return i.Out
	}
	return os.Stdout
}

// addUserBinToPath prepends ~/.local/bin to PATH when it is not already
// there, so pip --user installs are visible to this process.
func addUserBinToPath() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	userBin := filepath.Join(home, ".local", "bin")
	path := os.Getenv("PATH")
	if strings.Contains(path, userBin) {
		return
	}
	os.Setenv("PATH", userBin+string(os.PathListSeparator)+path)
}
