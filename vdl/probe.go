package vdl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/exec"
	"time"

	"github.com/tabortao/Tabor-Skills/internal/httpx"
)

// CheckURL reports whether the URL answers a plain GET with status 200.
// This is a best-effort reachability check; callers treat a false
// result as a warning only.
func CheckURL(ctx context.Context, client *httpx.Client, rawURL string) bool {
	resp, err := client.Get(ctx, rawURL, nil)
	return err == nil && resp.StatusCode == http.StatusOK
}

// VideoInfo is the subset of yt-dlp metadata shown before a download.
type VideoInfo struct {
	Title    string  `json:"title"`
	Duration float64 `json:"duration"` // seconds
	Uploader string  `json:"uploader"`
}

// DurationString renders the duration as M:SS.
func (v *VideoInfo) DurationString() string {
	total := int(v.Duration)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FetchInfo describes a video without downloading it, using yt-dlp's
// JSON dump. Failure here never blocks a download attempt.
func FetchInfo(ctx context.Context, ytdlpPath, rawURL string, timeout time.Duration) (*VideoInfo, error) {
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(cmdCtx, ytdlpPath, "--dump-json", "--no-playlist", rawURL).Output()
	if err != nil {
		return nil, fmt.Errorf("fetch video info: %w", err)
	}

	var info VideoInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, fmt.Errorf("parse video info: %w", err)
	}
	return &info, nil
}
