package vdl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tabortao/Tabor-Skills/internal/httpx"
)

func TestCheckURL(t *testing.T) {
	okSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer okSrv.Close()
	notFoundSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer notFoundSrv.Close()

	client := httpx.New(httpx.Config{Timeout: 2 * time.Second})
	ctx := context.Background()

	if !CheckURL(ctx, client, okSrv.URL) {
		t.Error("CheckURL() = false for a 200 response, want true")
	}
	if CheckURL(ctx, client, notFoundSrv.URL) {
		t.Error("CheckURL() = true for a 404 response, want false")
	}
	if CheckURL(ctx, client, "http://127.0.0.1:1") {
		t.Error("CheckURL() = true for unreachable host, want false")
	}
}

func TestFetchInfo(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "yt-dlp", `echo '{"title":"A Video","duration":125,"uploader":"someone"}'`+"\n")

	info, err := FetchInfo(context.Background(), script, "https://example.com/v", 5*time.Second)
	if err != nil {
		t.Fatalf("FetchInfo() error = %v", err)
	}
	if info.Title != "A Video" {
		t.Errorf("Title = %q, want A Video", info.Title)
	}
	if info.Uploader != "someone" {
		t.Errorf("Uploader = %q, want someone", info.Uploader)
	}
	if got := info.DurationString(); got != "2:05" {
		t.Errorf("DurationString() = %q, want 2:05", got)
	}
}

func TestFetchInfo_ToolFailure(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "yt-dlp", "exit 1\n")

	if _, err := FetchInfo(context.Background(), script, "https://example.com/v", 5*time.Second); err == nil {
		t.Error("FetchInfo() error = nil, want failure")
	}
}

func TestFetchInfo_BadJSON(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "yt-dlp", "echo not-json\n")

	_, err := FetchInfo(context.Background(), script, "https://example.com/v", 5*time.Second)
	if err == nil || !strings.Contains(err.Error(), "parse video info") {
		t.Errorf("FetchInfo() error = %v, want parse error", err)
	}
}

func TestVideoInfo_DurationString(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{3671, "61:11"},
	}

	for _, tt := range tests {
		v := &VideoInfo{Duration: tt.seconds}
		if got := v.DurationString(); got != tt.want {
			t.Errorf("DurationString(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
