package vdl

import (
	"strings"
	"testing"
)

func TestTroubleshootingHints_Bilibili(t *testing.T) {
	tests := []struct {
		name    string
		errText string
		want    string
	}{
		{"412", "yt-dlp failed: ERROR: HTTP Error 412: Precondition Failed", "412 error"},
		{"403", "exit code 1: ERROR: HTTP Error 403", "403 error"},
		{"forbidden word", "access FORBIDDEN by server", "403 error"},
		{"404", "ERROR: HTTP Error 404", "404 error"},
		{"not found text", "video Not Found", "404 error"},
		{"login", "ERROR: This video requires Login", "Login required"},
		{"unclassified", "some random failure", "Try using cookies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hints := TroubleshootingHints(tt.errText, true)
			if hints[0] != "For Bilibili videos:" {
				t.Errorf("hints[0] = %q, want platform header", hints[0])
			}
			joined := strings.Join(hints, "\n")
			if !strings.Contains(joined, tt.want) {
				t.Errorf("hints = %q, want mention of %q", joined, tt.want)
			}
		})
	}
}

func TestTroubleshootingHints_General(t *testing.T) {
	hints := TroubleshootingHints("ERROR: HTTP Error 403", false)
	joined := strings.Join(hints, "\n")

	if !strings.Contains(joined, "General troubleshooting") {
		t.Errorf("hints = %q, want general set for non-bilibili", joined)
	}
	if strings.Contains(joined, "Bilibili") {
		t.Errorf("hints = %q, must not include platform set", joined)
	}
}
