package vdl

import "errors"

// Sentinel errors for download operations.
var (
	// ErrYtdlpNotInstalled indicates yt-dlp was absent and automatic
	// installation failed.
	ErrYtdlpNotInstalled = errors.New("yt-dlp not installed")

	// ErrTimeout indicates one yt-dlp invocation exceeded the download
	// timeout and was terminated.
	ErrTimeout = errors.New("download timed out")
)

// DownloadError reports a failed yt-dlp invocation. Message carries the
// failure text that the retry logic and the troubleshooting hints scan.
type DownloadError struct {
	Message string
	Err     error
}

func (e *DownloadError) Error() string {
	return e.Message
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}
