// Package config manages runtime configuration for the video fetcher.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds tool paths and timing limits for download operations.
type Config struct {
	// YtdlpPath is the path to the yt-dlp executable (default: "yt-dlp")
	YtdlpPath string
	// PythonPath is the interpreter used for pip installs (default: "python3")
	PythonPath string
	// DownloadTimeout bounds one yt-dlp download invocation
	DownloadTimeout time.Duration
	// ProbeTimeout bounds the URL reachability check
	ProbeTimeout time.Duration
	// InfoTimeout bounds the metadata fetch before a download
	InfoTimeout time.Duration
	// RetryDelay is the pause before the single conditional retry
	RetryDelay time.Duration
}

// Default returns configuration with safe defaults.
func Default() *Config {
	return &Config{
		YtdlpPath:       "yt-dlp",
		PythonPath:      "python3",
		DownloadTimeout: 5 * time.Minute,
		ProbeTimeout:    10 * time.Second,
		InfoTimeout:     30 * time.Second,
		RetryDelay:      2 * time.Second,
	}
}

// Load builds the configuration from defaults plus environment overrides.
func Load() (*Config, error) {
	cfg := Default()
	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("VDL_YTDLP_PATH"); v != "" {
		c.YtdlpPath = v
	}
	if v := os.Getenv("VDL_PYTHON"); v != "" {
		c.PythonPath = v
	}
	if v := os.Getenv("VDL_DOWNLOAD_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.DownloadTimeout = d
		}
	}
	if v := os.Getenv("VDL_PROBE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.ProbeTimeout = d
		}
	}
	if v := os.Getenv("VDL_INFO_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.InfoTimeout = d
		}
	}
	if v := os.Getenv("VDL_RETRY_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RetryDelay = d
		}
	}
}

// Validate checks that configuration values are valid and consistent.
func (c *Config) Validate() error {
	if c.YtdlpPath == "" {
		return fmt.Errorf("ytdlp path must not be empty")
	}
	if c.PythonPath == "" {
		return fmt.Errorf("python path must not be empty")
	}
	if c.DownloadTimeout <= 0 {
		return fmt.Errorf("download timeout must be positive")
	}
	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("probe timeout must be positive")
	}
	if c.InfoTimeout <= 0 {
		return fmt.Errorf("info timeout must be positive")
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative")
	}
	return nil
}
