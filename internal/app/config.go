package app

import (
	"errors"
	"strings"
	"time"
)

// Config holds runtime configuration for the application.
type Config struct {
	// BaseURL is the trail site root. Empty selects the default.
	BaseURL string
	// UserAgent overrides the fetcher's browser-like user agent.
	UserAgent string
	// Timeout bounds each page request. Zero selects the fetcher default.
	Timeout time.Duration

	// One-shot query mode. When ParkSlug or TrailSlug is set the process
	// answers that single query and exits instead of serving tools.
	ParkSlug  string
	TrailSlug string
	// OutputPath receives the one-shot report; empty means stdout.
	OutputPath string
	// PDFPath additionally renders the one-shot trail report as PDF.
	PDFPath string

	Verbose bool
}

// ValidateConfig rejects setting combinations that cannot run.
func ValidateConfig(cfg Config) error {
	if cfg.ParkSlug != "" && cfg.TrailSlug != "" {
		return errors.New("config: -park and -trail are mutually exclusive")
	}
	if cfg.PDFPath != "" && cfg.TrailSlug == "" {
		return errors.New("config: -pdf requires -trail")
	}
	if cfg.Timeout < 0 {
		return errors.New("config: negative timeout is not allowed")
	}
	if cfg.BaseURL != "" && !strings.HasPrefix(cfg.BaseURL, "http") {
		return errors.New("config: base URL must be http(s)")
	}
	return nil
}
