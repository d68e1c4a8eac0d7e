package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gotrails/internal/app"
)

func main() {
	// Logging setup. Stdout carries the MCP protocol, so all diagnostics go
	// to stderr.
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		baseURL    string
		userAgent  string
		timeout    time.Duration
		configPath string
		parkSlug   string
		trailSlug  string
		outputPath string
		pdfPath    string
		verbose    bool
	)

	flag.StringVar(&baseURL, "base", os.Getenv("GOTRAILS_BASE_URL"), "Trail site base URL (default AllTrails)")
	flag.StringVar(&userAgent, "ua", os.Getenv("GOTRAILS_USER_AGENT"), "Override the browser-like User-Agent")
	flag.DurationVar(&timeout, "timeout", 0, "Per-request timeout (default 10s)")
	flag.StringVar(&configPath, "config", os.Getenv("GOTRAILS_CONFIG"), "Path to YAML or JSON config file")
	flag.StringVar(&parkSlug, "park", "", "One-shot: list trails for this park slug and exit")
	flag.StringVar(&trailSlug, "trail", "", "One-shot: print details for this trail slug and exit")
	flag.StringVar(&outputPath, "out", "", "One-shot: write the report to this file instead of stdout")
	flag.StringVar(&pdfPath, "pdf", "", "One-shot: additionally write the trail report as PDF")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		Timeout:    timeout,
		ParkSlug:   parkSlug,
		TrailSlug:  trailSlug,
		OutputPath: outputPath,
		PDFPath:    pdfPath,
		Verbose:    verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(cfg, log.Logger)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	return a.Run(ctx)
}
