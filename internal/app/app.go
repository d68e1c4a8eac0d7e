package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/hyperifyio/gotrails/internal/fetch"
	"github.com/hyperifyio/gotrails/internal/trails"
)

// ErrNoTrails is returned by the one-shot park query when the listing page
// yielded no trails.
var ErrNoTrails = errors.New("no trails found")

// App wires the fetcher and the extraction engine and exposes them either as
// MCP tools over stdio or as a one-shot command-line query.
type App struct {
	cfg     Config
	scraper *trails.Scraper
	log     zerolog.Logger
}

// New builds the application from configuration.
func New(cfg Config, log zerolog.Logger) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	client := &fetch.Client{
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	}
	return &App{
		cfg:     cfg,
		scraper: trails.NewScraper(client, cfg.BaseURL, log),
		log:     log,
	}, nil
}

// Run executes the configured mode: a one-shot query when -park or -trail
// was given, otherwise the MCP stdio server.
func (a *App) Run(ctx context.Context) error {
	switch {
	case a.cfg.ParkSlug != "":
		return a.runParkQuery(ctx)
	case a.cfg.TrailSlug != "":
		return a.runTrailQuery(ctx)
	default:
		return a.ServeMCP(ctx)
	}
}

func (a *App) runParkQuery(ctx context.Context) error {
	list, err := a.scraper.SearchTrails(ctx, a.cfg.ParkSlug)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		return fmt.Errorf("park %s: %w", a.cfg.ParkSlug, ErrNoTrails)
	}
	return a.writeReport(FormatTrailList(a.cfg.ParkSlug, list))
}

func (a *App) runTrailQuery(ctx context.Context) error {
	detail, err := a.scraper.TrailDetails(ctx, a.cfg.TrailSlug)
	if err != nil {
		return err
	}
	report := FormatTrailDetail(detail)
	if a.cfg.PDFPath != "" {
		if err := writeReportPDF(report, a.cfg.PDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		a.log.Info().Str("path", a.cfg.PDFPath).Msg("wrote PDF report")
	}
	return a.writeReport(report)
}

func (a *App) writeReport(text string) error {
	if a.cfg.OutputPath == "" {
		_, err := fmt.Fprintln(os.Stdout, text)
		return err
	}
	return os.WriteFile(a.cfg.OutputPath, []byte(text+"\n"), 0o644)
}
