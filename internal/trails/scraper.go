package trails

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the site root all page addresses are built from.
const DefaultBaseURL = "https://www.alltrails.com"

// Getter fetches one page and returns its body. Implemented by fetch.Client.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Scraper runs the extraction pipelines against freshly fetched pages. Its
// fields are read-only after construction, so concurrent calls from
// independent requests are safe without locking.
type Scraper struct {
	client  Getter
	baseURL string
	log     zerolog.Logger
}

// NewScraper wires a page fetcher to the extraction engine. An empty baseURL
// selects DefaultBaseURL.
func NewScraper(client Getter, baseURL string, log zerolog.Logger) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Scraper{client: client, baseURL: baseURL, log: log}
}

// BaseURL reports the site root the scraper builds page addresses from.
func (s *Scraper) BaseURL() string { return s.baseURL }

// SearchTrails extracts trail summaries from the park page for parkSlug.
// Fetch or parse failure yields an empty, non-nil slice together with the
// error; callers exposing the legacy tool contract surface only the empty
// sequence.
func (s *Scraper) SearchTrails(ctx context.Context, parkSlug string) ([]TrailSummary, error) {
	url := fmt.Sprintf("%s/parks/%s", s.baseURL, parkSlug)
	s.log.Info().Str("url", url).Msg("fetching trails")

	body, err := s.client.Get(ctx, url)
	if err != nil {
		s.log.Error().Err(err).Str("url", url).Msg("request error")
		return []TrailSummary{}, fmt.Errorf("fetch %s: %w", url, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		s.log.Error().Err(err).Str("url", url).Msg("parse error")
		return []TrailSummary{}, fmt.Errorf("parse %s: %w", url, err)
	}

	return ExtractListing(doc, s.baseURL, s.log), nil
}

// TrailDetails extracts the detail record for one trail. Failure never
// propagates as a bare error alone: the returned record is the sentinel shape
// (empty Title, error text in Summary, requested URL preserved) so callers of
// the legacy tool contract can keep detecting failure from the record.
func (s *Scraper) TrailDetails(ctx context.Context, slug string) (TrailDetail, error) {
	url := fmt.Sprintf("%s/trail/%s", s.baseURL, slug)
	s.log.Info().Str("url", url).Msg("fetching trail details")

	body, err := s.client.Get(ctx, url)
	if err != nil {
		s.log.Error().Err(err).Str("url", url).Msg("request error")
		return TrailDetail{
			Summary: fmt.Sprintf("Error fetching trail: %v", err),
			URL:     url,
		}, fmt.Errorf("fetch %s: %w", url, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("parse error")
		return TrailDetail{
			Summary: fmt.Sprintf("Error parsing trail: %v", err),
			URL:     url,
		}, fmt.Errorf("parse %s: %w", url, err)
	}

	return ExtractDetail(doc, slug, url), nil
}
