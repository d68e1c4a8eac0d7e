package trails

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

var titleSelectors = []string{
	"h1[data-testid='trail-title']",
	"h1.styles-module__title___1BPJy",
	"h1",
	"[data-testid='trail-name']",
}

// detailSummarySelectors end with the meta description tag; the meta case
// reads the content attribute and is accepted unconditionally, while element
// candidates must carry a substantial description to win.
var detailSummarySelectors = []string{
	"[data-testid='trail-description']",
	"div.styles-module__text___1Jt3Z",
	".trail-description",
	"meta[name='description']",
}

var statSelectors = []string{
	"[data-testid='trail-length']",
	"[data-testid='trail-elevation']",
	"[data-testid='trail-difficulty']",
	"span.css-1d3z3hw",
	".trail-stats span",
}

var ratingSelectors = []string{
	"[data-testid='trail-rating']",
	".reviewRating",
	".rating-display",
}

const minDetailSummaryLen = 50

// ExtractDetail builds the TrailDetail record for a single trail page. Every
// field resolves independently; a field whose locators all miss stays empty.
// Title never stays empty: when no title element is found it is synthesized
// from the slug.
func ExtractDetail(doc *goquery.Document, slug, pageURL string) TrailDetail {
	pageText := doc.Text()

	stats := extractStats(doc, pageText)

	detail := TrailDetail{
		Title:         detailTitle(doc, slug),
		Summary:       detailSummary(doc),
		Length:        stats["length"],
		ElevationGain: stats["elevation_gain"],
		RouteType:     matchGroup(routeTypePattern, pageText),
		Difficulty:    matchGroup(difficultyWordPattern, pageText),
		Rating:        detailRating(doc),
		URL:           pageURL,
		Stats:         stats,
	}
	return detail
}

func detailTitle(doc *goquery.Document, slug string) string {
	for _, sel := range titleSelectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return "Trail " + slug
}

func detailSummary(doc *goquery.Document) string {
	for _, sel := range detailSummarySelectors {
		elem := doc.Find(sel).First()
		if elem.Length() == 0 {
			continue
		}
		if strings.HasPrefix(sel, "meta") {
			content, _ := elem.Attr("content")
			return content
		}
		if text := strings.TrimSpace(elem.Text()); utf8.RuneCountInString(text) > minDetailSummaryLen {
			return text
		}
	}
	return ""
}

// extractStats resolves length and elevation gain in two phases: structural
// stat elements first, then labeled values in the flattened page text. The
// textual phase only fills stats the structural phase left unset.
//
// The elevation check deliberately keeps the legacy substring test: a bare
// "m" anywhere in the text combined with the word "gain" qualifies, which can
// false-positive on unrelated words containing "m". Fixtures depend on this,
// so it is preserved rather than anchored to word boundaries.
func extractStats(doc *goquery.Document, pageText string) map[string]string {
	stats := map[string]string{}

	for _, sel := range statSelectors {
		doc.Find(sel).Each(func(_ int, elem *goquery.Selection) {
			text := strings.TrimSpace(elem.Text())
			switch {
			case strings.Contains(text, "mi") || strings.Contains(text, "km"):
				stats["length"] = text
			case strings.Contains(text, "ft") ||
				(strings.Contains(text, "m") && strings.Contains(strings.ToLower(text), "gain")):
				stats["elevation_gain"] = text
			}
		})
	}

	if _, ok := stats["length"]; !ok {
		if m := matchGroup(lengthLabelPattern, pageText); m != "" {
			stats["length"] = m
		}
	}
	if _, ok := stats["elevation_gain"]; !ok {
		if m := matchGroup(elevationLabelPattern, pageText); m != "" {
			stats["elevation_gain"] = m
		}
	}
	return stats
}

func detailRating(doc *goquery.Document) string {
	for _, sel := range ratingSelectors {
		elem := doc.Find(sel).First()
		if elem.Length() == 0 {
			continue
		}
		if m := leadingNumberPattern.FindStringSubmatch(strings.TrimSpace(elem.Text())); m != nil {
			return m[1]
		}
	}
	return ""
}

func matchGroup(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
