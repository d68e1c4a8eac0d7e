package trails

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// cardSelectors locate trail cards on a park page, most specific first. The
// site periodically renames classes, so the first selector that yields any
// match wins and the rest are ignored for that page.
var cardSelectors = []string{
	"div[data-testid='trail-card']",
	"div.trail-card",
	"a[data-testid='trail-card-title-link']",
	".styles-module__container___3ZXxx",
}

// summarySelectors are tried in order per card; a candidate only counts when
// its text is longer than 20 characters, since short paragraph text inside a
// card is usually a stat label rather than a description.
var summarySelectors = []string{
	"div.styles-module__text___1Jt3Z",
	"p[data-testid='trail-card-description']",
	".trail-description",
	"p",
}

const (
	minSummaryLen      = 20
	minFallbackNameLen = 3
	maxFallbackLinks   = 20
)

// nameLocator is one named rule for finding the element that carries a card's
// trail name.
type nameLocator struct {
	name string
	find func(card *goquery.Selection) *goquery.Selection
}

var nameLocators = []nameLocator{
	{"title-link", func(card *goquery.Selection) *goquery.Selection {
		return card.Find("a[data-testid='trail-card-title-link']").First()
	}},
	{"heading", func(card *goquery.Selection) *goquery.Selection {
		return card.Find("h3").First()
	}},
	{"trail-anchor", func(card *goquery.Selection) *goquery.Selection {
		return card.Find("a[href*='/trail/']").First()
	}},
	{"named-span", func(card *goquery.Selection) *goquery.Selection {
		return firstByClass(card, "span", nameClassPattern)
	}},
}

// ExtractListing pulls trail summaries out of a parsed park page, in document
// order, without de-duplication. When no card selector matches anything it
// falls back to bare trail links and returns name/url-only records.
func ExtractListing(doc *goquery.Document, baseURL string, log zerolog.Logger) []TrailSummary {
	trails := []TrailSummary{}

	var cards *goquery.Selection
	for _, sel := range cardSelectors {
		found := doc.Find(sel)
		if found.Length() > 0 {
			log.Info().Int("count", found.Length()).Str("selector", sel).Msg("found trail cards")
			cards = found
			break
		}
	}

	if cards == nil {
		links := doc.Find("a[href*='/trail/']")
		log.Info().Int("count", links.Length()).Msg("no cards matched, using trail links as fallback")
		links.EachWithBreak(func(i int, link *goquery.Selection) bool {
			if i >= maxFallbackLinks {
				return false
			}
			name := strings.TrimSpace(link.Text())
			if utf8.RuneCountInString(name) <= minFallbackNameLen {
				return true
			}
			href, ok := link.Attr("href")
			if !ok || href == "" {
				return true
			}
			trails = append(trails, TrailSummary{
				Name: name,
				URL:  absoluteURL(baseURL, href),
			})
			return true
		})
		return trails
	}

	cards.Each(func(_ int, card *goquery.Selection) {
		summary, ok := extractCard(card, baseURL, log)
		if ok {
			trails = append(trails, summary)
		}
	})

	log.Info().Int("count", len(trails)).Msg("extracted trails")
	return trails
}

// extractCard builds one TrailSummary from a card element. Cards with no
// resolvable name or URL are dropped; a panic while processing a malformed
// card is contained so one bad card cannot abort the whole listing.
func extractCard(card *goquery.Selection, baseURL string, log zerolog.Logger) (summary TrailSummary, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("error processing trail card, skipping")
			ok = false
		}
	}()

	var nameElem *goquery.Selection
	for _, loc := range nameLocators {
		if found := loc.find(card); found.Length() > 0 {
			nameElem = found
			break
		}
	}
	if nameElem == nil {
		return TrailSummary{}, false
	}

	name := strings.TrimSpace(nameElem.Text())
	if name == "" {
		return TrailSummary{}, false
	}

	trailURL := ""
	if goquery.NodeName(nameElem) == "a" {
		if href, exists := nameElem.Attr("href"); exists && href != "" {
			trailURL = absoluteURL(baseURL, href)
		}
	}
	if trailURL == "" {
		if href, exists := card.Find("a[href*='/trail/']").First().Attr("href"); exists && href != "" {
			trailURL = absoluteURL(baseURL, href)
		}
	}
	if trailURL == "" {
		return TrailSummary{}, false
	}

	length, rating := DistanceAndRating(card.Text())

	return TrailSummary{
		Name:       name,
		URL:        trailURL,
		Summary:    cardSummary(card),
		Difficulty: cardDifficulty(card),
		Length:     length,
		Rating:     rating,
	}, true
}

func cardDifficulty(card *goquery.Selection) string {
	if elem := firstByClass(card, "span", difficultyClassPattern); elem.Length() > 0 {
		return strings.TrimSpace(elem.Text())
	}
	if elem := firstByClass(card, "div", difficultyClassPattern); elem.Length() > 0 {
		return strings.TrimSpace(elem.Text())
	}
	if text := firstTextNode(card, difficultyTextPattern); text != "" {
		return strings.TrimSpace(text)
	}
	return ""
}

func cardSummary(card *goquery.Selection) string {
	for _, sel := range summarySelectors {
		elem := card.Find(sel).First()
		if elem.Length() == 0 {
			continue
		}
		if text := strings.TrimSpace(elem.Text()); utf8.RuneCountInString(text) > minSummaryLen {
			return text
		}
	}
	return ""
}

// firstByClass finds the first descendant with the given tag whose class
// attribute matches the pattern, in document order.
func firstByClass(root *goquery.Selection, tag string, re *regexp.Regexp) *goquery.Selection {
	return root.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return re.MatchString(class)
	}).First()
}

// firstTextNode walks the selection's subtree and returns the first text node
// whose content matches the pattern.
func firstTextNode(root *goquery.Selection, re *regexp.Regexp) string {
	var found string
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.TextNode && re.MatchString(n.Data) {
			found = n.Data
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	for _, n := range root.Nodes {
		if walk(n) {
			break
		}
	}
	return found
}

// absoluteURL resolves a page-relative href against the site base. Absolute
// hrefs pass through untouched.
func absoluteURL(baseURL, href string) string {
	if strings.HasPrefix(href, "/") {
		return baseURL + href
	}
	return href
}
