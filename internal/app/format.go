package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hyperifyio/gotrails/internal/trails"
)

const (
	// listingCap bounds how many trails a single reply lists in full.
	listingCap = 15
	// summaryTruncateAt keeps listing replies scannable.
	summaryTruncateAt = 80
)

// FormatTrailList renders a listing reply as Markdown-flavored text.
func FormatTrailList(park string, list []trails.TrailSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d trails in %s:\n\n", len(list), park)

	shown := list
	if len(shown) > listingCap {
		shown = shown[:listingCap]
	}
	for i, t := range shown {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, t.Name)
		if t.Difficulty != "" {
			fmt.Fprintf(&b, "   - Difficulty: %s\n", t.Difficulty)
		}
		if t.Length != "" {
			fmt.Fprintf(&b, "   - Length: %s\n", t.Length)
		}
		if t.Rating != "" {
			fmt.Fprintf(&b, "   - Rating: %s\n", t.Rating)
		}
		if t.Summary != "" {
			fmt.Fprintf(&b, "   - Summary: %s\n", truncate(t.Summary, summaryTruncateAt))
		}
		fmt.Fprintf(&b, "   - URL: %s\n\n", t.URL)
	}

	if len(list) > listingCap {
		fmt.Fprintf(&b, "... and %d more trails.", len(list)-listingCap)
	}
	return b.String()
}

// FormatTrailDetail renders a detail record as a Markdown block.
func FormatTrailDetail(d trails.TrailDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	if d.Length != "" {
		fmt.Fprintf(&b, "**Length:** %s\n", d.Length)
	}
	if d.ElevationGain != "" {
		fmt.Fprintf(&b, "**Elevation Gain:** %s\n", d.ElevationGain)
	}
	if d.RouteType != "" {
		fmt.Fprintf(&b, "**Route Type:** %s\n", d.RouteType)
	}
	if d.Difficulty != "" {
		fmt.Fprintf(&b, "**Difficulty:** %s\n", d.Difficulty)
	}
	if d.Rating != "" {
		fmt.Fprintf(&b, "**Rating:** %s\n", d.Rating)
	}
	fmt.Fprintf(&b, "**URL:** %s\n\n", d.URL)
	if d.Summary != "" {
		fmt.Fprintf(&b, "**Description:**\n%s\n", d.Summary)
	}
	return b.String()
}

// truncate cuts on rune boundaries so a multi-byte character is never split.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}
