package app

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hyperifyio/gotrails/internal/trails"
)

func TestFormatTrailList(t *testing.T) {
	list := []trails.TrailSummary{
		{
			Name:       "Alum Cave Trail",
			URL:        "https://example.test/trail/alum-cave",
			Summary:    "A steady climb past Arch Rock.",
			Difficulty: "Hard",
			Length:     "11.0 mi",
			Rating:     "4.8",
		},
		{
			Name: "Laurel Falls Trail",
			URL:  "https://example.test/trail/laurel-falls",
		},
	}

	got := FormatTrailList("us/tennessee/great-smoky-mountains-national-park", list)

	if !strings.HasPrefix(got, "Found 2 trails in us/tennessee/great-smoky-mountains-national-park:\n\n") {
		t.Errorf("header missing, got %q", got)
	}
	for _, want := range []string{
		"1. **Alum Cave Trail**",
		"   - Difficulty: Hard",
		"   - Length: 11.0 mi",
		"   - Rating: 4.8",
		"   - Summary: A steady climb past Arch Rock.",
		"   - URL: https://example.test/trail/alum-cave",
		"2. **Laurel Falls Trail**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	// The second trail has no optional fields; none of its lines may appear.
	second := got[strings.Index(got, "2. "):]
	for _, banned := range []string{"Difficulty:", "Length:", "Rating:", "Summary:"} {
		if strings.Contains(second, banned) {
			t.Errorf("optional line %q rendered for empty field:\n%s", banned, second)
		}
	}
}

func TestFormatTrailListCap(t *testing.T) {
	var list []trails.TrailSummary
	for i := 0; i < 18; i++ {
		list = append(list, trails.TrailSummary{
			Name: fmt.Sprintf("Trail %d", i+1),
			URL:  fmt.Sprintf("https://example.test/trail/t%d", i+1),
		})
	}

	got := FormatTrailList("big-park", list)

	if !strings.HasPrefix(got, "Found 18 trails in big-park:") {
		t.Errorf("header must count all trails, got %q", got[:40])
	}
	if !strings.Contains(got, "15. **Trail 15**") {
		t.Error("fifteenth trail missing")
	}
	if strings.Contains(got, "Trail 16") {
		t.Error("sixteenth trail must not be listed in full")
	}
	if !strings.HasSuffix(got, "... and 3 more trails.") {
		t.Errorf("overflow footer missing, got %q", got[len(got)-40:])
	}
}

func TestFormatTrailListTruncatesSummary(t *testing.T) {
	long := strings.Repeat("x", 100)
	got := FormatTrailList("p", []trails.TrailSummary{{Name: "T", URL: "u", Summary: long}})
	want := "   - Summary: " + strings.Repeat("x", 80) + "...\n"
	if !strings.Contains(got, want) {
		t.Errorf("summary not truncated at 80 chars:\n%s", got)
	}
}

func TestFormatTrailListTruncatesOnRuneBoundary(t *testing.T) {
	// 100 two-byte runes: the cut must land between runes, never inside one.
	long := strings.Repeat("é", 100)
	got := FormatTrailList("p", []trails.TrailSummary{{Name: "T", URL: "u", Summary: long}})
	want := "   - Summary: " + strings.Repeat("é", 80) + "...\n"
	if !strings.Contains(got, want) {
		t.Errorf("summary not truncated at 80 runes:\n%s", got)
	}
	if !utf8.ValidString(got) {
		t.Error("reply contains invalid UTF-8 after truncation")
	}
}

func TestFormatTrailListCountsRunesNotBytes(t *testing.T) {
	// 40 three-byte runes exceed 80 bytes but stay under the 80-character
	// budget, so the summary passes through untouched.
	summary := strings.Repeat("…", 40)
	got := FormatTrailList("p", []trails.TrailSummary{{Name: "T", URL: "u", Summary: summary}})
	if !strings.Contains(got, "   - Summary: "+summary+"\n") {
		t.Errorf("short multi-byte summary must not be truncated:\n%s", got)
	}
	if strings.Contains(got, "...") {
		t.Errorf("unexpected truncation marker:\n%s", got)
	}
}

func TestFormatTrailDetail(t *testing.T) {
	d := trails.TrailDetail{
		Title:         "Alum Cave Trail",
		Summary:       "A classic climb.",
		Length:        "11.0 mi",
		ElevationGain: "2,763 ft",
		RouteType:     "Out & back",
		Difficulty:    "Hard",
		Rating:        "4.8",
		URL:           "https://example.test/trail/alum-cave",
	}

	got := FormatTrailDetail(d)

	if !strings.HasPrefix(got, "# Alum Cave Trail\n\n") {
		t.Errorf("title heading missing:\n%s", got)
	}
	for _, want := range []string{
		"**Length:** 11.0 mi",
		"**Elevation Gain:** 2,763 ft",
		"**Route Type:** Out & back",
		"**Difficulty:** Hard",
		"**Rating:** 4.8",
		"**URL:** https://example.test/trail/alum-cave",
		"**Description:**\nA classic climb.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestFormatTrailDetailSparse(t *testing.T) {
	got := FormatTrailDetail(trails.TrailDetail{Title: "Bare Trail", URL: "u"})
	for _, banned := range []string{"Length:", "Elevation", "Route Type:", "Difficulty:", "Rating:", "Description:"} {
		if strings.Contains(got, banned) {
			t.Errorf("optional section %q rendered for empty field:\n%s", banned, got)
		}
	}
	if !strings.Contains(got, "**URL:** u") {
		t.Errorf("URL line missing:\n%s", got)
	}
}
