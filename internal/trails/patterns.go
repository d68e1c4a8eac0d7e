package trails

import "regexp"

// Text patterns shared by the listing and detail extractors. Distance and
// rating operate on flattened card text; the label patterns operate on the
// flattened text of a whole page.
var (
	// distancePattern matches "2.4 mi", "9.1km" etc. The whole matched span
	// (number plus unit, with whatever spacing the source had) is the value.
	distancePattern = regexp.MustCompile(`(\d+\.?\d*)\s*(mi|km)`)

	// ratingPattern matches "4.5 stars", "4 star" or a star glyph; only the
	// numeric group is the value.
	ratingPattern = regexp.MustCompile(`(\d+\.?\d*)\s*(?:stars?|★)`)

	lengthLabelPattern    = regexp.MustCompile(`(?i)Length[:\s]*(\d+\.?\d*\s*(?:mi|km|miles|kilometers))`)
	elevationLabelPattern = regexp.MustCompile(`(?i)Elevation[:\s]*(\d+\.?\d*\s*(?:ft|feet|m|meters))`)
	difficultyWordPattern = regexp.MustCompile(`(?i)Difficulty[:\s]*(Easy|Moderate|Hard)`)
	routeTypePattern      = regexp.MustCompile(`(?i)Route type[:\s]*(Out & back|Loop|Point to point)`)

	difficultyTextPattern  = regexp.MustCompile(`(?i)Easy|Moderate|Hard`)
	nameClassPattern       = regexp.MustCompile(`(?i)name|title`)
	difficultyClassPattern = regexp.MustCompile(`(?i)difficulty`)
	leadingNumberPattern   = regexp.MustCompile(`(\d+\.?\d*)`)
)

// DistanceAndRating extracts a distance span and a rating value from free
// text. The two patterns are independent; either result may be empty.
func DistanceAndRating(text string) (length, rating string) {
	if m := distancePattern.FindString(text); m != "" {
		length = m
	}
	if m := ratingPattern.FindStringSubmatch(text); m != nil {
		rating = m[1]
	}
	return length, rating
}
