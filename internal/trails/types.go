package trails

// TrailSummary is one trail as it appears on a park listing page. Fields that
// could not be resolved are empty strings rather than absent, so formatting
// code downstream never needs nil checks.
type TrailSummary struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Summary    string `json:"summary"`
	Difficulty string `json:"difficulty"`
	Length     string `json:"length"`
	Rating     string `json:"rating"`
}

// TrailDetail is the full record for a single trail page. A successful fetch
// always yields a non-empty Title (synthesized from the slug when no title
// element was found). An empty Title signals a failed fetch or parse; in that
// case Summary carries a human-readable error description and URL the
// requested address.
type TrailDetail struct {
	Title         string            `json:"title"`
	Summary       string            `json:"summary"`
	Length        string            `json:"length"`
	ElevationGain string            `json:"elevation_gain"`
	RouteType     string            `json:"route_type"`
	Difficulty    string            `json:"difficulty"`
	Rating        string            `json:"rating"`
	URL           string            `json:"url"`
	Stats         map[string]string `json:"stats"`
}
