package niche

import "time"

// RawItem is a search result as delivered by the provider, before any
// well-formedness checks. Fields may be empty when the provider response
// was partial.
type RawItem struct {
	Title     string `json:"title"`
	Channel   string `json:"channel"`
	Thumbnail string `json:"thumbnail"`
	VideoID   string `json:"video_id"`
}

// ContentItem is a normalized search result. All fields are guaranteed
// non-empty once constructed.
type ContentItem struct {
	Title     string `json:"title"`
	Channel   string `json:"channel"`
	Thumbnail string `json:"thumbnail"`
	VideoID   string `json:"video_id"`
}

// RpmEstimate holds the monetization estimate for a (country, niche) pair.
// A zero CPM means "no data", not an actual zero-revenue prediction.
type RpmEstimate struct {
	CPM float64 `json:"cpm"`
	RPM float64 `json:"rpm"`
}

// ReportRow is one exportable line of a niche report: a content item joined
// with the query parameters and the shared estimate.
type ReportRow struct {
	Title        string  `json:"title"`
	Channel      string  `json:"channel"`
	VideoURL     string  `json:"video_url"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Country      string  `json:"country"`
	Niche        string  `json:"niche"`
	CPM          float64 `json:"cpm"`
	RPM          float64 `json:"rpm"`
}

// Report is the full result of one pipeline run.
type Report struct {
	ID          string        `json:"id"`
	Country     string        `json:"country"`
	Niche       string        `json:"niche"`
	Estimate    RpmEstimate   `json:"estimate"`
	Items       []ContentItem `json:"items"`
	Rows        []ReportRow   `json:"rows"`
	GeneratedAt time.Time     `json:"generated_at"`

	// SearchDegraded is set when the search provider failed and the report
	// was assembled from an empty result set. It stays false when the
	// provider succeeded but simply found nothing.
	SearchDegraded bool `json:"search_degraded"`
}

// Filename returns the suggested export file name for the report.
func (r Report) Filename() string {
	return "niche_report_" + r.Country + "_" + r.Niche + ".csv"
}

// QueryParams encapsulates a single user-initiated niche query.
type QueryParams struct {
	Country string
	Niche   string
	Limit   int
}
