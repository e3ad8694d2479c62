package niche

import (
	"time"

	"github.com/google/uuid"
)

const watchURLTemplate = "https://www.youtube.com/watch?v="

// WatchURL derives the public video URL from the provider's video ID. The
// ID is passed through as-is.
func WatchURL(videoID string) string {
	return watchURLTemplate + videoID
}

// Assemble joins content items with the query's estimate into flat report
// rows, one per item. All rows share the same estimate and query
// parameters. An empty item list yields an empty row list.
func Assemble(items []ContentItem, est RpmEstimate, country, niche string) []ReportRow {
	rows := make([]ReportRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, ReportRow{
			Title:        item.Title,
			Channel:      item.Channel,
			VideoURL:     WatchURL(item.VideoID),
			ThumbnailURL: item.Thumbnail,
			Country:      country,
			Niche:        niche,
			CPM:          est.CPM,
			RPM:          est.RPM,
		})
	}
	return rows
}

// NewReport wraps items and their estimate into a Report ready for
// rendering or export.
func NewReport(params QueryParams, est RpmEstimate, items []ContentItem, degraded bool) Report {
	return Report{
		ID:             uuid.NewString(),
		Country:        params.Country,
		Niche:          params.Niche,
		Estimate:       est,
		Items:          items,
		Rows:           Assemble(items, est, params.Country, params.Niche),
		GeneratedAt:    time.Now().UTC(),
		SearchDegraded: degraded,
	}
}
