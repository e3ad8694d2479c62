package niche

import "fmt"

// Normalize converts raw provider records into ContentItems, keeping the
// provider's order and returning at most limit items. Records missing any
// required field are dropped; the rest of the batch is unaffected. An
// empty input is a valid "no data" state and yields an empty result.
func Normalize(raw []RawItem, limit int) ([]ContentItem, error) {
	if limit < 1 {
		return nil, fmt.Errorf("normalize: limit must be at least 1, got %d", limit)
	}

	items := make([]ContentItem, 0, min(limit, len(raw)))
	for _, r := range raw {
		if r.Title == "" || r.Channel == "" || r.Thumbnail == "" || r.VideoID == "" {
			continue
		}
		items = append(items, ContentItem{
			Title:     r.Title,
			Channel:   r.Channel,
			Thumbnail: r.Thumbnail,
			VideoID:   r.VideoID,
		})
		if len(items) == limit {
			break
		}
	}

	return items, nil
}
