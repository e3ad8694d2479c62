package niche

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

var csvHeader = []string{"Title", "Channel", "Video URL", "Thumbnail URL", "Country", "Niche", "CPM", "RPM"}

// ToCSV encodes report rows as UTF-8 comma-separated values with a header
// row. An empty row list still produces the header.
func ToCSV(rows []ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Title,
			row.Channel,
			row.VideoURL,
			row.ThumbnailURL,
			row.Country,
			row.Niche,
			formatRate(row.CPM),
			formatRate(row.RPM),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}

	return buf.Bytes(), nil
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
