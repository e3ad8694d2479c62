package niche

import (
	"context"
	"errors"
	"log"
)

// SearchProvider defines a pluggable upstream capable of finding trending
// content for a niche query. Implementations own ordering: results are
// expected pre-sorted by the provider's popularity signal.
type SearchProvider interface {
	Search(ctx context.Context, query string, maxResults int, region string) ([]RawItem, error)
}

// Pipeline orchestrates estimation, search, normalization, and report
// assembly for a single niche query. It holds no mutable state between
// runs.
type Pipeline struct {
	Rates    *RateTable
	Provider SearchProvider
}

// NewPipeline constructs a Pipeline.
func NewPipeline(rates *RateTable, provider SearchProvider) (*Pipeline, error) {
	if rates == nil {
		return nil, errors.New("pipeline requires a rate table")
	}
	return &Pipeline{Rates: rates, Provider: provider}, nil
}

// Run executes the end-to-end flow for one query. A provider failure (or a
// missing provider) degrades to an empty item list with SearchDegraded
// set; only caller contract violations return an error.
func (p *Pipeline) Run(ctx context.Context, params QueryParams) (Report, error) {
	if params.Limit <= 0 {
		return Report{}, errors.New("pipeline: limit must be positive")
	}

	est := p.Rates.Estimate(params.Country, params.Niche)

	var raw []RawItem
	degraded := false
	if p.Provider == nil {
		degraded = true
	} else {
		var err error
		raw, err = p.Provider.Search(ctx, params.Niche, params.Limit, params.Country)
		if err != nil {
			log.Printf("pipeline: search for %q degraded: %v", params.Niche, err)
			raw = nil
			degraded = true
		}
	}

	items, err := Normalize(raw, params.Limit)
	if err != nil {
		return Report{}, err
	}

	return NewReport(params, est, items, degraded), nil
}
