package niche

import (
	"context"
	"errors"
	"testing"
)

type fakeProvider struct {
	items []RawItem
	err   error

	gotQuery  string
	gotMax    int
	gotRegion string
}

func (f *fakeProvider) Search(ctx context.Context, query string, maxResults int, region string) ([]RawItem, error) {
	f.gotQuery = query
	f.gotMax = maxResults
	f.gotRegion = region
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func TestPipelineRunAssemblesReport(t *testing.T) {
	provider := &fakeProvider{items: wellFormed(7)}
	pipeline, err := NewPipeline(DefaultRateTable(), provider)
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}

	report, err := pipeline.Run(context.Background(), QueryParams{Country: "US", Niche: "Fitness", Limit: 5})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if provider.gotQuery != "Fitness" || provider.gotMax != 5 || provider.gotRegion != "US" {
		t.Errorf("provider called with %q/%d/%q", provider.gotQuery, provider.gotMax, provider.gotRegion)
	}

	if len(report.Items) != 5 || len(report.Rows) != 5 {
		t.Fatalf("expected 5 items and rows, got %d/%d", len(report.Items), len(report.Rows))
	}
	if report.Estimate.CPM != 15.0 || report.Estimate.RPM != 8.25 {
		t.Errorf("estimate = %+v", report.Estimate)
	}
	if report.SearchDegraded {
		t.Errorf("report should not be degraded")
	}
	for _, row := range report.Rows {
		if row.CPM != report.Estimate.CPM || row.RPM != report.Estimate.RPM {
			t.Errorf("row estimate mismatch: %+v", row)
		}
	}
}

func TestPipelineRunDegradesOnProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("quota exceeded")}
	pipeline, err := NewPipeline(DefaultRateTable(), provider)
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}

	report, err := pipeline.Run(context.Background(), QueryParams{Country: "US", Niche: "Beauty", Limit: 5})
	if err != nil {
		t.Fatalf("provider failure must not abort the run: %v", err)
	}

	if !report.SearchDegraded {
		t.Errorf("degraded flag not set")
	}
	if len(report.Items) != 0 || len(report.Rows) != 0 {
		t.Errorf("expected empty report, got %d items", len(report.Items))
	}
	if report.Estimate.CPM != 18.5 {
		t.Errorf("estimate should still be computed, got %+v", report.Estimate)
	}
}

func TestPipelineRunWithoutProvider(t *testing.T) {
	pipeline, err := NewPipeline(DefaultRateTable(), nil)
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}

	report, err := pipeline.Run(context.Background(), QueryParams{Country: "ZA", Niche: "Unknown", Limit: 3})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if !report.SearchDegraded {
		t.Errorf("missing provider should degrade the report")
	}
	if report.Estimate.CPM != 0 || report.Estimate.RPM != 0 {
		t.Errorf("unknown niche estimate = %+v, want zero", report.Estimate)
	}
}

func TestPipelineRejectsBadLimit(t *testing.T) {
	pipeline, err := NewPipeline(DefaultRateTable(), &fakeProvider{})
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}

	if _, err := pipeline.Run(context.Background(), QueryParams{Country: "US", Niche: "Tech"}); err == nil {
		t.Fatalf("expected error for zero limit")
	}
}

func TestNewPipelineRequiresRates(t *testing.T) {
	if _, err := NewPipeline(nil, &fakeProvider{}); err == nil {
		t.Fatalf("expected error for nil rate table")
	}
}
