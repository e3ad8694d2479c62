package niche

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// conversionFactor approximates the creator revenue share used to derive
// RPM from advertiser CPM.
const conversionFactor = 0.55

// RateTable maps country → niche → CPM. It is loaded once at startup and
// read-only afterwards.
type RateTable struct {
	rates map[string]map[string]float64
}

// DefaultRateTable returns the built-in CPM table.
func DefaultRateTable() *RateTable {
	return &RateTable{rates: map[string]map[string]float64{
		"US": {"Beauty": 18.5, "Fitness": 15.0, "Finance": 25.3, "Tech": 20.1},
		"ZA": {"Beauty": 6.3, "Fitness": 5.5, "Finance": 8.2, "Tech": 7.5},
		"IN": {"Beauty": 5.2, "Fitness": 4.8, "Finance": 6.1, "Tech": 6.5},
	}}
}

// LoadRateTable reads a CPM table from a YAML file. The file maps country
// codes to niche → CPM entries; every CPM must be non-negative.
func LoadRateTable(path string) (*RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate table %s: %w", path, err)
	}

	var rates map[string]map[string]float64
	if err := yaml.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("parse rate table %s: %w", path, err)
	}

	for country, niches := range rates {
		for niche, cpm := range niches {
			if cpm < 0 {
				return nil, fmt.Errorf("rate table %s: negative CPM for %s/%s", path, country, niche)
			}
		}
	}

	return &RateTable{rates: rates}, nil
}

// Lookup returns the stored CPM, or 0 when either key is unknown.
func (t *RateTable) Lookup(country, niche string) float64 {
	return t.rates[country][niche]
}

// Estimate derives the RPM estimate for a (country, niche) pair. Unknown
// keys yield a zero estimate; callers should treat it as "no data".
func (t *RateTable) Estimate(country, niche string) RpmEstimate {
	cpm := t.Lookup(country, niche)
	return RpmEstimate{CPM: cpm, RPM: roundCents(cpm * conversionFactor)}
}

// Countries lists the configured countries in sorted order.
func (t *RateTable) Countries() []string {
	out := make([]string, 0, len(t.rates))
	for country := range t.rates {
		out = append(out, country)
	}
	sort.Strings(out)
	return out
}

// Niches lists the niches configured for a country in sorted order. An
// unknown country yields an empty list.
func (t *RateTable) Niches(country string) []string {
	niches := t.rates[country]
	out := make([]string, 0, len(niches))
	for niche := range niches {
		out = append(out, niche)
	}
	sort.Strings(out)
	return out
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
