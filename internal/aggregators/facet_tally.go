package aggregators

import (
	"sort"

	"tracking-pixel/internal/models"
)

// FacetIncrement is one counter increment derived from a batch.
type FacetIncrement struct {
	Key   models.CounterKey
	Count int64
}

// tallyOrder fixes the order in which facet types are emitted.
var tallyOrder = []models.FacetType{
	models.FacetOS,
	models.FacetBrowser,
	models.FacetDevice,
	models.FacetPage,
}

// TallyFacets counts facet values across a batch, returning one increment per distinct
// (type, value) pair ordered by facet type and then value. Empty values are skipped and the
// page facet is keyed by referer.
func TallyFacets(events []*models.Event) []FacetIncrement {
	counts := make(map[models.FacetType]map[string]int64, len(tallyOrder))
	for _, facet := range tallyOrder {
		counts[facet] = make(map[string]int64)
	}

	for _, event := range events {
		for _, key := range facetKeys(event) {
			counts[key.Facet][key.Value]++
		}
	}

	var result []FacetIncrement
	for _, facet := range tallyOrder {
		values := make([]string, 0, len(counts[facet]))
		for value := range counts[facet] {
			values = append(values, value)
		}
		sort.Strings(values)

		for _, value := range values {
			result = append(result, FacetIncrement{
				Key:   models.CounterKey{Facet: facet, Value: value},
				Count: counts[facet][value],
			})
		}
	}
	return result
}

// facetKeys lists the non-empty facet counters one event contributes to.
func facetKeys(event *models.Event) []models.CounterKey {
	keys := make([]models.CounterKey, 0, 4)
	for _, key := range event.FacetValues() {
		if key.Value != "" {
			keys = append(keys, key)
		}
	}
	if event.Referer != "" {
		keys = append(keys, models.CounterKey{Facet: models.FacetPage, Value: event.Referer})
	}
	return keys
}
