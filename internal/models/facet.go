package models

import "time"

// DayLayout formats the daily counter value.
const DayLayout = "2006-01-02"

type FacetType string

const (
	FacetDaily   FacetType = "daily"
	FacetPage    FacetType = "page"
	FacetOS      FacetType = "os"
	FacetBrowser FacetType = "browser"
	FacetDevice  FacetType = "device"
)

const (
	counterPartitionPrefix = "COUNTER#"
	// RecentEventsPartition is the partition shared by every recent-event entry.
	RecentEventsPartition = "EVENT#recent"
)

func (f FacetType) PartitionKey() string {
	return counterPartitionPrefix + string(f)
}

// CounterKey identifies a counter by (facet type, facet value), e.g. (daily, "2024-01-02").
type CounterKey struct {
	Facet FacetType
	Value string
}

// DailyKey is the daily counter key for the UTC date of t.
func DailyKey(t time.Time) CounterKey {
	return CounterKey{Facet: FacetDaily, Value: t.UTC().Format(DayLayout)}
}

type FacetCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}
