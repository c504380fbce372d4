package models

import "time"

// TimestampLayout renders event timestamps in UTC with millisecond precision, so that
// lexicographic order of ts equals chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Event is the canonical record built from one inbound request. It is the unit published to the
// stream, archived to blob storage and stored as a recent event.
//
// Example JSON:
//
//	{
//	  "ts": "2024-01-02T03:04:05.123Z",
//	  "requestId": "01HKB4ZQ3M8Y5V2S7X9T1R6N0P",
//	  "method": "GET",
//	  "path": "/e",
//	  "ip": "203.0.113.7",
//	  "ua": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) ... Chrome/120.0.0.0 Safari/537.36",
//	  "referer": "https://x.test",
//	  "query": {"page": "demo"},
//	  "payload": null,
//	  "browser": "Chrome",
//	  "os": "Windows",
//	  "device": "Desktop"
//	}
type Event struct {
	Ts        string            `json:"ts"`
	RequestID string            `json:"requestId"`
	Method    string            `json:"method"`
	Path      string            `json:"path"`
	IP        string            `json:"ip"`
	UserAgent string            `json:"ua,omitempty"`
	Referer   string            `json:"referer,omitempty"`
	Query     map[string]string `json:"query,omitempty"`
	Payload   Payload           `json:"payload"`
	Browser   string            `json:"browser"`
	OS        string            `json:"os"`
	Device    string            `json:"device"`
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// RecentEventKey orders recent events by (ts, requestId).
func (e *Event) RecentEventKey() string {
	return e.Ts + "/" + e.RequestID
}

// FacetValues returns the client-attribute facets of the event in a fixed order.
func (e *Event) FacetValues() []CounterKey {
	return []CounterKey{
		{Facet: FacetOS, Value: e.OS},
		{Facet: FacetBrowser, Value: e.Browser},
		{Facet: FacetDevice, Value: e.Device},
	}
}
