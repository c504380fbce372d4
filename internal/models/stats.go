package models

// Stats is the dashboard view of the current aggregates.
//
// Example JSON:
//
//	{
//	  "dailyCount": 42,
//	  "topPages": [{"value": "https://x.test", "count": 10}],
//	  "recentEvents": [{"ts": "2024-01-02T03:04:05.123Z", "requestId": "...", ...}],
//	  "browsers": [{"value": "Chrome", "count": 30}],
//	  "devices": [{"value": "Desktop", "count": 35}, {"value": "Mobile", "count": 7}]
//	}
type Stats struct {
	DailyCount   int64        `json:"dailyCount"`
	TopPages     []FacetCount `json:"topPages"`
	RecentEvents []*Event     `json:"recentEvents"`
	Browsers     []FacetCount `json:"browsers"`
	Devices      []FacetCount `json:"devices"`
}

// ClientAttributes are the facets derived from a user-agent string.
type ClientAttributes struct {
	Browser string
	OS      string
	Device  string
}
