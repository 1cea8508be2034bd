package types

import "time"

// InteractionRecord is one normalized customer-touchpoint event.
// Records are immutable once normalized; the pipeline only filters
// and aggregates, it never mutates a record in place.
type InteractionRecord struct {
	Date          time.Time `json:"date"`
	DateValid     bool      `json:"date_valid"`
	Product       string    `json:"product"`
	Channel       string    `json:"channel"`
	Sentiment     string    `json:"sentiment"`
	Intent        string    `json:"intent"`
	InteractionID string    `json:"interaction_id"`
	CustomerID    string    `json:"customer_id,omitempty"`
	Details       string    `json:"details,omitempty"`
}

// Canonical localized sentiment labels plus the unknown sentinel.
const (
	SentimentPositive = "Positif"
	SentimentNeutral  = "Netral"
	SentimentNegative = "Negatif"
	SentimentUnknown  = "Unknown"
)

// UnknownValue is the sentinel stored when a categorical field is absent.
const UnknownValue = "unknown"

// Period names a time window relative to a reference day.
type Period string

const (
	PeriodToday   Period = "today"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodAll     Period = "all"
)

// AllSentinel is the escape value that supersedes specific product or
// channel selections.
const AllSentinel = "all"

// FilterSelection is the request-scoped query object.
type FilterSelection struct {
	Period   Period   `json:"period"`
	Products []string `json:"products"`
	Channels []string `json:"channels"`
}

// ShareEntry is one category's slice of a percentage breakdown.
type ShareEntry struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// NoDataLabel marks the placeholder share emitted when a breakdown has
// nothing to break down.
const NoDataLabel = "No Data"

// VolumePoint is the interaction count for one calendar day.
type VolumePoint struct {
	Day    time.Time `json:"day"`
	Volume int       `json:"volume"`
}

// VolumeStats summarizes a daily volume series.
type VolumeStats struct {
	MinDaily int     `json:"min_daily"`
	MaxDaily int     `json:"max_daily"`
	AvgDaily float64 `json:"avg_daily"`
	Total    int     `json:"total"`
}

// HealthScore is static reference data per period; it is not derived
// from the record set (see internal/aggregator/healthscore.go).
type HealthScore struct {
	Labels        []string `json:"labels"`
	Values        []int    `json:"values"`
	Score         int      `json:"score"`
	Trend         string   `json:"trend"`
	TrendPositive bool     `json:"trend_positive"`
	TrendLabel    string   `json:"trend_label"`
}

// DashboardSnapshot is the aggregation result consumed by the chart
// layer and by the assistant context. Derived per filter change,
// never persisted.
type DashboardSnapshot struct {
	Period            Period        `json:"period"`
	Health            HealthScore   `json:"health"`
	SentimentShares   []ShareEntry  `json:"sentiment_shares"`
	IntentShares      []ShareEntry  `json:"intent_shares"`
	DailyVolume       []VolumePoint `json:"daily_volume"`
	Volume            VolumeStats   `json:"volume"`
	TotalInteractions int           `json:"total_interactions"`
}

// ChartSpec is a render-ready chart description: series, labels and
// colors only. The hosting UI owns actual rendering.
type ChartSpec struct {
	Kind   string    `json:"kind"` // line, donut, hbar
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors"`
	Empty  bool      `json:"empty"`
}

// AlertCard is a static alert or hotspot card carried through to the
// dashboard unchanged.
type AlertCard struct {
	Title  string   `json:"title"`
	Lines  []string `json:"lines"`
	Action string   `json:"action"`
}
