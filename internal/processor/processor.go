// Package processor runs one filter/aggregate/format cycle. BuildView
// is a pure function of (record set, selection, reference date): no
// ambient state crosses requests.
package processor

import (
	"sort"
	"time"

	"voc-dashboard-go/internal/aggregator"
	"voc-dashboard-go/internal/alerts"
	"voc-dashboard-go/internal/charts"
	"voc-dashboard-go/internal/dataset"
	"voc-dashboard-go/internal/filter"
	"voc-dashboard-go/internal/summary"
	"voc-dashboard-go/internal/types"
)

// DashboardView is everything one render of the dashboard needs.
type DashboardView struct {
	Selection       types.FilterSelection   `json:"selection"`
	Snapshot        types.DashboardSnapshot `json:"snapshot"`
	Charts          []types.ChartSpec       `json:"charts"`
	CriticalAlerts  []types.AlertCard       `json:"critical_alerts"`
	Hotspots        []types.AlertCard       `json:"hotspots"`
	SentimentLabels []string                `json:"sentiment_labels"`
	IntentLabels    []string                `json:"intent_labels"`
	Summary         string                  `json:"summary"`
	Notice          string                  `json:"notice,omitempty"`
}

// BuildView filters, aggregates and formats one dashboard render.
// notice carries a degraded-source warning through to the caller.
func BuildView(records []types.InteractionRecord, sel types.FilterSelection, today time.Time, notice string) DashboardView {
	sel = filter.NormalizeSelection(sel)
	filtered := filter.Apply(records, sel, today)
	snap := aggregator.BuildSnapshot(filtered, sel.Period, today)

	return DashboardView{
		Selection:       sel,
		Snapshot:        snap,
		Charts:          charts.Build(snap),
		CriticalAlerts:  alerts.Critical(),
		Hotspots:        alerts.Hotspots(),
		SentimentLabels: summary.ShareLines(snap.SentimentShares),
		IntentLabels:    summary.ShareLines(snap.IntentShares),
		Summary:         summary.ContextParagraph(snap),
		Notice:          notice,
	}
}

// FilterOptions lists the selectable values the UI offers, in display
// form, with the "all" escape first.
type FilterOptions struct {
	Periods  []string `json:"periods"`
	Products []string `json:"products"`
	Channels []string `json:"channels"`
}

func distinctDisplay(records []types.InteractionRecord, get func(types.InteractionRecord) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range records {
		v := get(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, dataset.DisplayLabel(v))
	}
	sort.Strings(out)
	return out
}

// Options derives the available filter values from the record set.
func Options(records []types.InteractionRecord) FilterOptions {
	return FilterOptions{
		Periods: []string{"All Periods", "Today", "This Week", "This Month", "This Quarter", "This Year"},
		Products: append([]string{"All Products"},
			distinctDisplay(records, func(r types.InteractionRecord) string { return r.Product })...),
		Channels: append([]string{"All Channels"},
			distinctDisplay(records, func(r types.InteractionRecord) string { return r.Channel })...),
	}
}
