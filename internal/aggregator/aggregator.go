// Package aggregator turns a filtered record set into the chart-ready
// numbers behind the dashboard: sentiment share, intent share (top 5),
// and daily interaction volume.
package aggregator

import (
	"math"
	"sort"
	"time"

	"voc-dashboard-go/internal/filter"
	"voc-dashboard-go/internal/types"
)

// topIntents is the structural cap on the intent breakdown.
const topIntents = 5

func pct(count, total int) float64 {
	return math.Round(float64(count)/float64(total)*1000) / 10
}

// countByLabel tallies labels preserving first-encountered order.
func countByLabel(records []types.InteractionRecord, get func(types.InteractionRecord) string) []types.ShareEntry {
	index := map[string]int{}
	var entries []types.ShareEntry
	for _, r := range records {
		label := get(r)
		if i, ok := index[label]; ok {
			entries[i].Count++
			continue
		}
		index[label] = len(entries)
		entries = append(entries, types.ShareEntry{Label: label, Count: 1})
	}
	// stable: ties keep first-encountered order
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
	return entries
}

func fillPercents(entries []types.ShareEntry) []types.ShareEntry {
	total := 0
	for _, e := range entries {
		total += e.Count
	}
	if total == 0 {
		return []types.ShareEntry{{Label: types.NoDataLabel, Count: 0, Percent: 0}}
	}
	for i := range entries {
		entries[i].Percent = pct(entries[i].Count, total)
	}
	return entries
}

// SentimentShares groups by sentiment label and computes count and
// percentage to one decimal. Zero records yields the "No Data"
// placeholder instead of a division by zero.
func SentimentShares(records []types.InteractionRecord) []types.ShareEntry {
	return fillPercents(countByLabel(records, func(r types.InteractionRecord) string { return r.Sentiment }))
}

// IntentShares is the same computation restricted to the top 5 most
// frequent intents; percentages are shares of the top-5 subtotal.
func IntentShares(records []types.InteractionRecord) []types.ShareEntry {
	entries := countByLabel(records, func(r types.InteractionRecord) string { return r.Intent })
	if len(entries) > topIntents {
		entries = entries[:topIntents]
	}
	return fillPercents(entries)
}

// DailyVolume counts records per calendar day, skipping invalid dates.
// An empty series degrades to a single zero-volume point dated today so
// downstream charting always has at least one point.
func DailyVolume(records []types.InteractionRecord, today time.Time) ([]types.VolumePoint, types.VolumeStats) {
	counts := map[time.Time]int{}
	for _, r := range records {
		if !r.DateValid {
			continue
		}
		counts[r.Date]++
	}
	if len(counts) == 0 {
		return []types.VolumePoint{{Day: filter.Day(today), Volume: 0}}, types.VolumeStats{}
	}
	points := make([]types.VolumePoint, 0, len(counts))
	for d, c := range counts {
		points = append(points, types.VolumePoint{Day: d, Volume: c})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Day.Before(points[j].Day) })

	stats := types.VolumeStats{MinDaily: points[0].Volume, MaxDaily: points[0].Volume}
	for _, p := range points {
		if p.Volume < stats.MinDaily {
			stats.MinDaily = p.Volume
		}
		if p.Volume > stats.MaxDaily {
			stats.MaxDaily = p.Volume
		}
		stats.Total += p.Volume
	}
	stats.AvgDaily = math.Round(float64(stats.Total)/float64(len(points))*10) / 10
	return points, stats
}

// BuildSnapshot aggregates an already-filtered record set into the
// snapshot consumed by the chart layer and the assistant context.
func BuildSnapshot(records []types.InteractionRecord, period types.Period, today time.Time) types.DashboardSnapshot {
	points, stats := DailyVolume(records, today)
	return types.DashboardSnapshot{
		Period:            period,
		Health:            HealthFor(period),
		SentimentShares:   SentimentShares(records),
		IntentShares:      IntentShares(records),
		DailyVolume:       points,
		Volume:            stats,
		TotalInteractions: len(records),
	}
}
