// Package charts derives render-ready chart specifications from a
// dashboard snapshot plus a fixed color legend. Rendering itself
// belongs to the hosting UI.
package charts

import (
	"voc-dashboard-go/internal/summary"
	"voc-dashboard-go/internal/types"
)

const (
	healthLineColor = "#34c759"
	volumeLineColor = "#007aff"
	fallbackColor   = "#cccccc"
)

var sentimentColors = map[string]string{
	types.SentimentPositive: "#34c759",
	types.SentimentNeutral:  "#a2a2a7",
	types.SentimentNegative: "#ff3b30",
	types.SentimentUnknown:  "#cccccc",
}

var intentColors = map[string]string{
	"Informasi":    "#007aff",
	"Keluhan":      "#ff9500",
	"Permohonan":   "#5856d6",
	"Layanan umum": "#ffcc00",
	"Penutupan":    "#ff3b30",
}

func colorFor(legend map[string]string, label string) string {
	if c, ok := legend[label]; ok {
		return c
	}
	return fallbackColor
}

func shareChart(kind, title string, entries []types.ShareEntry, legend map[string]string) types.ChartSpec {
	spec := types.ChartSpec{Kind: kind, Title: title}
	if len(entries) == 1 && entries[0].Label == types.NoDataLabel {
		spec.Empty = true
		return spec
	}
	for _, e := range entries {
		spec.Labels = append(spec.Labels, e.Label)
		spec.Values = append(spec.Values, float64(e.Count))
		spec.Colors = append(spec.Colors, colorFor(legend, e.Label))
	}
	return spec
}

// Health is the health-score trend line.
func Health(hs types.HealthScore) types.ChartSpec {
	values := make([]float64, len(hs.Values))
	for i, v := range hs.Values {
		values[i] = float64(v)
	}
	return types.ChartSpec{
		Kind:   "line",
		Title:  "Customer Health Score",
		Labels: hs.Labels,
		Values: values,
		Colors: []string{healthLineColor},
	}
}

// Sentiment is the sentiment distribution donut.
func Sentiment(entries []types.ShareEntry) types.ChartSpec {
	return shareChart("donut", "Sentiment Distribution", entries, sentimentColors)
}

// Intent is the top-5 intent horizontal bar.
func Intent(entries []types.ShareEntry) types.ChartSpec {
	return shareChart("hbar", "Top 5 Intent Distribution", entries, intentColors)
}

// Volume is the volume-over-time line.
func Volume(points []types.VolumePoint, period types.Period) types.ChartSpec {
	spec := types.ChartSpec{
		Kind:   "line",
		Title:  "Volume Trend (" + summary.PeriodLabel(period) + ")",
		Colors: []string{volumeLineColor},
	}
	total := 0
	for _, p := range points {
		spec.Labels = append(spec.Labels, p.Day.Format("2006-01-02"))
		spec.Values = append(spec.Values, float64(p.Volume))
		total += p.Volume
	}
	spec.Empty = total == 0
	return spec
}

// Build derives all four chart specs from one snapshot.
func Build(snap types.DashboardSnapshot) []types.ChartSpec {
	return []types.ChartSpec{
		Health(snap.Health),
		Sentiment(snap.SentimentShares),
		Intent(snap.IntentShares),
		Volume(snap.DailyVolume, snap.Period),
	}
}
