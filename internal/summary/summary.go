// Package summary renders aggregated numbers into human-readable
// strings, both for UI labels and for the context block handed to the
// assistant. All formatting is deterministic and side-effect-free.
package summary

import (
	"fmt"
	"strings"

	"voc-dashboard-go/internal/types"
)

var periodLabels = map[types.Period]string{
	types.PeriodToday:   "Today",
	types.PeriodWeek:    "This Week",
	types.PeriodMonth:   "This Month",
	types.PeriodQuarter: "This Quarter",
	types.PeriodYear:    "This Year",
	types.PeriodAll:     "All Periods",
}

// PeriodLabel is the display name of a period.
func PeriodLabel(p types.Period) string {
	if l, ok := periodLabels[p]; ok {
		return l
	}
	return string(p)
}

// ShareLine formats one category slice, e.g. "Positif: 50.0% (1 mentions)".
func ShareLine(e types.ShareEntry) string {
	return fmt.Sprintf("%s: %.1f%% (%d mentions)", e.Label, e.Percent, e.Count)
}

// ShareLines formats a breakdown, or nothing when only the placeholder
// is present.
func ShareLines(entries []types.ShareEntry) []string {
	if len(entries) == 1 && entries[0].Label == types.NoDataLabel {
		return nil
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, ShareLine(e))
	}
	return lines
}

// VolumeLine summarizes the daily volume statistics.
func VolumeLine(stats types.VolumeStats) string {
	if stats.Total == 0 {
		return "Date column missing or no data."
	}
	return fmt.Sprintf("Volume trend over period: Min daily %d, Max daily %d, Avg daily %.1f. Total %d interactions.",
		stats.MinDaily, stats.MaxDaily, stats.AvgDaily, stats.Total)
}

func joinOrNone(lines []string) string {
	if len(lines) == 0 {
		return "Tidak ada data."
	}
	return strings.Join(lines, "; ")
}

// ContextParagraph builds the free-text dashboard summary injected into
// the assistant's user turn.
func ContextParagraph(snap types.DashboardSnapshot) string {
	var b strings.Builder
	b.WriteString("Ringkasan tampilan dasbor saat ini:\n")
	fmt.Fprintf(&b, "- Periode: %s\n", PeriodLabel(snap.Period))
	fmt.Fprintf(&b, "- Skor Kesehatan: %d%% (Tren: %s %s)\n", snap.Health.Score, snap.Health.Trend, snap.Health.TrendLabel)
	fmt.Fprintf(&b, "- Total Interaksi: %d\n", snap.TotalInteractions)
	fmt.Fprintf(&b, "- Distribusi Sentimen: %s\n", joinOrNone(ShareLines(snap.SentimentShares)))
	fmt.Fprintf(&b, "- Distribusi Niat: %s\n", joinOrNone(ShareLines(snap.IntentShares)))
	fmt.Fprintf(&b, "- Ringkasan Volume: %s", VolumeLine(snap.Volume))
	return b.String()
}
