package summary

import (
	"strings"
	"testing"
	"time"

	"voc-dashboard-go/internal/types"
)

func sampleSnapshot() types.DashboardSnapshot {
	return types.DashboardSnapshot{
		Period: types.PeriodMonth,
		Health: types.HealthScore{Score: 82, Trend: "+1.5%", TrendPositive: true, TrendLabel: "vs. last month"},
		SentimentShares: []types.ShareEntry{
			{Label: types.SentimentPositive, Count: 1, Percent: 50.0},
			{Label: types.SentimentNegative, Count: 1, Percent: 50.0},
		},
		IntentShares: []types.ShareEntry{
			{Label: "Informasi", Count: 1, Percent: 50.0},
			{Label: "Keluhan", Count: 1, Percent: 50.0},
		},
		DailyVolume: []types.VolumePoint{
			{Day: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Volume: 1},
			{Day: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Volume: 1},
		},
		Volume:            types.VolumeStats{MinDaily: 1, MaxDaily: 1, AvgDaily: 1.0, Total: 2},
		TotalInteractions: 2,
	}
}

func TestShareLine(t *testing.T) {
	got := ShareLine(types.ShareEntry{Label: "Positif", Count: 1, Percent: 50.0})
	if got != "Positif: 50.0% (1 mentions)" {
		t.Errorf("ShareLine = %q", got)
	}
	got = ShareLine(types.ShareEntry{Label: "Keluhan", Count: 37, Percent: 12.3})
	if got != "Keluhan: 12.3% (37 mentions)" {
		t.Errorf("ShareLine = %q", got)
	}
}

func TestShareLinesPlaceholder(t *testing.T) {
	if got := ShareLines([]types.ShareEntry{{Label: types.NoDataLabel}}); got != nil {
		t.Errorf("placeholder must format to nothing, got %v", got)
	}
}

func TestVolumeLine(t *testing.T) {
	got := VolumeLine(types.VolumeStats{MinDaily: 1, MaxDaily: 4, AvgDaily: 2.5, Total: 10})
	want := "Volume trend over period: Min daily 1, Max daily 4, Avg daily 2.5. Total 10 interactions."
	if got != want {
		t.Errorf("VolumeLine = %q, want %q", got, want)
	}
	if got := VolumeLine(types.VolumeStats{}); got != "Date column missing or no data." {
		t.Errorf("empty VolumeLine = %q", got)
	}
}

func TestContextParagraph(t *testing.T) {
	snap := sampleSnapshot()
	got := ContextParagraph(snap)

	for _, want := range []string{
		"Periode: This Month",
		"Skor Kesehatan: 82% (Tren: +1.5% vs. last month)",
		"Total Interaksi: 2",
		"Positif: 50.0% (1 mentions); Negatif: 50.0% (1 mentions)",
		"Informasi: 50.0% (1 mentions); Keluhan: 50.0% (1 mentions)",
		"Total 2 interactions.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context paragraph missing %q:\n%s", want, got)
		}
	}
}

func TestContextParagraphDeterministic(t *testing.T) {
	snap := sampleSnapshot()
	if ContextParagraph(snap) != ContextParagraph(snap) {
		t.Error("formatting must be deterministic")
	}
}

func TestContextParagraphEmptyView(t *testing.T) {
	snap := types.DashboardSnapshot{
		Period:          types.PeriodToday,
		Health:          types.HealthScore{Score: 84, Trend: "+2.5%", TrendLabel: "vs. yesterday"},
		SentimentShares: []types.ShareEntry{{Label: types.NoDataLabel}},
		IntentShares:    []types.ShareEntry{{Label: types.NoDataLabel}},
	}
	got := ContextParagraph(snap)
	if c := strings.Count(got, "Tidak ada data."); c != 2 {
		t.Errorf("expected both breakdowns to say no data, found %d:\n%s", c, got)
	}
	if !strings.Contains(got, "Date column missing or no data.") {
		t.Errorf("empty volume line missing:\n%s", got)
	}
}

func TestPeriodLabel(t *testing.T) {
	if PeriodLabel(types.PeriodAll) != "All Periods" {
		t.Error("all label wrong")
	}
	if PeriodLabel("mystery") != "mystery" {
		t.Error("unknown period should pass through")
	}
}
