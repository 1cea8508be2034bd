package charts

import (
	"testing"
	"time"

	"voc-dashboard-go/internal/types"
)

func TestSentimentChartColors(t *testing.T) {
	spec := Sentiment([]types.ShareEntry{
		{Label: types.SentimentPositive, Count: 3, Percent: 60.0},
		{Label: types.SentimentNegative, Count: 2, Percent: 40.0},
	})
	if spec.Kind != "donut" || spec.Empty {
		t.Fatalf("spec = %+v", spec)
	}
	if spec.Colors[0] != "#34c759" || spec.Colors[1] != "#ff3b30" {
		t.Errorf("legend colors wrong: %v", spec.Colors)
	}
	if spec.Values[0] != 3 || spec.Values[1] != 2 {
		t.Errorf("values wrong: %v", spec.Values)
	}
}

func TestShareChartPlaceholder(t *testing.T) {
	spec := Sentiment([]types.ShareEntry{{Label: types.NoDataLabel}})
	if !spec.Empty || len(spec.Values) != 0 {
		t.Errorf("placeholder must produce an empty spec: %+v", spec)
	}
}

func TestIntentChartUnknownLabelFallsBack(t *testing.T) {
	spec := Intent([]types.ShareEntry{{Label: "Sesuatu Baru", Count: 1, Percent: 100.0}})
	if spec.Colors[0] != "#cccccc" {
		t.Errorf("unknown intent color = %s, want fallback", spec.Colors[0])
	}
}

func TestHealthChart(t *testing.T) {
	spec := Health(types.HealthScore{Labels: []string{"Week 1", "Week 2"}, Values: []int{79, 80}})
	if spec.Kind != "line" || len(spec.Values) != 2 || spec.Values[1] != 80 {
		t.Errorf("health spec wrong: %+v", spec)
	}
}

func TestVolumeChartEmptyFlag(t *testing.T) {
	day := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)
	spec := Volume([]types.VolumePoint{{Day: day, Volume: 0}}, types.PeriodToday)
	if !spec.Empty {
		t.Error("zero-only series must be flagged empty")
	}
	spec = Volume([]types.VolumePoint{{Day: day, Volume: 2}}, types.PeriodToday)
	if spec.Empty || spec.Labels[0] != "2024-03-13" {
		t.Errorf("volume spec wrong: %+v", spec)
	}
}

func TestBuildProducesFourCharts(t *testing.T) {
	snap := types.DashboardSnapshot{
		Period:          types.PeriodMonth,
		Health:          types.HealthScore{Labels: []string{"W1"}, Values: []int{80}},
		SentimentShares: []types.ShareEntry{{Label: types.NoDataLabel}},
		IntentShares:    []types.ShareEntry{{Label: types.NoDataLabel}},
		DailyVolume:     []types.VolumePoint{{Day: time.Now(), Volume: 0}},
	}
	specs := Build(snap)
	if len(specs) != 4 {
		t.Fatalf("got %d charts, want 4", len(specs))
	}
	if specs[3].Title != "Volume Trend (This Month)" {
		t.Errorf("volume title = %q", specs[3].Title)
	}
}
