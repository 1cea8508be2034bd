package aggregator

import "voc-dashboard-go/internal/types"

// Static customer health score reference data keyed by period.
// These numbers are not derived from the record set; no scoring formula
// exists yet, so this table is carried through unchanged as placeholder
// data until one is supplied.
var healthScores = map[types.Period]types.HealthScore{
	types.PeriodToday: {
		Labels:        []string{"9 AM", "11 AM", "1 PM", "3 PM", "5 PM", "7 PM", "9 PM"},
		Values:        []int{78, 76, 80, 79, 81, 83, 84},
		Score:         84,
		Trend:         "+2.5%",
		TrendPositive: true,
		TrendLabel:    "vs. yesterday",
	},
	types.PeriodWeek: {
		Labels:        []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Values:        []int{79, 78, 80, 81, 83, 84, 85},
		Score:         85,
		Trend:         "+1.8%",
		TrendPositive: true,
		TrendLabel:    "vs. last week",
	},
	types.PeriodMonth: {
		Labels:        []string{"Week 1", "Week 2", "Week 3", "Week 4"},
		Values:        []int{79, 80, 81, 82},
		Score:         82,
		Trend:         "+1.5%",
		TrendPositive: true,
		TrendLabel:    "vs. last month",
	},
	types.PeriodQuarter: {
		Labels:        []string{"Jan", "Feb", "Mar"},
		Values:        []int{76, 79, 83},
		Score:         83,
		Trend:         "+3.2%",
		TrendPositive: true,
		TrendLabel:    "vs. last quarter",
	},
	types.PeriodYear: {
		Labels:        []string{"Q1", "Q2", "Q3", "Q4"},
		Values:        []int{75, 77, 80, 84},
		Score:         84,
		Trend:         "+4.1%",
		TrendPositive: true,
		TrendLabel:    "vs. last year",
	},
	types.PeriodAll: {
		Labels:        []string{"2019", "2020", "2021", "2022", "2023", "2024"},
		Values:        []int{73, 71, 75, 78, 80, 83},
		Score:         83,
		Trend:         "+10.4%",
		TrendPositive: true,
		TrendLabel:    "over 5 years",
	},
}

// HealthFor looks up the static health score for a period, falling back
// to the month view like the original dashboard did.
func HealthFor(p types.Period) types.HealthScore {
	if hs, ok := healthScores[p]; ok {
		return hs
	}
	return healthScores[types.PeriodMonth]
}
