// Package alerts carries the dashboard's alert and hotspot cards.
// Like the health score table this is static reference data, passed
// through unchanged until a real detection pipeline replaces it.
package alerts

import "voc-dashboard-go/internal/types"

// Critical returns the "Critical Alerts" cards.
func Critical() []types.AlertCard {
	return []types.AlertCard{
		{
			Title: "Sudden Spike in Negative Sentiment",
			Lines: []string{
				"Mobile App Update X.Y: 45% negative",
				"Volume: 150 mentions / 3 hrs",
			},
			Action: "View All Alerts",
		},
		{
			Title: "High Churn Risk Pattern Detected",
			Lines: []string{
				"Pattern: Repeated Billing Errors - Savings",
				"12 unique customer patterns",
			},
			Action: "View All Alerts",
		},
	}
}

// Hotspots returns the "Predictive Hotspots" cards.
func Hotspots() []types.AlertCard {
	return []types.AlertCard{
		{
			Title: "New Overdraft Policy Confusion",
			Lines: []string{
				"'Confused' Language: +30% WoW",
				`Keywords: "don't understand", "how it works"`,
			},
			Action: "Investigate Hotspots",
		},
		{
			Title: "Intl. Transfer UI Issues",
			Lines: []string{
				"Task Abandonment: +15% MoM",
				"Negative sentiment: 'Beneficiary Setup'",
			},
			Action: "Investigate Hotspots",
		},
	}
}
