// voc-report prints the dashboard summary for a workbook straight to
// the terminal, running the same pipeline as the HTTP service.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"voc-dashboard-go/internal/dataset"
	"voc-dashboard-go/internal/processor"
	"voc-dashboard-go/internal/summary"
	"voc-dashboard-go/internal/types"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#007aff"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff9500"))
	trendUpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34c759"))
	trendDnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3b30"))
)

var sentimentStyles = map[string]lipgloss.Style{
	types.SentimentPositive: lipgloss.NewStyle().Foreground(lipgloss.Color("#34c759")),
	types.SentimentNeutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("#a2a2a7")),
	types.SentimentNegative: lipgloss.NewStyle().Foreground(lipgloss.Color("#ff3b30")),
}

func main() {
	_ = godotenv.Load()

	var (
		workbook string
		period   string
		products []string
		channels []string
	)

	root := &cobra.Command{
		Use:   "voc-report",
		Short: "Print a Voice of Customer dashboard summary for a workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			records, notice := dataset.LoadRecords(ctx, dataset.WorkbookSource{Path: workbook})
			sel := types.FilterSelection{Products: products, Channels: channels}
			switch strings.ToLower(period) {
			case "today":
				sel.Period = types.PeriodToday
			case "week":
				sel.Period = types.PeriodWeek
			case "month":
				sel.Period = types.PeriodMonth
			case "quarter":
				sel.Period = types.PeriodQuarter
			case "year":
				sel.Period = types.PeriodYear
			default:
				sel.Period = types.PeriodAll
			}

			view := processor.BuildView(records, sel, time.Now(), notice)
			render(cmd, view)
			return nil
		},
	}
	root.Flags().StringVar(&workbook, "workbook", "voc_interactions.xlsx", "path to the .xlsx workbook")
	root.Flags().StringVar(&period, "period", "all", "time period: today|week|month|quarter|year|all")
	root.Flags().StringSliceVar(&products, "product", nil, "restrict to product(s); omit for all")
	root.Flags().StringSliceVar(&channels, "channel", nil, "restrict to channel(s); omit for all")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func render(cmd *cobra.Command, view processor.DashboardView) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("VOCAL — Customer Experience Health Dashboard"))
	fmt.Fprintf(out, "Period: %s\n\n", summary.PeriodLabel(view.Selection.Period))

	if view.Notice != "" {
		fmt.Fprintln(out, noticeStyle.Render(view.Notice))
		fmt.Fprintln(out)
	}

	trend := trendUpStyle
	if !view.Snapshot.Health.TrendPositive {
		trend = trendDnStyle
	}
	fmt.Fprintln(out, sectionStyle.Render("Customer Health Score"))
	fmt.Fprintf(out, "  %d%% %s\n\n", view.Snapshot.Health.Score,
		trend.Render(view.Snapshot.Health.Trend+" "+view.Snapshot.Health.TrendLabel))

	fmt.Fprintln(out, sectionStyle.Render("Sentiment Distribution"))
	printShares(out, view.Snapshot.SentimentShares, true)

	fmt.Fprintln(out, sectionStyle.Render("Top 5 Intent Distribution"))
	printShares(out, view.Snapshot.IntentShares, false)

	fmt.Fprintln(out, sectionStyle.Render("Volume"))
	fmt.Fprintf(out, "  %s\n", summary.VolumeLine(view.Snapshot.Volume))
	fmt.Fprintf(out, "  Total interactions in view: %d\n", view.Snapshot.TotalInteractions)
}

func printShares(out io.Writer, entries []types.ShareEntry, colored bool) {
	lines := summary.ShareLines(entries)
	if lines == nil {
		fmt.Fprintln(out, "  No data for this period.")
		fmt.Fprintln(out)
		return
	}
	for i, line := range lines {
		if colored {
			if st, ok := sentimentStyles[entries[i].Label]; ok {
				line = st.Render(line)
			}
		}
		fmt.Fprintf(out, "  %s\n", line)
	}
	fmt.Fprintln(out)
}
