// Package filter narrows a record set by time window and by categorical
// selection. Every operation is a pure function of its inputs and never
// mutates the records it is given.
package filter

import (
	"time"

	"voc-dashboard-go/internal/dataset"
	"voc-dashboard-go/internal/types"
)

// Day truncates an instant to its calendar day in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Window is the inclusive [Start, End] day range of a bounded period.
func Window(p types.Period, today time.Time) (start, end time.Time, bounded bool) {
	d := Day(today)
	switch p {
	case types.PeriodToday:
		return d, d, true
	case types.PeriodWeek:
		// Monday through Sunday containing today.
		offset := int(d.Weekday()) - 1
		if offset < 0 {
			offset = 6
		}
		start = d.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), true
	case types.PeriodMonth:
		start = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), true
	case types.PeriodQuarter:
		qm := time.Month((int(d.Month())-1)/3*3 + 1)
		start = time.Date(d.Year(), qm, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 3, -1), true
	case types.PeriodYear:
		start = time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, time.Date(d.Year(), time.December, 31, 0, 0, 0, 0, time.UTC), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// ByPeriod keeps records whose (valid) date falls inside the named
// period relative to today. "all" is the identity; records with invalid
// dates never match a bounded window.
func ByPeriod(records []types.InteractionRecord, p types.Period, today time.Time) []types.InteractionRecord {
	start, end, bounded := Window(p, today)
	if !bounded {
		return records
	}
	out := make([]types.InteractionRecord, 0, len(records))
	for _, r := range records {
		if !r.DateValid {
			continue
		}
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// isAllSentinel reports whether a normalized selection value is one of
// the "all" escape forms the UI sends ("All", "All Products", ...).
func isAllSentinel(v string) bool {
	switch v {
	case types.AllSentinel, "all_products", "all_channels", "all_periods":
		return true
	}
	return false
}

// normalizeSelection maps display-form selection values into storage
// form, the same rule the normalizer applies to records. Returning nil
// means "no restriction".
func normalizeSelection(selection []string) map[string]struct{} {
	if len(selection) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(selection))
	for _, v := range selection {
		n := dataset.NormalizeToken(v)
		if isAllSentinel(n) {
			return nil
		}
		set[n] = struct{}{}
	}
	return set
}

func byField(records []types.InteractionRecord, selection []string, get func(types.InteractionRecord) string) []types.InteractionRecord {
	set := normalizeSelection(selection)
	if set == nil {
		return records
	}
	out := make([]types.InteractionRecord, 0, len(records))
	for _, r := range records {
		if _, ok := set[get(r)]; ok {
			out = append(out, r)
		}
	}
	return out
}

// ByProducts keeps records whose product is in the selection.
func ByProducts(records []types.InteractionRecord, selection []string) []types.InteractionRecord {
	return byField(records, selection, func(r types.InteractionRecord) string { return r.Product })
}

// ByChannels keeps records whose channel is in the selection.
func ByChannels(records []types.InteractionRecord, selection []string) []types.InteractionRecord {
	return byField(records, selection, func(r types.InteractionRecord) string { return r.Channel })
}

// NormalizeSelection enforces the mutually exclusive selection policy:
// an "all" entry (or an empty set) supersedes specific entries, and the
// period defaults to "all" when unrecognized.
func NormalizeSelection(sel types.FilterSelection) types.FilterSelection {
	switch sel.Period {
	case types.PeriodToday, types.PeriodWeek, types.PeriodMonth, types.PeriodQuarter, types.PeriodYear, types.PeriodAll:
	default:
		sel.Period = types.PeriodAll
	}
	if normalizeSelection(sel.Products) == nil {
		sel.Products = []string{types.AllSentinel}
	}
	if normalizeSelection(sel.Channels) == nil {
		sel.Channels = []string{types.AllSentinel}
	}
	return sel
}

// Apply runs the full filter chain for one selection.
func Apply(records []types.InteractionRecord, sel types.FilterSelection, today time.Time) []types.InteractionRecord {
	sel = NormalizeSelection(sel)
	out := ByPeriod(records, sel.Period, today)
	out = ByProducts(out, sel.Products)
	out = ByChannels(out, sel.Channels)
	return out
}
