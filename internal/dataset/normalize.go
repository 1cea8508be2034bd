package dataset

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"voc-dashboard-go/internal/logger"
	"voc-dashboard-go/internal/types"
)

// sentiment synonym table: case/space-normalized source label -> canonical
// localized label. Anything unmapped becomes Unknown.
var sentimentSynonyms = map[string]string{
	"positive": types.SentimentPositive,
	"positif":  types.SentimentPositive,
	"negative": types.SentimentNegative,
	"negatif":  types.SentimentNegative,
	"neutral":  types.SentimentNeutral,
	"netral":   types.SentimentNeutral,
}

// date layouts tried in order before the fixed day/month/year fallback.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"Jan 2, 2006",
}

const dateFallbackLayout = "02/01/2006"

// NormalizeToken canonicalizes a free-text category value into the stored
// identifier form: lowercased, trimmed, spaces replaced with underscores.
// Idempotent: NormalizeToken(NormalizeToken(x)) == NormalizeToken(x).
func NormalizeToken(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return types.UnknownValue
	}
	return strings.ReplaceAll(s, " ", "_")
}

// DisplayLabel is the inverse transform, used only for display:
// underscores back to spaces, each word title-cased.
func DisplayLabel(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// NormalizeSentiment maps a raw sentiment cell through the synonym table.
func NormalizeSentiment(s string) string {
	key := strings.TrimSpace(strings.ToLower(s))
	if canonical, ok := sentimentSynonyms[key]; ok {
		return canonical
	}
	return types.SentimentUnknown
}

// ParseDate attempts the flexible layout list first, then the fixed
// day/month/year fallback. The returned bool reports whether any layout
// matched; callers keep the record either way.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return day(t), true
		}
	}
	if t, err := time.Parse(dateFallbackLayout, s); err == nil {
		return day(t), true
	}
	return time.Time{}, false
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type columnIndex struct {
	date, product, channel, sentiment, intent, interactionID, details, customerID int
}

// detectColumns maps header names to positions by loose matching, the
// same way the sheet changes column order without telling anyone.
func detectColumns(header []string) columnIndex {
	idx := columnIndex{-1, -1, -1, -1, -1, -1, -1, -1}
	for i, h := range header {
		n := strings.ToLower(strings.TrimSpace(h))
		switch {
		case idx.date == -1 && strings.Contains(n, "date"):
			idx.date = i
		case idx.product == -1 && strings.Contains(n, "product"):
			idx.product = i
		case idx.channel == -1 && strings.Contains(n, "channel"):
			idx.channel = i
		case idx.sentiment == -1 && strings.Contains(n, "sentim"):
			idx.sentiment = i
		case idx.intent == -1 && strings.Contains(n, "intent"):
			idx.intent = i
		case idx.interactionID == -1 && strings.Contains(n, "interaction"):
			idx.interactionID = i
		case idx.details == -1 && strings.Contains(n, "detail"):
			idx.details = i
		case idx.customerID == -1 && strings.Contains(n, "customer"):
			idx.customerID = i
		}
	}
	return idx
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// FromGrid coerces a raw header+rows grid into typed interaction records.
// A malformed row never aborts the batch: missing fields get sentinels,
// unparsable dates are flagged invalid but the record is kept so that
// sentiment/intent aggregation still counts it.
func FromGrid(rows [][]string) []types.InteractionRecord {
	if len(rows) <= 1 {
		return []types.InteractionRecord{}
	}
	log := logger.New().WithComponent("dataset.normalize")
	idx := detectColumns(rows[0])

	out := make([]types.InteractionRecord, 0, len(rows)-1)
	invalidDates := 0
	for _, r := range rows[1:] {
		rec := types.InteractionRecord{
			Product:       NormalizeToken(cell(r, idx.product)),
			Channel:       NormalizeToken(cell(r, idx.channel)),
			Sentiment:     NormalizeSentiment(cell(r, idx.sentiment)),
			Intent:        strings.TrimSpace(cell(r, idx.intent)),
			InteractionID: strings.TrimSpace(cell(r, idx.interactionID)),
			CustomerID:    strings.TrimSpace(cell(r, idx.customerID)),
			Details:       strings.TrimSpace(cell(r, idx.details)),
		}
		if rec.Intent == "" {
			rec.Intent = "Unknown"
		}
		if rec.InteractionID == "" {
			rec.InteractionID = uuid.New().String()
		}
		rec.Date, rec.DateValid = ParseDate(cell(r, idx.date))
		if !rec.DateValid {
			invalidDates++
		}
		out = append(out, rec)
	}
	if invalidDates > 0 {
		log.WithField("invalid_dates", invalidDates).Warn("rows excluded from date-scoped aggregation")
	}
	return out
}
