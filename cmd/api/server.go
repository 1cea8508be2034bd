package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"voc-dashboard-go/internal/assistant"
	"voc-dashboard-go/internal/dataset"
	"voc-dashboard-go/internal/filter"
	"voc-dashboard-go/internal/logger"
	"voc-dashboard-go/internal/processor"
	"voc-dashboard-go/internal/types"
)

type server struct {
	source   dataset.RowSource
	streamer assistant.Streamer
	now      func() time.Time
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/filters", s.handleFilters)
	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/assistant", s.handleAssistant)
	return mux
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	logger.New().WithRequest(r).Info("health check")
	fmt.Fprint(w, "ok")
}

// parsePeriod accepts both the short names and the UI display labels.
func parsePeriod(v string) types.Period {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "today":
		return types.PeriodToday
	case "week", "this week":
		return types.PeriodWeek
	case "month", "this month":
		return types.PeriodMonth
	case "quarter", "this quarter":
		return types.PeriodQuarter
	case "year", "this year":
		return types.PeriodYear
	default:
		return types.PeriodAll
	}
}

func splitParam(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func selectionFromQuery(r *http.Request) types.FilterSelection {
	q := r.URL.Query()
	return filter.NormalizeSelection(types.FilterSelection{
		Period:   parsePeriod(q.Get("period")),
		Products: splitParam(q.Get("products")),
		Channels: splitParam(q.Get("channels")),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func (s *server) handleFilters(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "filters")
	records, notice := dataset.LoadRecords(r.Context(), s.source)
	if notice != "" {
		reqLog.Warn(notice)
	}
	writeJSON(w, http.StatusOK, processor.Options(records))
}

func (s *server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "dashboard")
	sel := selectionFromQuery(r)
	reqLog = reqLog.WithField("period", sel.Period)

	start := time.Now()
	records, notice := dataset.LoadRecords(r.Context(), s.source)
	view := processor.BuildView(records, sel, s.now(), notice)
	reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).
		WithField("total_interactions", view.Snapshot.TotalInteractions).
		Info("dashboard view built")

	writeJSON(w, http.StatusOK, view)
}

type assistantRequest struct {
	Question string   `json:"question"`
	Period   string   `json:"period"`
	Products []string `json:"products"`
	Channels []string `json:"channels"`
}

// handleAssistant streams the answer as Server-Sent Events, one event
// per completion chunk. Client disconnect cancels the upstream stream
// via the request context.
func (s *server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "assistant")
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req assistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		reqLog.WithError(err).Warn("bad assistant request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		http.Error(w, "missing question", http.StatusBadRequest)
		return
	}

	sel := filter.NormalizeSelection(types.FilterSelection{
		Period:   parsePeriod(req.Period),
		Products: req.Products,
		Channels: req.Channels,
	})
	records, notice := dataset.LoadRecords(r.Context(), s.source)
	view := processor.BuildView(records, sel, s.now(), notice)

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	reqLog.WithField("period", sel.Period).Info("assistant stream started")
	for chunk := range s.streamer.Ask(r.Context(), req.Question, view.Summary) {
		fmt.Fprintf(w, "data: %s\n\n", sseEscape(chunk))
		flusher.Flush()
	}
	fmt.Fprint(w, "event: done\ndata:\n\n")
	flusher.Flush()
	reqLog.Info("assistant stream finished")
}

// sseEscape keeps multi-line chunks valid inside a single SSE event.
func sseEscape(s string) string {
	return strings.ReplaceAll(s, "\n", "\ndata: ")
}
