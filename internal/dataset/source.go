package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/xuri/excelize/v2"

	"voc-dashboard-go/internal/logger"
	"voc-dashboard-go/internal/types"
)

// RowSource fetches a raw 2-D grid of strings: header row + data rows.
type RowSource interface {
	Fetch(ctx context.Context) ([][]string, error)
}

// WorkbookSource reads the first sheet of a local .xlsx workbook.
type WorkbookSource struct {
	Path string
}

func (s WorkbookSource) Fetch(ctx context.Context) ([][]string, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", s.Path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}

// SheetsSource reads a fixed cell range from the Google Sheets values API
// using an API key. Transient failures are retried with exponential
// backoff; client errors are permanent.
type SheetsSource struct {
	SpreadsheetID string
	Range         string
	APIKey        string
	BaseURL       string // override for tests; defaults to the public endpoint
}

const sheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

var httpClient = &http.Client{Timeout: 12 * time.Second}

func (s SheetsSource) Fetch(ctx context.Context) ([][]string, error) {
	log := logger.New().WithComponent("dataset.sheets")
	base := s.BaseURL
	if base == "" {
		base = sheetsBaseURL
	}
	endpoint := fmt.Sprintf("%s/%s/values/%s?key=%s",
		base, url.PathEscape(s.SpreadsheetID), url.PathEscape(s.Range), url.QueryEscape(s.APIKey))

	var parsed struct {
		Values [][]string `json:"values"`
	}
	var lastErr error
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := httpClient.Do(req)
		if err != nil {
			lastErr = err
			log.WithError(err).Warn("sheets fetch failed")
			return err
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("sheets server error: %s", body)
			return lastErr
		}
		if resp.StatusCode >= 400 {
			lastErr = fmt.Errorf("sheets request rejected (%d): %s", resp.StatusCode, body)
			return backoff.Permanent(lastErr)
		}
		if err := json.Unmarshal(body, &parsed); err != nil {
			lastErr = fmt.Errorf("decode sheets response: %w", err)
			return lastErr
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 15 * time.Second
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("sheets fetch: %w", lastErr)
	}
	if len(parsed.Values) == 0 {
		return nil, fmt.Errorf("sheet range %s is empty", s.Range)
	}
	return parsed.Values, nil
}

// CachedSource wraps a RowSource with a fixed time-to-live. Reads within
// the TTL return the cached grid; a failed refresh falls back to the last
// good grid rather than erroring, so stale reads up to the TTL are the
// accepted contract.
type CachedSource struct {
	Source RowSource
	TTL    time.Duration

	mu        sync.Mutex
	rows      [][]string
	fetchedAt time.Time
}

func NewCachedSource(src RowSource, ttl time.Duration) *CachedSource {
	return &CachedSource{Source: src, TTL: ttl}
}

func (c *CachedSource) Fetch(ctx context.Context) ([][]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rows != nil && time.Since(c.fetchedAt) < c.TTL {
		return c.rows, nil
	}
	rows, err := c.Source.Fetch(ctx)
	if err != nil {
		if c.rows != nil {
			logger.New().WithComponent("dataset.cache").WithError(err).Warn("refresh failed, serving stale rows")
			return c.rows, nil
		}
		return nil, err
	}
	c.rows = rows
	c.fetchedAt = time.Now()
	return rows, nil
}

// LoadRecords fetches and normalizes the record set. A source failure
// degrades to an empty typed record set plus a user-visible notice; the
// rest of the pipeline tolerates the empty set without special-casing.
func LoadRecords(ctx context.Context, src RowSource) ([]types.InteractionRecord, string) {
	log := logger.New().WithComponent("dataset.load")
	rows, err := src.Fetch(ctx)
	if err != nil {
		log.WithError(err).Error("data source unavailable")
		return []types.InteractionRecord{}, fmt.Sprintf("Data source unavailable: %v", err)
	}
	records := FromGrid(rows)
	log.WithField("records", len(records)).Info("record set loaded")
	return records, ""
}
