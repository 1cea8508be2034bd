package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type stubSource struct {
	rows  [][]string
	err   error
	calls int
}

func (s *stubSource) Fetch(ctx context.Context) ([][]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

var stubRows = [][]string{
	{"Date", "Product", "Channel", "Sentimen", "Intent"},
	{"2024-03-01", "KPR", "WhatsApp", "Positive", "Informasi"},
}

func TestCachedSourceServesWithinTTL(t *testing.T) {
	stub := &stubSource{rows: stubRows}
	cached := NewCachedSource(stub, time.Hour)

	for i := 0; i < 3; i++ {
		rows, err := cached.Fetch(context.Background())
		if err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
		if len(rows) != 2 {
			t.Fatalf("fetch %d: got %d rows", i, len(rows))
		}
	}
	if stub.calls != 1 {
		t.Errorf("source called %d times, want 1", stub.calls)
	}
}

func TestCachedSourceExpires(t *testing.T) {
	stub := &stubSource{rows: stubRows}
	cached := NewCachedSource(stub, time.Nanosecond)

	cached.Fetch(context.Background())
	time.Sleep(time.Millisecond)
	cached.Fetch(context.Background())
	if stub.calls != 2 {
		t.Errorf("source called %d times after expiry, want 2", stub.calls)
	}
}

func TestCachedSourceServesStaleOnFailure(t *testing.T) {
	stub := &stubSource{rows: stubRows}
	cached := NewCachedSource(stub, time.Nanosecond)

	if _, err := cached.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}
	stub.err = errors.New("upstream down")
	time.Sleep(time.Millisecond)
	rows, err := cached.Fetch(context.Background())
	if err != nil {
		t.Fatalf("stale fallback should not error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("stale fallback lost rows: %d", len(rows))
	}
}

func TestCachedSourceFirstFetchFails(t *testing.T) {
	stub := &stubSource{err: errors.New("no credentials")}
	cached := NewCachedSource(stub, time.Minute)
	if _, err := cached.Fetch(context.Background()); err == nil {
		t.Fatal("expected error with no cached rows to fall back on")
	}
}

func TestSheetsSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "sheet-123/values/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "k" {
			t.Errorf("missing api key in %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(map[string]any{"values": stubRows})
	}))
	defer srv.Close()

	src := SheetsSource{SpreadsheetID: "sheet-123", Range: "sheet1!A:H", APIKey: "k", BaseURL: srv.URL}
	rows, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[1][1] != "KPR" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestSheetsSourceClientErrorIsPermanent(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	src := SheetsSource{SpreadsheetID: "s", Range: "r", APIKey: "k", BaseURL: srv.URL}
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("4xx retried %d times, want 1 attempt", calls)
	}
}

func TestSheetsSourceRetriesServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"values": stubRows})
	}))
	defer srv.Close()

	src := SheetsSource{SpreadsheetID: "s", Range: "r", APIKey: "k", BaseURL: srv.URL}
	rows, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if calls < 3 {
		t.Errorf("expected retries, got %d calls", calls)
	}
}

func TestSheetsSourceEmptyRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	src := SheetsSource{SpreadsheetID: "s", Range: "r", APIKey: "k", BaseURL: srv.URL}
	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for empty range")
	}
}

func TestLoadRecordsDegradesToEmptySet(t *testing.T) {
	records, notice := LoadRecords(context.Background(), &stubSource{err: errors.New("auth missing")})
	if records == nil {
		t.Fatal("records must be an empty typed set, not nil")
	}
	if len(records) != 0 {
		t.Fatalf("got %d records", len(records))
	}
	if notice == "" {
		t.Error("expected a user-visible notice")
	}
}

func TestLoadRecordsNormalizes(t *testing.T) {
	records, notice := LoadRecords(context.Background(), &stubSource{rows: stubRows})
	if notice != "" {
		t.Fatalf("unexpected notice %q", notice)
	}
	if len(records) != 1 || records[0].Product != "kpr" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestWorkbookSourceMissingFile(t *testing.T) {
	if _, err := (WorkbookSource{Path: "does-not-exist.xlsx"}).Fetch(context.Background()); err == nil {
		t.Fatal("expected error for missing workbook")
	}
}
