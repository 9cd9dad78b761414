package collector

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleResponse = `[
	{"date":"2025-01-15 14:00:00","open":185.9,"high":186.2,"low":185.5,"close":186.0,"volume":54321},
	{"date":"2025-01-15 13:30:00","open":185.25,"high":186.1,"low":185.01,"close":185.75,"volume":120345}
]`

func TestFetchIntraday(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("apikey")
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	f := NewFMPFetcher(srv.URL, "test-key", "", 5*time.Second)
	bars, err := f.FetchIntraday("AAPL", "30min")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if gotPath != "/historical-chart/30min/AAPL" {
		t.Errorf("unexpected request path: %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("unexpected api key: %s", gotKey)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	// Provider order (newest first) is preserved, not re-sorted.
	if !bars[0].Time.Equal(time.Date(2025, 1, 15, 14, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected first bar time: %s", bars[0].Time)
	}
	if bars[1].Close != 185.75 || bars[1].Volume != 120345 {
		t.Errorf("unexpected second bar: %+v", bars[1])
	}
	if bars[0].Time.Location() != time.UTC {
		t.Errorf("bar times must be UTC, got %s", bars[0].Time.Location())
	}
}

func TestFetchIntradayFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "limit reached", http.StatusTooManyRequests)
		}},
		{"empty body", func(w http.ResponseWriter, r *http.Request) {}},
		{"empty array", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("[]"))
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}},
		{"bad timestamp", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"date":"15/01/2025","open":1,"high":1,"low":1,"close":1,"volume":1}]`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			f := NewFMPFetcher(srv.URL, "k", "", 5*time.Second)
			if _, err := f.FetchIntraday("AAPL", "30min"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestFetchIntradayNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	f := NewFMPFetcher(srv.URL, "k", "", time.Second)
	if _, err := f.FetchIntraday("AAPL", "30min"); err == nil {
		t.Error("expected a network error")
	}
}
