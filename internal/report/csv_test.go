package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"CandleClerk/internal/model"
)

func sampleRecords(t *testing.T) []model.Record {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	utc := time.Date(2025, 1, 15, 13, 30, 0, 0, time.UTC)
	return []model.Record{
		{
			Symbol: "AAPL", TimeUTC: utc, TimeET: utc.In(loc),
			Open: 185.25, High: 186.1, Low: 185.01, Close: 185.75, Volume: 120345,
		},
		{
			Symbol: "MSFT", TimeUTC: utc, TimeET: utc.In(loc),
			Open: 410.5, High: 411, Low: 409.875, Close: 410.9, Volume: 98000,
		},
	}
}

func TestWriteEmptyFails(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir}

	_, err := w.Write(nil, model.ModeToday, time.Now())
	if err == nil {
		t.Fatal("expected error for empty batch")
	}
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(entries) != 0 {
		t.Errorf("no file should be written for an empty batch, found %d entries", len(entries))
	}
}

func TestWriteRoundTrip(t *testing.T) {
	w := &Writer{Dir: filepath.Join(t.TempDir(), "data")}
	records := sampleRecords(t)
	runTime := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	path, err := w.Write(records, model.ModeToday, runTime)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if filepath.Base(path) != "candles_830am_20250115.csv" {
		t.Errorf("unexpected filename: %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("parse written csv: %v", err)
	}
	if len(rows) != len(records)+1 {
		t.Fatalf("expected %d rows (header + records), got %d", len(records)+1, len(rows))
	}

	wantHeader := []string{"symbol", "date", "date_et", "open", "high", "low", "close", "volume"}
	for i, h := range wantHeader {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %s, want %s", i, rows[0][i], h)
		}
	}

	for i, rec := range records {
		row := rows[i+1]
		if row[0] != rec.Symbol {
			t.Errorf("row %d symbol = %s, want %s", i, row[0], rec.Symbol)
		}
		for j, want := range []float64{rec.Open, rec.High, rec.Low, rec.Close} {
			got, err := strconv.ParseFloat(row[3+j], 64)
			if err != nil {
				t.Fatalf("row %d col %d: %v", i, 3+j, err)
			}
			if got != want {
				t.Errorf("row %d col %d = %v, want %v", i, 3+j, got, want)
			}
		}
		if row[7] != strconv.FormatInt(rec.Volume, 10) {
			t.Errorf("row %d volume = %s, want %d", i, row[7], rec.Volume)
		}
	}
}

func TestFilenamePerMode(t *testing.T) {
	runTime := time.Date(2025, 3, 12, 8, 45, 30, 0, time.UTC)
	tests := []struct {
		mode model.Mode
		want string
	}{
		{model.ModeToday, "candles_830am_20250312.csv"},
		{model.ModeYesterday, "candles_830am_20250311_backfill.csv"},
		{model.ModeLast5Days, "candles_830am_last5days_20250312_084530.csv"},
	}
	for _, tt := range tests {
		if got := Filename(tt.mode, runTime); got != tt.want {
			t.Errorf("Filename(%s) = %s, want %s", tt.mode, got, tt.want)
		}
	}
}

func TestPreview(t *testing.T) {
	var buf bytes.Buffer
	Preview(&buf, sampleRecords(t))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "AAPL") || !strings.Contains(lines[1], "185.75") {
		t.Errorf("first row should show AAPL close, got: %s", lines[1])
	}
	if matched, _ := regexp.MatchString(`2025-01-15 08:30:00 EST`, lines[2]); !matched {
		t.Errorf("rows should carry the ET timestamp with zone, got: %s", lines[2])
	}
}
