package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"CandleClerk/internal/model"
)

var header = []string{"symbol", "date", "date_et", "open", "high", "low", "close", "volume"}

// Writer serializes selected candles to a dated CSV file under Dir.
type Writer struct {
	Dir string
}

// Write saves records in accumulation order under a mode-specific
// filename and returns the file path. An empty batch is the one
// whole-run failure, so zero records is an error and no file is written.
func (w *Writer) Write(records []model.Record, mode model.Mode, runTime time.Time) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("no candle data retrieved")
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(w.Dir, Filename(mode, runTime))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}

	cw := csv.NewWriter(f)
	cw.Write(header)
	for _, rec := range records {
		cw.Write([]string{
			rec.Symbol,
			rec.DateString(),
			rec.DateETString(),
			formatPrice(rec.Open),
			formatPrice(rec.High),
			formatPrice(rec.Low),
			formatPrice(rec.Close),
			strconv.FormatInt(rec.Volume, 10),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	return path, nil
}

// Filename encodes the run mode and date into the report name. Backfill
// runs are stamped with the date they cover, not the run date.
func Filename(mode model.Mode, runTime time.Time) string {
	switch mode {
	case model.ModeYesterday:
		return fmt.Sprintf("candles_830am_%s_backfill.csv", runTime.AddDate(0, 0, -1).Format("20060102"))
	case model.ModeLast5Days:
		return fmt.Sprintf("candles_830am_last5days_%s.csv", runTime.Format("20060102_150405"))
	default:
		return fmt.Sprintf("candles_830am_%s.csv", runTime.Format("20060102"))
	}
}

// Preview prints a short per-row summary, one line per record.
func Preview(w io.Writer, records []model.Record) {
	fmt.Fprintf(w, "%-8s %12s %12s  %s\n", "symbol", "close", "volume", "date_et")
	for _, rec := range records {
		fmt.Fprintf(w, "%-8s %12.2f %12d  %s\n", rec.Symbol, rec.Close, rec.Volume, rec.DateETString())
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
