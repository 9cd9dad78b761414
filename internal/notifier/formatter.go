package notifier

import (
	"fmt"
	"strings"

	"CandleClerk/internal/model"
	"CandleClerk/internal/recorder"
)

// FormatRunReport formats a completed batch run into a Telegram message.
func FormatRunReport(sum *recorder.RunSummary, records []model.Record) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🕣 <b>8:30 AM ET candles</b> | %s\n\n", sum.StartedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("mode: %s\n", sum.Mode))
	b.WriteString(fmt.Sprintf("candles: %d (from %d symbols)\n", sum.RecordCount, sum.SymbolCount))
	if sum.CSVPath != "" {
		b.WriteString(fmt.Sprintf("saved to: %s\n", sum.CSVPath))
	}

	if len(records) > 0 {
		b.WriteString("\n<b>Closes:</b>\n")
		for _, rec := range records {
			b.WriteString(fmt.Sprintf("  %s  %.2f  vol %d  (%s)\n",
				rec.Symbol, rec.Close, rec.Volume, rec.DateETString()))
		}
	}
	return b.String()
}
