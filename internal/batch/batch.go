package batch

import (
	"log"
	"time"

	"CandleClerk/internal/collector"
	"CandleClerk/internal/model"
	"CandleClerk/internal/window"
)

// Runner drives the per-symbol fetch-and-select loop.
type Runner struct {
	Fetcher  collector.Fetcher
	Selector *window.Selector
	Interval string
	Delay    time.Duration
	Sleep    func(time.Duration) // nil means time.Sleep
}

// Run fetches the recent bar window once per symbol and selects the
// target candle for every planned date against that same window. Fetch
// failures and selection misses are logged and skipped; the batch always
// visits every symbol/date pair. Between consecutive symbols the runner
// pauses Delay to stay under the provider rate limit, whether or not the
// fetch succeeded.
func (r *Runner) Run(symbols []string, dates []time.Time) []model.Record {
	sleep := r.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var records []model.Record
	for i, symbol := range symbols {
		log.Printf("[INFO] fetching %s (%d/%d)", symbol, i+1, len(symbols))
		bars, err := r.Fetcher.FetchIntraday(symbol, r.Interval)
		if err != nil {
			log.Printf("[WARN] fetch %s: %v", symbol, err)
		} else {
			for _, date := range dates {
				rec, ok := r.Selector.Select(symbol, bars, date)
				if !ok {
					// The provider returns a bounded recent window; a planned date
					// outside it surfaces here rather than failing the run.
					log.Printf("[WARN] no %02d:%02d ET candle for %s on %s",
						r.Selector.Hour, r.Selector.Minute, symbol, date.Format("2006-01-02"))
					continue
				}
				records = append(records, rec)
			}
		}
		if i < len(symbols)-1 {
			sleep(r.Delay)
		}
	}
	return records
}
