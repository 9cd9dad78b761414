package window

import (
	"fmt"
	"time"

	"CandleClerk/internal/model"
)

// Selector picks the bar whose local time of day in Location is exactly
// Hour:Minute. The 08:00-08:30 AM Eastern premarket window closes at
// 08:30, so the default selector matches that closing bar.
type Selector struct {
	Location *time.Location
	Hour     int
	Minute   int
}

// NewSelector builds the 08:30 US Eastern selector.
func NewSelector() (*Selector, error) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return nil, fmt.Errorf("load eastern timezone: %w", err)
	}
	return &Selector{Location: loc, Hour: 8, Minute: 30}, nil
}

// Select scans bars for the one on target's civil date whose local time
// of day matches the selector. Each bar's UTC time is converted through
// IANA rules individually, so a daylight-saving change mid-window cannot
// shift the match. The first matching bar in provider order wins; ok is
// false when no bar matches.
func (s *Selector) Select(symbol string, bars []model.Bar, target time.Time) (model.Record, bool) {
	ty, tm, td := target.In(s.Location).Date()
	for _, b := range bars {
		et := b.Time.In(s.Location)
		y, m, d := et.Date()
		if y != ty || m != tm || d != td {
			continue
		}
		if et.Hour() != s.Hour || et.Minute() != s.Minute {
			continue
		}
		return model.Record{
			Symbol:  symbol,
			TimeUTC: b.Time,
			TimeET:  et,
			Open:    b.Open,
			High:    b.High,
			Low:     b.Low,
			Close:   b.Close,
			Volume:  b.Volume,
		}, true
	}
	return model.Record{}, false
}
