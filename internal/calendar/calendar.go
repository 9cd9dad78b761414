package calendar

import (
	"time"

	"CandleClerk/internal/model"
)

// scanLimit bounds the backward walk in last_5_days mode. Ten calendar
// days always contain at least five weekdays.
const scanLimit = 10

// PlanDates produces the ordered target dates for a run. nowEastern must
// already carry the Eastern location; the returned dates are midnights in
// that same location, most recent first.
func PlanDates(mode model.Mode, nowEastern time.Time) []time.Time {
	today := midnight(nowEastern)
	switch mode {
	case model.ModeYesterday:
		return []time.Time{today.AddDate(0, 0, -1)}
	case model.ModeLast5Days:
		var dates []time.Time
		for offset := 0; offset < scanLimit && len(dates) < 5; offset++ {
			d := today.AddDate(0, 0, -offset)
			if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}
			dates = append(dates, d)
		}
		return dates
	default:
		return []time.Time{today}
	}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
