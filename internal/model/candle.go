package model

import "time"

// Bar is a single OHLCV observation as parsed from the provider. The
// provider reports bar times without a zone offset; they are treated as
// UTC on ingestion.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Record is one selected candle, ready for output. TimeET is the bar
// time converted to US Eastern civil time.
type Record struct {
	Symbol  string
	TimeUTC time.Time
	TimeET  time.Time
	Open    float64
	High    float64
	Low     float64
	Close   float64
	Volume  int64
}

const timeLayout = "2006-01-02 15:04:05"

// DateString renders the UTC bar time the way the provider reports it.
func (r Record) DateString() string { return r.TimeUTC.Format(timeLayout) }

// DateETString renders the Eastern bar time with its zone abbreviation.
func (r Record) DateETString() string { return r.TimeET.Format(timeLayout + " MST") }
