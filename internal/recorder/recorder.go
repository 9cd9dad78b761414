package recorder

import (
	"time"

	"CandleClerk/internal/model"
)

// RunSummary describes one completed batch run.
type RunSummary struct {
	Mode        string
	StartedAt   time.Time
	SymbolCount int
	RecordCount int
	CSVPath     string
}

// Recorder persists run history for later analysis.
type Recorder interface {
	RecordRun(sum *RunSummary, records []model.Record) error
	Close() error
}
