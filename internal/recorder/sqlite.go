package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"CandleClerk/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so ad-hoc queries can read while a run writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at   INTEGER NOT NULL,
			mode         TEXT,
			symbol_count INTEGER,
			record_count INTEGER,
			csv_path     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at)`,

		`CREATE TABLE IF NOT EXISTS candles (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    INTEGER NOT NULL REFERENCES runs(id),
			symbol    TEXT NOT NULL,
			ts_utc    INTEGER NOT NULL,
			date_et   TEXT,
			open      REAL,
			high      REAL,
			low       REAL,
			close     REAL,
			volume    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candles_symbol_ts ON candles(symbol, ts_utc)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun stores the run summary and its selected candles atomically.
func (r *SQLiteRecorder) RecordRun(sum *RunSummary, records []model.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs
		(started_at, mode, symbol_count, record_count, csv_path)
		VALUES (?,?,?,?,?)`,
		sum.StartedAt.Unix(), sum.Mode, sum.SymbolCount, sum.RecordCount, sum.CSVPath,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, rec := range records {
		if _, err := tx.Exec(`INSERT INTO candles
			(run_id, symbol, ts_utc, date_et, open, high, low, close, volume)
			VALUES (?,?,?,?,?,?,?,?,?)`,
			runID, rec.Symbol, rec.TimeUTC.Unix(), rec.DateETString(),
			rec.Open, rec.High, rec.Low, rec.Close, rec.Volume,
		); err != nil {
			return fmt.Errorf("insert candle %s: %w", rec.Symbol, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
