package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"CandleClerk/internal/batch"
	"CandleClerk/internal/calendar"
	"CandleClerk/internal/collector"
	"CandleClerk/internal/config"
	"CandleClerk/internal/model"
	"CandleClerk/internal/notifier"
	"CandleClerk/internal/recorder"
	"CandleClerk/internal/report"
	"CandleClerk/internal/watchlist"
	"CandleClerk/internal/window"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CandleClerk starting...")

	// Optional .env for local runs; real deployments set env directly.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	mode, ok := model.ParseMode(cfg.Fetch.Mode)
	if !ok {
		log.Printf("[WARN] unknown fetch mode %q, defaulting to %s", cfg.Fetch.Mode, mode)
	}

	list, err := watchlist.Load(cfg.Fetch.Symbols, cfg.Fetch.WatchlistFile)
	if err != nil {
		log.Fatalf("[FATAL] load watchlist: %v", err)
	}
	log.Printf("[INFO] %d symbols (source: %s)", len(list.Symbols), list.Source)

	sel, err := window.NewSelector()
	if err != nil {
		log.Fatalf("[FATAL] init selector: %v", err)
	}

	now := time.Now().In(sel.Location)
	dates := calendar.PlanDates(mode, now)

	fetcher := collector.NewFMPFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy, cfg.Timeout())
	log.Printf("[INFO] data source: %s, mode: %s, target dates: %d", fetcher.Name(), mode, len(dates))

	runner := &batch.Runner{
		Fetcher:  fetcher,
		Selector: sel,
		Interval: cfg.DataSource.Interval,
		Delay:    cfg.Delay(),
	}
	records := runner.Run(list.Symbols, dates)

	// Init recorder before the empty check so failed runs land in history too.
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	writer := &report.Writer{Dir: cfg.Output.Dir}
	csvPath, reportErr := writer.Write(records, mode, now)

	sum := &recorder.RunSummary{
		Mode:        string(mode),
		StartedAt:   now,
		SymbolCount: len(list.Symbols),
		RecordCount: len(records),
		CSVPath:     csvPath,
	}
	if err := rec.RecordRun(sum, records); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	if err := rec.Close(); err != nil {
		log.Printf("[ERROR] close recorder: %v", err)
	}

	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn := notifier.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		if err := tn.SendWithRetry(ctx, notifier.FormatRunReport(sum, records), 3); err != nil {
			log.Printf("[ERROR] send notification: %v", err)
		}
		cancel()
	}

	if reportErr != nil {
		log.Printf("[ERROR] report: %v", reportErr)
		os.Exit(1)
	}
	log.Printf("[INFO] %d candles saved to %s", len(records), csvPath)
	report.Preview(os.Stdout, records)
}
