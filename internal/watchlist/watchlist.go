package watchlist

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
)

// Source says where the symbol list came from.
type Source int

const (
	SourceOverride Source = iota // explicit comma-separated override
	SourceFile                   // watchlist file on disk
	SourceDefault                // built-in fallback, file was missing
)

func (s Source) String() string {
	switch s {
	case SourceOverride:
		return "override"
	case SourceFile:
		return "file"
	default:
		return "default"
	}
}

// defaultSymbols is used when no override is given and the watchlist
// file does not exist.
var defaultSymbols = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}

// List is an ordered set of ticker symbols plus its provenance.
// Symbols are not deduplicated; the input source owns uniqueness.
type List struct {
	Symbols []string
	Source  Source
	Path    string
}

// Load resolves the symbol list. A non-empty override wins; otherwise the
// watchlist file at path is parsed line by line (`#` starts a comment,
// whole-line or trailing). A missing file falls back to the built-in
// default list with a warning, not an error.
func Load(override, path string) (List, error) {
	if strings.TrimSpace(override) != "" {
		return List{Symbols: splitOverride(override), Source: SourceOverride}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[WARN] watchlist %s not found, using default stock list", path)
			return List{Symbols: append([]string(nil), defaultSymbols...), Source: SourceDefault}, nil
		}
		return List{}, fmt.Errorf("open watchlist: %w", err)
	}
	defer f.Close()

	var symbols []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		symbol, _, _ := strings.Cut(line, "#")
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if symbol != "" {
			symbols = append(symbols, symbol)
		}
	}
	if err := scanner.Err(); err != nil {
		return List{}, fmt.Errorf("read watchlist: %w", err)
	}
	return List{Symbols: symbols, Source: SourceFile, Path: path}, nil
}

func splitOverride(override string) []string {
	var symbols []string
	for _, part := range strings.Split(override, ",") {
		symbol := strings.ToUpper(strings.TrimSpace(part))
		if symbol != "" {
			symbols = append(symbols, symbol)
		}
	}
	return symbols
}
