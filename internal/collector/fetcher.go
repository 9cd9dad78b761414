package collector

import "CandleClerk/internal/model"

// Fetcher defines the interface for fetching intraday market data.
type Fetcher interface {
	FetchIntraday(symbol, interval string) ([]model.Bar, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars map[string][]model.Bar
	Errs map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchIntraday(symbol, _ string) ([]model.Bar, error) {
	if err := m.Errs[symbol]; err != nil {
		return nil, err
	}
	return m.Bars[symbol], nil
}
