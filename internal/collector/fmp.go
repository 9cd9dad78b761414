package collector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"CandleClerk/internal/model"
)

// FMPFetcher implements Fetcher using the Financial Modeling Prep REST API.
type FMPFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewFMPFetcher creates a new fetcher with optional proxy support.
func NewFMPFetcher(baseURL, apiKey, proxyURL string, timeout time.Duration) *FMPFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &FMPFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *FMPFetcher) Name() string { return "fmp" }

// fmpBar is the expected JSON shape of one historical-chart element.
type fmpBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// fmpTimeLayout matches the provider's bar times, which carry no zone
// offset and are taken as UTC.
const fmpTimeLayout = "2006-01-02 15:04:05"

// FetchIntraday requests the recent bar window for one symbol. It makes a
// single attempt; there is no retry, and rate limiting is the caller's job.
// Bars are returned in the provider's original order.
func (f *FMPFetcher) FetchIntraday(symbol, interval string) ([]model.Bar, error) {
	endpoint := fmt.Sprintf("%s/historical-chart/%s/%s?apikey=%s",
		f.BaseURL, url.PathEscape(interval), url.PathEscape(symbol), url.QueryEscape(f.APIKey))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	var raw []fmpBar
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no data returned")
	}

	bars := make([]model.Bar, 0, len(raw))
	for _, rb := range raw {
		ts, err := time.ParseInLocation(fmpTimeLayout, rb.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse bar time %q: %w", rb.Date, err)
		}
		bars = append(bars, model.Bar{
			Time:   ts,
			Open:   rb.Open,
			High:   rb.High,
			Low:    rb.Low,
			Close:  rb.Close,
			Volume: rb.Volume,
		})
	}
	return bars, nil
}
