package models

import "time"

// PriceQuote is a third-party spot quote. Quotes are presentation data only;
// stale values are kept when a refresh fails.
type PriceQuote struct {
	Symbol       string    `json:"symbol"`
	PriceUSD     float64   `json:"price_usd"`
	Change24hPct float64   `json:"change_24h_pct"`
	UpdatedAt    time.Time `json:"updated_at"`
}
