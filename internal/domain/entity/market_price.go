package entity

import "time"

// MarketPrice is one quoted reference price from the market feed. Quotes are
// generated on demand and never persisted.
type MarketPrice struct {
	Crop       string    `json:"crop"`
	Unit       string    `json:"unit"`
	Price      float64   `json:"price"`
	ChangePct  float64   `json:"changePct"` // Day-over-day change, percent.
	RecordedAt time.Time `json:"recordedAt"`
}
