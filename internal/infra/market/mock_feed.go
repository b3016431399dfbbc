// Package market provides the reference price feed. There is no upstream
// exchange; quotes are generated from fixed base prices with a deterministic
// daily fluctuation so the numbers look alive but repeat within a day.
package market

import (
	"hash/fnv"
	"math"
	"sort"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
)

const defaultJitterPercent = 8.0

// basePrice is the anchor quote for one crop.
type basePrice struct {
	unit  string
	price float64
}

// basePrices anchors the feed. Prices are per-unit wholesale reference values.
var basePrices = map[string]basePrice{
	"tomatoes": {unit: "kg", price: 3.20},
	"potatoes": {unit: "kg", price: 1.10},
	"onions":   {unit: "kg", price: 1.45},
	"carrots":  {unit: "kg", price: 1.80},
	"apples":   {unit: "kg", price: 2.60},
	"eggs":     {unit: "dozen", price: 4.50},
	"milk":     {unit: "litre", price: 1.35},
	"honey":    {unit: "jar", price: 7.80},
	"spinach":  {unit: "bundle", price: 2.10},
	"wheat":    {unit: "kg", price: 0.85},
}

// mockFeed implements service.MarketFeed.
type mockFeed struct {
	jitterPercent float64
}

// NewMockFeed creates the mock market feed.
func NewMockFeed(cfg *config.Config) service.MarketFeed {
	jitter := defaultJitterPercent
	if cfg.Market != nil && cfg.Market.JitterPercent > 0 {
		jitter = cfg.Market.JitterPercent
	}

	return &mockFeed{jitterPercent: jitter}
}

// Snapshot returns the quoted prices as of the given instant. Quotes are
// stable within a calendar day and sorted by crop name.
func (f *mockFeed) Snapshot(now time.Time) []entity.MarketPrice {
	day := now.UTC().Format("2006-01-02")

	crops := make([]string, 0, len(basePrices))
	for crop := range basePrices {
		crops = append(crops, crop)
	}
	sort.Strings(crops)

	prices := make([]entity.MarketPrice, 0, len(crops))
	for _, crop := range crops {
		base := basePrices[crop]
		changePct := f.dailyChange(crop, day)
		price := base.price * (1 + changePct/100)

		prices = append(prices, entity.MarketPrice{
			Crop:       crop,
			Unit:       base.unit,
			Price:      math.Round(price*100) / 100,
			ChangePct:  math.Round(changePct*10) / 10,
			RecordedAt: now,
		})
	}

	return prices
}

// dailyChange maps (crop, day) to a fluctuation in [-jitterPercent, +jitterPercent].
func (f *mockFeed) dailyChange(crop string, day string) float64 {
	h := fnv.New64a()
	h.Write([]byte(crop))
	h.Write([]byte(day))

	// Scale the hash onto [-1, 1), then onto the configured band.
	normalized := float64(int64(h.Sum64())) / math.MaxInt64 // in [-1, 1)

	return normalized * f.jitterPercent
}
