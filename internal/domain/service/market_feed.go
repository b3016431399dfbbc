package service

import (
	"time"

	"harvest/internal/domain/entity"
)

// MarketFeed produces reference market prices for common crops. The only
// implementation is a mock generator; quotes are advisory display data.
type MarketFeed interface {
	// Snapshot returns the quoted prices as of the given instant.
	Snapshot(now time.Time) []entity.MarketPrice
}
