package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// MarketUsecase exposes the reference market price feed.
type MarketUsecase interface {
	// Prices returns the current quotes for common crops.
	Prices(ctx context.Context) ([]entity.MarketPrice, error)
}
