package impl

import (
	"context"
	"time"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
	"harvest/internal/usecase"
)

// marketService implements the MarketUsecase interface.
type marketService struct {
	feed service.MarketFeed
	now  func() time.Time
}

// NewMarketService is the constructor for marketService.
func NewMarketService(feed service.MarketFeed) usecase.MarketUsecase {
	return &marketService{
		feed: feed,
		now:  time.Now,
	}
}

// Prices returns the current quotes for common crops.
func (srv *marketService) Prices(ctx context.Context) ([]entity.MarketPrice, error) {
	return srv.feed.Snapshot(srv.now()), nil
}
