package impl

import (
	"context"
	"testing"
	"time"

	"harvest/internal/domain/entity"
	mockSvc "harvest/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarketService_Prices_ReturnsFeedSnapshot(t *testing.T) {
	feed := mockSvc.NewMockMarketFeed(t)
	service := NewMarketService(feed)

	quotes := []entity.MarketPrice{
		{Crop: "tomatoes", Unit: "kg", Price: 3.10, ChangePct: -3.1},
		{Crop: "wheat", Unit: "kg", Price: 0.88, ChangePct: 3.5},
	}

	feed.EXPECT().
		Snapshot(mock.AnythingOfType("time.Time")).
		Return(quotes)

	prices, err := service.Prices(context.Background())

	require.NoError(t, err)
	assert.Equal(t, quotes, prices)
}

func TestMarketService_Prices_UsesCurrentTime(t *testing.T) {
	feed := mockSvc.NewMockMarketFeed(t)
	service := NewMarketService(feed).(*marketService)

	fixed := time.Date(2026, 7, 4, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	feed.EXPECT().
		Snapshot(fixed).
		Return(nil)

	_, err := service.Prices(context.Background())

	require.NoError(t, err)
}
