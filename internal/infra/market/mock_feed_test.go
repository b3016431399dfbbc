package market

import (
	"testing"
	"time"

	"harvest/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockFeed_SnapshotIsDeterministicWithinADay(t *testing.T) {
	feed := NewMockFeed(&config.Config{Market: &config.MarketConfig{JitterPercent: 8}})

	morning := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC)

	first := feed.Snapshot(morning)
	second := feed.Snapshot(evening)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Crop, second[i].Crop)
		assert.Equal(t, first[i].Price, second[i].Price)
		assert.Equal(t, first[i].ChangePct, second[i].ChangePct)
	}
}

func TestMockFeed_SnapshotChangesAcrossDays(t *testing.T) {
	feed := NewMockFeed(&config.Config{Market: &config.MarketConfig{JitterPercent: 8}})

	monday := feed.Snapshot(time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC))
	tuesday := feed.Snapshot(time.Date(2026, 3, 17, 12, 0, 0, 0, time.UTC))

	require.Len(t, tuesday, len(monday))

	changed := false
	for i := range monday {
		if monday[i].Price != tuesday[i].Price {
			changed = true
			break
		}
	}
	assert.True(t, changed, "at least one quote should move day over day")
}

func TestMockFeed_ChangeStaysWithinJitterBand(t *testing.T) {
	const jitter = 5.0
	feed := NewMockFeed(&config.Config{Market: &config.MarketConfig{JitterPercent: jitter}})

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, quote := range feed.Snapshot(now) {
		assert.GreaterOrEqual(t, quote.ChangePct, -jitter, "crop %s", quote.Crop)
		assert.LessOrEqual(t, quote.ChangePct, jitter, "crop %s", quote.Crop)
		assert.Positive(t, quote.Price, "crop %s", quote.Crop)
	}
}

func TestMockFeed_DefaultJitterWhenUnconfigured(t *testing.T) {
	feed := NewMockFeed(&config.Config{})

	quotes := feed.Snapshot(time.Now())
	require.NotEmpty(t, quotes)

	for _, quote := range quotes {
		assert.NotEmpty(t, quote.Unit)
	}
}
