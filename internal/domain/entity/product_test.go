package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeDiscount_TiersByListingAge(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		age  time.Duration
		want float64
	}{
		{"fresh listing", 24 * time.Hour, 0},
		{"just under two weeks", 14*24*time.Hour - time.Minute, 0},
		{"exactly two weeks", 14 * 24 * time.Hour, 10},
		{"three weeks", 21 * 24 * time.Hour, 10},
		{"exactly thirty days", 30 * 24 * time.Hour, 25},
		{"two months", 60 * 24 * time.Hour, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product := &Product{CreatedAt: now.Add(-tc.age)}
			assert.Equal(t, tc.want, RecomputeDiscount(product, now))
		})
	}
}

func TestProduct_EffectiveUnitPrice(t *testing.T) {
	product := &Product{UnitPrice: 10, DiscountPercent: 25}
	assert.InDelta(t, 7.50, product.EffectiveUnitPrice(), 0.001)

	product = &Product{UnitPrice: 10}
	assert.InDelta(t, 10.0, product.EffectiveUnitPrice(), 0.001)
}
