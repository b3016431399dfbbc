package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents one produce listing owned by a farmer.
type Product struct {
	ID              uuid.UUID // The unique ID of this listing.
	FarmerID        uuid.UUID // The farmer who owns and fulfils this listing.
	Name            string    // Produce name, e.g. "Roma Tomatoes".
	Category        string    // Coarse grouping, e.g. "vegetables", "fruits", "dairy".
	Unit            string    // Sale unit, e.g. "kg", "dozen", "bundle".
	UnitPrice       float64   // Current price per unit. Orders snapshot this at creation.
	Quantity        int       // Units currently available for sale.
	DiscountPercent float64   // Age-based discount, recomputed by an external trigger.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EffectiveUnitPrice returns the unit price after the current discount.
func (p *Product) EffectiveUnitPrice() float64 {
	return p.UnitPrice * (1 - p.DiscountPercent/100)
}

// Discount tiers by listing age. Older stock is discounted to move it.
const (
	discountAfter        = 14 * 24 * time.Hour
	steeperDiscountAfter = 30 * 24 * time.Hour

	agedDiscountPercent  = 10.0
	staleDiscountPercent = 25.0
)

// RecomputeDiscount returns the discount percent a product should carry at the
// given instant. It is a pure function of the listing age so the caller decides
// when recomputation happens; the domain holds no timers.
func RecomputeDiscount(product *Product, now time.Time) float64 {
	age := now.Sub(product.CreatedAt)
	switch {
	case age >= steeperDiscountAfter:
		return staleDiscountPercent
	case age >= discountAfter:
		return agedDiscountPercent
	default:
		return 0
	}
}
