package usecase

import (
	"context"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a product listing.
type CreateProductInput struct {
	Name      string
	Category  string
	Unit      string
	UnitPrice float64
	Quantity  int
}

// UpdateProductInput defines the data for editing an existing listing.
type UpdateProductInput struct {
	Name      string
	Category  string
	Unit      string
	UnitPrice float64
	Quantity  int
}

// RecomputeDiscountsOutput reports how many listings the discount pass touched.
type RecomputeDiscountsOutput struct {
	Scanned int
	Updated int
}

// ProductUsecase defines the interface for product-listing operations.
// Every operation takes the caller's principal; role and ownership decisions
// happen here, never in the delivery layer.
type ProductUsecase interface {
	// Create adds a listing owned by the calling farmer.
	Create(ctx context.Context, principal entity.Principal, input *CreateProductInput) (*entity.Product, error)

	// Update edits a listing. Only the owning farmer may call it.
	Update(ctx context.Context, principal entity.Principal, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// Delete removes a listing. Only the owning farmer may call it.
	Delete(ctx context.Context, principal entity.Principal, productID uuid.UUID) error

	// GetByID returns one listing, visible to any authenticated caller.
	GetByID(ctx context.Context, principal entity.Principal, productID uuid.UUID) (*entity.Product, error)

	// List returns all listings, visible to any authenticated caller.
	List(ctx context.Context, principal entity.Principal) ([]*entity.Product, error)

	// ListForFarmer returns the calling farmer's own listings.
	ListForFarmer(ctx context.Context, principal entity.Principal) ([]*entity.Product, error)

	// RecomputeDiscounts applies the age-based discount rule to every listing.
	// It is triggered externally by an admin, not by an internal timer.
	RecomputeDiscounts(ctx context.Context, principal entity.Principal) (*RecomputeDiscountsOutput, error)
}
