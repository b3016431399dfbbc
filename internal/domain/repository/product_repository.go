package repository

import (
	"context"
	"errors"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product-listing persistence.
type ProductRepository interface {
	// Create persists a new product listing.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByFarmer retrieves all listings owned by a farmer, newest first.
	FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.Product, error)

	// List retrieves all listings, newest first.
	List(ctx context.Context) ([]*entity.Product, error)

	// Update modifies an existing product listing.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product listing (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// UpdateDiscount sets the discount percent on a single listing.
	UpdateDiscount(ctx context.Context, id uuid.UUID, percent float64) error
}
