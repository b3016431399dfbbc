package repository

import (
	"context"
	"errors"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create persists a new order with status pending.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByConsumer retrieves all orders placed by a consumer, newest first.
	FindByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Order, error)

	// FindByFarmer retrieves all orders against a farmer's listings, newest first.
	FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatusFrom performs the conditional transition write: the status
	// and reason are set only if the stored status still equals from. Returns
	// ErrStatusConflict when zero rows match, so concurrent transitions on the
	// same order serialize without locks.
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus, reason *string) error
}
