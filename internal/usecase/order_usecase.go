package usecase

import (
	"context"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput defines a consumer's purchase request. Delivery details are
// snapshotted onto the order as given here.
type CreateOrderInput struct {
	ProductID uuid.UUID
	Quantity  int
	Delivery  entity.DeliveryDetails
}

// UpdateOrderStatusInput defines a farmer's transition request on an order.
// Reason is required when Status is rejected and ignored otherwise.
type UpdateOrderStatusInput struct {
	Status entity.OrderStatus
	Reason string
}

// OrderUsecase defines the order fulfilment workflow.
type OrderUsecase interface {
	// Create places a pending order for the calling consumer. The total price
	// is computed from the product's effective unit price at this moment and
	// never recomputed afterwards.
	Create(ctx context.Context, principal entity.Principal, input *CreateOrderInput) (*entity.Order, error)

	// GetByID returns one order. Only the ordering consumer or the fulfilling
	// farmer can see it; anyone else gets not-found.
	GetByID(ctx context.Context, principal entity.Principal, orderID uuid.UUID) (*entity.Order, error)

	// ListForConsumer returns the calling consumer's orders, newest first.
	ListForConsumer(ctx context.Context, principal entity.Principal) ([]*entity.Order, error)

	// ListForFarmer returns orders against the calling farmer's listings, newest first.
	ListForFarmer(ctx context.Context, principal entity.Principal) ([]*entity.Order, error)

	// UpdateStatus moves an order along the farmer-driven state machine:
	// pending->accepted, pending->rejected, accepted->completed. Concurrent
	// conflicting transitions serialize; losers receive a transition conflict.
	UpdateStatus(ctx context.Context, principal entity.Principal, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)
}
