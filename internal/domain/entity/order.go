package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of a consumer order.
type OrderStatus string

const (
	// OrderPending means the order awaits the farmer's decision.
	OrderPending OrderStatus = "pending"
	// OrderAccepted means the farmer committed to fulfil the order.
	// It is transient but carries no timeout; an order may stay accepted indefinitely.
	OrderAccepted OrderStatus = "accepted"
	// OrderRejected is a terminal state; a rejection reason is always recorded.
	OrderRejected OrderStatus = "rejected"
	// OrderCompleted is a terminal state reached after delivery.
	OrderCompleted OrderStatus = "completed"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderRejected, OrderCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the edge (s, next) is in the order state
// machine. Only the farmer-driven edges exist: pending->accepted,
// pending->rejected and accepted->completed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderAccepted || next == OrderRejected
	case OrderAccepted:
		return next == OrderCompleted
	default:
		return false
	}
}

// DeliveryDetails is the contact and address snapshot taken when an order is
// created. It is copied from the consumer's input, never re-derived from the
// profile afterwards.
type DeliveryDetails struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Instructions string `json:"instructions,omitempty"`
}

// Order represents one consumer purchase request against a farmer's listing.
type Order struct {
	ID              uuid.UUID       // The unique ID of this order.
	ConsumerID      uuid.UUID       // The consumer who placed the order.
	FarmerID        uuid.UUID       // The farmer who owns the ordered product.
	ProductID       uuid.UUID       // The ordered product listing.
	Quantity        int             // Ordered units. Always positive.
	TotalPrice      float64         // Snapshot of quantity x unit price at creation. Never recomputed.
	Delivery        DeliveryDetails // Delivery snapshot taken at creation.
	Status          OrderStatus     // pending on creation.
	RejectionReason *string         // Non-nil iff Status is rejected.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
