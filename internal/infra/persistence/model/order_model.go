package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Delivery details are a snapshot taken
// at creation; the total price is fixed then and never recomputed. Rows are
// never deleted.
type OrderModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConsumerID           uuid.UUID `gorm:"type:uuid;not null;index"`
	FarmerID             uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity             int       `gorm:"not null"`
	TotalPrice           float64   `gorm:"type:decimal(12,2);not null"`
	DeliveryName         string    `gorm:"type:varchar(100);not null"`
	DeliveryPhone        string    `gorm:"type:varchar(30);not null"`
	DeliveryAddress      string    `gorm:"type:text;not null"`
	DeliveryInstructions string    `gorm:"type:text"`
	Status               string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectionReason      *string   `gorm:"type:text"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
