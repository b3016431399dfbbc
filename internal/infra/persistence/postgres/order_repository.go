package postgres

import (
	"context"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order with status pending.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product or user reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order violates a data constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.Status = entity.OrderStatus(orderM.Status)
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByConsumer retrieves all orders placed by a consumer, newest first.
func (repo *orderRepository) FindByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("consumer_id = ?", consumerID).
		Order("created_at DESC").
		Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by consumer")
	}

	return toOrderDomains(orderMs), nil
}

// FindByFarmer retrieves all orders against a farmer's listings, newest first.
func (repo *orderRepository) FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by farmer")
	}

	return toOrderDomains(orderMs), nil
}

// UpdateStatusFrom performs the transition write as a single conditional
// UPDATE keyed on the prior status. Zero rows affected means another request
// already moved the order; the caller maps that to a transition conflict.
func (repo *orderRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus, reason *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Updates(map[string]any{
			"status":           to.String(),
			"rejection_reason": reason,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:         data.ID,
		ConsumerID: data.ConsumerID,
		FarmerID:   data.FarmerID,
		ProductID:  data.ProductID,
		Quantity:   data.Quantity,
		TotalPrice: data.TotalPrice,
		Delivery: entity.DeliveryDetails{
			Name:         data.DeliveryName,
			Phone:        data.DeliveryPhone,
			Address:      data.DeliveryAddress,
			Instructions: data.DeliveryInstructions,
		},
		Status:          entity.OrderStatus(data.Status),
		RejectionReason: data.RejectionReason,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toOrderDomains(data []model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(data))
	for i := range data {
		orders = append(orders, toOrderDomain(&data[i]))
	}

	return orders
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:                   data.ID,
		ConsumerID:           data.ConsumerID,
		FarmerID:             data.FarmerID,
		ProductID:            data.ProductID,
		Quantity:             data.Quantity,
		TotalPrice:           data.TotalPrice,
		DeliveryName:         data.Delivery.Name,
		DeliveryPhone:        data.Delivery.Phone,
		DeliveryAddress:      data.Delivery.Address,
		DeliveryInstructions: data.Delivery.Instructions,
		Status:               data.Status.String(),
		RejectionReason:      data.RejectionReason,
	}
}
