package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Create places a pending order for the calling consumer. The total price is
// the product's effective unit price at this moment times the quantity; it is
// written once and never recomputed, whatever later happens to the listing.
func (srv *orderService) Create(ctx context.Context, principal entity.Principal, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := requireRole(principal, entity.RoleConsumer); err != nil {
		return nil, err
	}
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "ordered product not found")
		}

		return nil, errors.Wrap(err, "failed to find ordered product")
	}

	totalPrice := math.Round(product.EffectiveUnitPrice()*float64(input.Quantity)*100) / 100

	order := &entity.Order{
		ConsumerID: principal.UserID,
		FarmerID:   product.FarmerID,
		ProductID:  product.ID,
		Quantity:   input.Quantity,
		TotalPrice: totalPrice,
		Delivery:   input.Delivery,
		Status:     entity.OrderPending,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Warn("Failed to create order", slog.Any("consumerID", principal.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Any("consumerID", principal.UserID),
		slog.Any("productID", product.ID))

	return order, nil
}

// GetByID returns one order. Orders are private: a caller who is neither the
// ordering consumer nor the fulfilling farmer learns nothing, not even that
// the ID exists.
func (srv *orderService) GetByID(ctx context.Context, principal entity.Principal, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.ConsumerID != principal.UserID && order.FarmerID != principal.UserID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
	}

	return order, nil
}

// ListForConsumer returns the calling consumer's orders, newest first.
func (srv *orderService) ListForConsumer(ctx context.Context, principal entity.Principal) ([]*entity.Order, error) {
	if err := requireRole(principal, entity.RoleConsumer); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindByConsumer(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list consumer orders")
	}

	return orders, nil
}

// ListForFarmer returns orders against the calling farmer's listings, newest first.
func (srv *orderService) ListForFarmer(ctx context.Context, principal entity.Principal) ([]*entity.Order, error) {
	if err := requireRole(principal, entity.RoleFarmer); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindByFarmer(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmer orders")
	}

	return orders, nil
}

// UpdateStatus moves an order along the farmer-driven state machine. The gate
// order is fixed: role, then ownership, then status edge. The write itself is
// a conditional update on the prior status, so two concurrent transitions on
// one order cannot both win.
func (srv *orderService) UpdateStatus(ctx context.Context, principal entity.Principal, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if err := requireRole(principal, entity.RoleFarmer); err != nil {
		return nil, err
	}

	if !input.Status.IsValid() || input.Status == entity.OrderPending {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown target order status")
	}

	var reason *string
	if input.Status == entity.OrderRejected {
		trimmed := strings.TrimSpace(input.Reason)
		if trimmed == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("a rejection reason is required")
		}
		reason = &trimmed
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.FarmerID != principal.UserID {
		return nil, domainerrors.ErrForbidden.WrapMessage("order belongs to another farmer")
	}

	if !order.Status.CanTransitionTo(input.Status) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition,
			"cannot move order from %s to %s", order.Status, input.Status)
	}

	if err := srv.orderRepo.UpdateStatusFrom(ctx, orderID, order.Status, input.Status, reason); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			srv.log(ctx).Warn("Order transition lost the race",
				slog.Any("orderID", orderID), slog.Any("farmerID", principal.UserID))

			return nil, errors.Wrap(domainerrors.ErrInvalidTransition, "order status changed concurrently")
		}

		return nil, errors.Wrap(err, "failed to update order status")
	}

	order.Status = input.Status
	order.RejectionReason = reason

	srv.log(ctx).Info("Order status updated",
		slog.Any("orderID", orderID),
		slog.String("status", input.Status.String()),
		slog.Any("farmerID", principal.UserID))

	return order, nil
}

func validateOrderInput(input *usecase.CreateOrderInput) error {
	switch {
	case input.Quantity <= 0:
		return domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	case strings.TrimSpace(input.Delivery.Name) == "":
		return domainerrors.ErrValidationFailed.WrapMessage("delivery name is required")
	case strings.TrimSpace(input.Delivery.Phone) == "":
		return domainerrors.ErrValidationFailed.WrapMessage("delivery phone is required")
	case strings.TrimSpace(input.Delivery.Address) == "":
		return domainerrors.ErrValidationFailed.WrapMessage("delivery address is required")
	}

	return nil
}
