package impl

import (
	"context"
	"testing"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	mockRepo "harvest/internal/mocks/repository"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T, orderRepo *mockRepo.MockOrderRepository, productRepo *mockRepo.MockProductRepository) usecase.OrderUsecase {
	t.Helper()

	return NewOrderService(OrderServiceParams{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Logger:      newTestLogger(),
	})
}

func validOrderInput(productID uuid.UUID) *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		ProductID: productID,
		Quantity:  3,
		Delivery: entity.DeliveryDetails{
			Name:    "Pat Jones",
			Phone:   "555-0100",
			Address: "12 Elm Street",
		},
	}
}

func TestOrderService_Create_SnapshotsDiscountedPrice(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	ctx := context.Background()
	principal := consumerPrincipal()
	farmerID := uuid.New()
	productID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{
			ID:              productID,
			FarmerID:        farmerID,
			UnitPrice:       10.00,
			DiscountPercent: 10,
			Quantity:        50,
		}, nil)

	orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			assert.Equal(t, principal.UserID, order.ConsumerID)
			assert.Equal(t, farmerID, order.FarmerID)
			assert.Equal(t, entity.OrderPending, order.Status)
			// 3 units at 10.00 with 10% off.
			assert.InDelta(t, 27.00, order.TotalPrice, 0.001)
			order.ID = uuid.New()
		}).
		Return(nil)

	order, err := service.Create(ctx, principal, validOrderInput(productID))

	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, "Pat Jones", order.Delivery.Name)
}

func TestOrderService_Create_RequiresConsumerRole(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	_, err := service.Create(context.Background(), farmerPrincipal(), validOrderInput(uuid.New()))

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_Create_UnknownProductIsNotFound(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.Create(ctx, consumerPrincipal(), validOrderInput(productID))

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_Create_ValidatesQuantityAndDelivery(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	ctx := context.Background()

	input := validOrderInput(uuid.New())
	input.Quantity = 0
	_, err := service.Create(ctx, consumerPrincipal(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	input = validOrderInput(uuid.New())
	input.Delivery.Address = "  "
	_, err = service.Create(ctx, consumerPrincipal(), input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateStatus_AcceptsPendingOrder(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	ctx := context.Background()
	principal := farmerPrincipal()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, FarmerID: principal.UserID, Status: entity.OrderPending}, nil)

	orderRepo.EXPECT().
		UpdateStatusFrom(ctx, orderID, entity.OrderPending, entity.OrderAccepted, (*string)(nil)).
		Return(nil)

	order, err := service.UpdateStatus(ctx, principal, orderID, &usecase.UpdateOrderStatusInput{Status: entity.OrderAccepted})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderAccepted, order.Status)
}

func TestOrderService_UpdateStatus_RejectionRequiresReason(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	_, err := service.UpdateStatus(context.Background(), farmerPrincipal(), uuid.New(),
		&usecase.UpdateOrderStatusInput{Status: entity.OrderRejected})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateStatus_ConsumerIsForbidden(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	// Only farmers drive order transitions; a consumer is refused before any
	// lookup happens, even on an order they placed themselves.
	_, err := service.UpdateStatus(context.Background(), consumerPrincipal(), uuid.New(),
		&usecase.UpdateOrderStatusInput{Status: entity.OrderAccepted})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateStatus_RejectsPendingOrderWithReason(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	ctx := context.Background()
	principal := farmerPrincipal()
	orderID := uuid.New()
	reason := "sold out at the market"

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, FarmerID: principal.UserID, Status: entity.OrderPending}, nil)

	orderRepo.EXPECT().
		UpdateStatusFrom(ctx, orderID, entity.OrderPending, entity.OrderRejected, &reason).
		Return(nil)

	order, err := service.UpdateStatus(ctx, principal, orderID,
		&usecase.UpdateOrderStatusInput{Status: entity.OrderRejected, Reason: "  " + reason + " "})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderRejected, order.Status)
	require.NotNil(t, order.RejectionReason)
	assert.Equal(t, reason, *order.RejectionReason)
}

func TestOrderService_UpdateStatus_OtherFarmersOrderIsForbidden(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, FarmerID: uuid.New(), Status: entity.OrderPending}, nil)

	_, err := service.UpdateStatus(ctx, farmerPrincipal(), orderID,
		&usecase.UpdateOrderStatusInput{Status: entity.OrderAccepted})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_UpdateStatus_InvalidEdgeIsRejected(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	ctx := context.Background()
	principal := farmerPrincipal()
	orderID := uuid.New()

	// A pending order cannot jump straight to completed.
	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, FarmerID: principal.UserID, Status: entity.OrderPending}, nil)

	_, err := service.UpdateStatus(ctx, principal, orderID,
		&usecase.UpdateOrderStatusInput{Status: entity.OrderCompleted})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrderService_UpdateStatus_LostRaceIsInvalidTransition(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	ctx := context.Background()
	principal := farmerPrincipal()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, FarmerID: principal.UserID, Status: entity.OrderPending}, nil)

	orderRepo.EXPECT().
		UpdateStatusFrom(ctx, orderID, entity.OrderPending, entity.OrderAccepted, (*string)(nil)).
		Return(repository.ErrStatusConflict)

	_, err := service.UpdateStatus(ctx, principal, orderID,
		&usecase.UpdateOrderStatusInput{Status: entity.OrderAccepted})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrderService_UpdateStatus_CompletedOrderIsTerminal(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	ctx := context.Background()
	principal := farmerPrincipal()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, FarmerID: principal.UserID, Status: entity.OrderCompleted}, nil)

	_, err := service.UpdateStatus(ctx, principal, orderID,
		&usecase.UpdateOrderStatusInput{Status: entity.OrderAccepted})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrderService_GetByID_StrangerSeesNotFound(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:         orderID,
			ConsumerID: uuid.New(),
			FarmerID:   uuid.New(),
			Status:     entity.OrderPending,
			CreatedAt:  time.Now(),
		}, nil)

	_, err := service.GetByID(ctx, consumerPrincipal(), orderID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetByID_OwnerSeesOrder(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	ctx := context.Background()
	principal := consumerPrincipal()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, ConsumerID: principal.UserID, FarmerID: uuid.New()}, nil)

	order, err := service.GetByID(ctx, principal, orderID)

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_ListForConsumer_RequiresConsumerRole(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	_, err := service.ListForConsumer(context.Background(), farmerPrincipal())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_ListForFarmer_ReturnsOrders(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newOrderService(t, orderRepo, productRepo)

	ctx := context.Background()
	principal := farmerPrincipal()

	orderRepo.EXPECT().
		FindByFarmer(ctx, principal.UserID).
		Return([]*entity.Order{{FarmerID: principal.UserID}}, nil)

	orders, err := service.ListForFarmer(ctx, principal)

	require.NoError(t, err)
	require.Len(t, orders, 1)
}
