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

func newProductService(t *testing.T, productRepo *mockRepo.MockProductRepository) *productService {
	t.Helper()

	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Logger:      newTestLogger(),
	})

	return service.(*productService)
}

func TestProductService_Create_SetsOwnership(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(t, productRepo)

	ctx := context.Background()
	principal := farmerPrincipal()

	productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			assert.Equal(t, principal.UserID, product.FarmerID)
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := service.Create(ctx, principal, &usecase.CreateProductInput{
		Name:      "Roma Tomatoes",
		Category:  "vegetables",
		Unit:      "kg",
		UnitPrice: 3.50,
		Quantity:  120,
	})

	require.NoError(t, err)
	assert.Equal(t, principal.UserID, product.FarmerID)
}

func TestProductService_Create_RequiresFarmerRole(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(t, productRepo)

	_, err := service.Create(context.Background(), consumerPrincipal(), &usecase.CreateProductInput{
		Name: "Apples", Unit: "kg", UnitPrice: 2.0, Quantity: 10,
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_Create_ValidatesFields(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(t, productRepo)

	_, err := service.Create(context.Background(), farmerPrincipal(), &usecase.CreateProductInput{
		Name: "Apples", Unit: "kg", UnitPrice: -1, Quantity: 10,
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_Update_OtherFarmersListingIsForbidden(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(t, productRepo)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, FarmerID: uuid.New()}, nil)

	_, err := service.Update(ctx, farmerPrincipal(), productID, &usecase.UpdateProductInput{
		Name: "Apples", Unit: "kg", UnitPrice: 2.0, Quantity: 10,
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_Delete_RemovesOwnListing(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(t, productRepo)

	ctx := context.Background()
	principal := farmerPrincipal()
	productID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, FarmerID: principal.UserID}, nil)

	productRepo.EXPECT().
		Delete(ctx, productID).
		Return(nil)

	err := service.Delete(ctx, principal, productID)

	assert.NoError(t, err)
}

func TestProductService_GetByID_UnknownProductIsNotFound(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(t, productRepo)

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.GetByID(ctx, consumerPrincipal(), productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_RecomputeDiscounts_UpdatesAgedListings(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(t, productRepo)

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	ctx := context.Background()
	fresh := &entity.Product{ID: uuid.New(), CreatedAt: now.Add(-24 * time.Hour)}
	aged := &entity.Product{ID: uuid.New(), CreatedAt: now.Add(-20 * 24 * time.Hour)}
	stale := &entity.Product{ID: uuid.New(), CreatedAt: now.Add(-40 * 24 * time.Hour), DiscountPercent: 10}

	productRepo.EXPECT().
		List(ctx).
		Return([]*entity.Product{fresh, aged, stale}, nil)

	productRepo.EXPECT().
		UpdateDiscount(ctx, aged.ID, 10.0).
		Return(nil)

	productRepo.EXPECT().
		UpdateDiscount(ctx, stale.ID, 25.0).
		Return(nil)

	output, err := service.RecomputeDiscounts(ctx, adminPrincipal())

	require.NoError(t, err)
	assert.Equal(t, 3, output.Scanned)
	assert.Equal(t, 2, output.Updated)
}

func TestProductService_RecomputeDiscounts_RequiresAdminRole(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(t, productRepo)

	_, err := service.RecomputeDiscounts(context.Background(), farmerPrincipal())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_ListForFarmer_ReturnsOwnListings(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := newProductService(t, productRepo)

	ctx := context.Background()
	principal := farmerPrincipal()

	productRepo.EXPECT().
		FindByFarmer(ctx, principal.UserID).
		Return([]*entity.Product{{FarmerID: principal.UserID}}, nil)

	products, err := service.ListForFarmer(ctx, principal)

	require.NoError(t, err)
	require.Len(t, products, 1)
}
