package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	now         func() time.Time
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Create adds a listing owned by the calling farmer.
func (srv *productService) Create(ctx context.Context, principal entity.Principal, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := requireRole(principal, entity.RoleFarmer); err != nil {
		return nil, err
	}
	if err := validateProductFields(input.Name, input.Unit, input.UnitPrice, input.Quantity); err != nil {
		return nil, err
	}

	product := &entity.Product{
		FarmerID:  principal.UserID,
		Name:      input.Name,
		Category:  input.Category,
		Unit:      input.Unit,
		UnitPrice: input.UnitPrice,
		Quantity:  input.Quantity,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.Any("farmerID", principal.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("farmerID", principal.UserID))

	return product, nil
}

// Update edits a listing. Only the owning farmer may call it.
func (srv *productService) Update(ctx context.Context, principal entity.Principal, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := requireRole(principal, entity.RoleFarmer); err != nil {
		return nil, err
	}
	if err := validateProductFields(input.Name, input.Unit, input.UnitPrice, input.Quantity); err != nil {
		return nil, err
	}

	product, err := srv.loadOwnedProduct(ctx, principal, productID)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Category = input.Category
	product.Unit = input.Unit
	product.UnitPrice = input.UnitPrice
	product.Quantity = input.Quantity

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product disappeared during update")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// Delete removes a listing. Only the owning farmer may call it.
func (srv *productService) Delete(ctx context.Context, principal entity.Principal, productID uuid.UUID) error {
	if err := requireRole(principal, entity.RoleFarmer); err != nil {
		return err
	}

	if _, err := srv.loadOwnedProduct(ctx, principal, productID); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product disappeared during delete")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID), slog.Any("farmerID", principal.UserID))

	return nil
}

// GetByID returns one listing, visible to any authenticated caller.
func (srv *productService) GetByID(ctx context.Context, principal entity.Principal, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// List returns all listings, visible to any authenticated caller.
func (srv *productService) List(ctx context.Context, principal entity.Principal) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListForFarmer returns the calling farmer's own listings.
func (srv *productService) ListForFarmer(ctx context.Context, principal entity.Principal) ([]*entity.Product, error) {
	if err := requireRole(principal, entity.RoleFarmer); err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindByFarmer(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmer products")
	}

	return products, nil
}

// RecomputeDiscounts applies the age-based discount rule to every listing.
// The rule is a pure function of listing age; this pass runs only when an
// admin triggers it.
func (srv *productService) RecomputeDiscounts(ctx context.Context, principal entity.Principal) (*usecase.RecomputeDiscountsOutput, error) {
	if err := requireRole(principal, entity.RoleAdmin); err != nil {
		return nil, err
	}

	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products for discount recompute")
	}

	now := srv.now()
	output := &usecase.RecomputeDiscountsOutput{Scanned: len(products)}

	for _, product := range products {
		percent := entity.RecomputeDiscount(product, now)
		if percent == product.DiscountPercent {
			continue
		}

		if err := srv.productRepo.UpdateDiscount(ctx, product.ID, percent); err != nil {
			srv.log(ctx).Warn("Failed to update product discount", slog.Any("productID", product.ID), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to update product discount")
		}
		output.Updated++
	}

	srv.log(ctx).Info("Discount recompute finished", slog.Int("scanned", output.Scanned), slog.Int("updated", output.Updated))

	return output, nil
}

// loadOwnedProduct fetches a product and verifies the principal owns it.
// A listing owned by someone else yields forbidden, not not-found: listings
// are public, so hiding their existence buys nothing.
func (srv *productService) loadOwnedProduct(ctx context.Context, principal entity.Principal, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.FarmerID != principal.UserID {
		return nil, domainerrors.ErrForbidden.WrapMessage("product belongs to another farmer")
	}

	return product, nil
}

func validateProductFields(name, unit string, unitPrice float64, quantity int) error {
	switch {
	case name == "":
		return domainerrors.ErrValidationFailed.WrapMessage("product name is required")
	case unit == "":
		return domainerrors.ErrValidationFailed.WrapMessage("product unit is required")
	case unitPrice <= 0:
		return domainerrors.ErrValidationFailed.WrapMessage("unit price must be positive")
	case quantity < 0:
		return domainerrors.ErrValidationFailed.WrapMessage("quantity cannot be negative")
	}

	return nil
}
