package handler

import (
	"log/slog"
	"net/http"

	"harvest/internal/delivery/http/response"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product-listing handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// productRequest is the payload for creating or updating a listing.
type productRequest struct {
	Name      string  `json:"name" validate:"required"`
	Category  string  `json:"category"`
	Unit      string  `json:"unit" validate:"required"`
	UnitPrice float64 `json:"unitPrice" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"gte=0"`
}

// Create handles the product creation request.
func (h *ProductHandler) Create(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Create(c.Request().Context(), principal, &usecase.CreateProductInput{
		Name:      req.Name,
		Category:  req.Category,
		Unit:      req.Unit,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update handles the product update request.
func (h *ProductHandler) Update(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Update(c.Request().Context(), principal, productID, &usecase.UpdateProductInput{
		Name:      req.Name,
		Category:  req.Category,
		Unit:      req.Unit,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete handles the product deletion request.
func (h *ProductHandler) Delete(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.Delete(c.Request().Context(), principal, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted successfully")
}

// GetByID handles fetching a single listing.
func (h *ProductHandler) GetByID(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetByID(c.Request().Context(), principal, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// List handles browsing all listings.
func (h *ProductHandler) List(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	products, err := h.uc.List(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// ListOwn handles listing the calling farmer's own products.
func (h *ProductHandler) ListOwn(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	products, err := h.uc.ListForFarmer(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// RecomputeDiscounts handles the admin-triggered discount pass.
func (h *ProductHandler) RecomputeDiscounts(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RecomputeDiscounts(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Discount recompute finished")
}
