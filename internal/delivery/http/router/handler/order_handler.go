package handler

import (
	"log/slog"
	"net/http"

	"harvest/internal/delivery/http/response"
	"harvest/internal/domain/entity"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// createOrderRequest is the payload for placing an order.
type createOrderRequest struct {
	ProductID    string `json:"productId" validate:"required,uuid"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address" validate:"required"`
	Instructions string `json:"instructions"`
}

// updateOrderStatusRequest is the payload for a farmer transition.
type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected completed"`
	Reason string `json:"reason"`
}

// Create handles the order placement request.
func (h *OrderHandler) Create(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	order, err := h.uc.Create(c.Request().Context(), principal, &usecase.CreateOrderInput{
		ProductID: productID,
		Quantity:  req.Quantity,
		Delivery: entity.DeliveryDetails{
			Name:         req.Name,
			Phone:        req.Phone,
			Address:      req.Address,
			Instructions: req.Instructions,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// GetByID handles fetching a single order.
func (h *OrderHandler) GetByID(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.GetByID(c.Request().Context(), principal, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// List handles listing orders for the calling consumer or farmer, selected by
// the role query parameter.
func (h *OrderHandler) List(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var orders []*entity.Order
	switch c.QueryParam("role") {
	case "farmer":
		orders, err = h.uc.ListForFarmer(c.Request().Context(), principal)
	case "consumer", "":
		orders, err = h.uc.ListForConsumer(c.Request().Context(), principal)
	default:
		return response.BadRequest(c, "INVALID_INPUT", "role must be consumer or farmer")
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// UpdateStatus handles the farmer transition request.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), principal, orderID, &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatus(req.Status),
		Reason: req.Reason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}
