package handler

import (
	"net/http"

	"harvest/internal/delivery/http/response"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MarketHandler exposes the reference market price feed.
type MarketHandler struct {
	uc usecase.MarketUsecase
}

// NewMarketHandler is the constructor for MarketHandler, injected by Fx.
func NewMarketHandler(uc usecase.MarketUsecase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// Prices handles the market price listing request.
func (h *MarketHandler) Prices(c echo.Context) error {
	prices, err := h.uc.Prices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prices, "")
}
