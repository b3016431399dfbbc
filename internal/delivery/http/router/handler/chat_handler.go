package handler

import (
	"log/slog"
	"net/http"

	"harvest/internal/delivery/http/response"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for the chat assistant endpoint.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		uc:     uc,
		logger: logger,
	}
}

// askRequest is the payload for a chat question.
type askRequest struct {
	Question string `json:"question" validate:"required"`
}

// Ask handles one chat question.
func (h *ChatHandler) Ask(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req askRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	answer, err := h.uc.Ask(c.Request().Context(), principal, &usecase.AskInput{Question: req.Question})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, answer, "")
}
