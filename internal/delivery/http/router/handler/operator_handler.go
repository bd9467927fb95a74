package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OperatorHandler holds dependencies for operator-related handlers.
type OperatorHandler struct {
	uc     usecase.OperatorUsecase
	logger *slog.Logger
}

// NewOperatorHandler is the constructor for OperatorHandler, injected by Fx.
func NewOperatorHandler(uc usecase.OperatorUsecase, logger *slog.Logger) *OperatorHandler {
	return &OperatorHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns one page of operators filtered and sorted by query parameters.
func (h *OperatorHandler) List(c echo.Context) error {
	page, err := h.uc.List(c.Request().Context(), listOptionsFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// Get returns a single operator.
func (h *OperatorHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid operator ID")
	}

	operator, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, operator, "")
}

// Submit handles an operator create or update submission.
func (h *OperatorHandler) Submit(c echo.Context) error {
	var input *usecase.OperatorSubmitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid operator submission")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	sess := deliverycontext.GetSession(c)
	operator, err := h.uc.Submit(c.Request().Context(), sess, input)
	if err != nil {
		return errors.WithStack(err)
	}

	if input.ID == nil {
		return response.Success(c, http.StatusCreated, operator, "Operator created successfully")
	}

	return response.Success(c, http.StatusOK, operator, "Operator updated successfully")
}

// Delete removes an operator.
func (h *OperatorHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid operator ID")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.Delete(c.Request().Context(), sess, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Operator deleted successfully")
}
