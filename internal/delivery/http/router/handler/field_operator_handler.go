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

// FieldOperatorHandler holds dependencies for field operator handlers.
type FieldOperatorHandler struct {
	uc     usecase.FieldOperatorUsecase
	logger *slog.Logger
}

// NewFieldOperatorHandler is the constructor for FieldOperatorHandler, injected by Fx.
func NewFieldOperatorHandler(uc usecase.FieldOperatorUsecase, logger *slog.Logger) *FieldOperatorHandler {
	return &FieldOperatorHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns one page of field operators filtered and sorted by query parameters.
func (h *FieldOperatorHandler) List(c echo.Context) error {
	page, err := h.uc.List(c.Request().Context(), listOptionsFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// Get returns a single field operator.
func (h *FieldOperatorHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field operator ID")
	}

	fieldOperator, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, fieldOperator, "")
}

// Submit handles a field operator create or update submission.
func (h *FieldOperatorHandler) Submit(c echo.Context) error {
	var input *usecase.FieldOperatorSubmitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field operator submission")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	sess := deliverycontext.GetSession(c)
	fieldOperator, err := h.uc.Submit(c.Request().Context(), sess, input)
	if err != nil {
		return errors.WithStack(err)
	}

	if input.ID == nil {
		return response.Success(c, http.StatusCreated, fieldOperator, "Field operator created successfully")
	}

	return response.Success(c, http.StatusOK, fieldOperator, "Field operator updated successfully")
}

// Delete removes a field operator.
func (h *FieldOperatorHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field operator ID")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.Delete(c.Request().Context(), sess, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Field operator deleted successfully")
}
