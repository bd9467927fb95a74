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

// StoreHandler holds dependencies for store-related handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns one page of stores filtered and sorted by query parameters.
func (h *StoreHandler) List(c echo.Context) error {
	page, err := h.uc.List(c.Request().Context(), listOptionsFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// Get returns a single store.
func (h *StoreHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store ID")
	}

	store, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "")
}

// Submit handles a store create or update submission.
func (h *StoreHandler) Submit(c echo.Context) error {
	var input *usecase.StoreSubmitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store submission")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	sess := deliverycontext.GetSession(c)
	store, err := h.uc.Submit(c.Request().Context(), sess, input)
	if err != nil {
		return errors.WithStack(err)
	}

	if input.ID == nil {
		return response.Success(c, http.StatusCreated, store, "Store created successfully")
	}

	return response.Success(c, http.StatusOK, store, "Store updated successfully")
}

// Delete removes a store.
func (h *StoreHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store ID")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.Delete(c.Request().Context(), sess, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Store deleted successfully")
}
