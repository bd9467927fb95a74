package functions

import (
	"log/slog"
	"net/http"

	deliverycontext "backoffice/internal/delivery/context"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// deleteRequest is the wire payload of every delete function.
type deleteRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// Handler exposes the privileged entity mutations as functions. The response
// contract is fixed: {"message": ..., "<entity>": row} on success and
// {"error": ...} on failure, matching what the console client expects.
type Handler struct {
	uc     usecase.MutatorUsecase
	logger *slog.Logger
}

// NewHandler is the constructor for the functions Handler, injected by Fx.
func NewHandler(uc usecase.MutatorUsecase, logger *slog.Logger) *Handler {
	return &Handler{
		uc:     uc,
		logger: logger,
	}
}

// fail writes the failure envelope, logging anything that is not a domain error.
func (h *Handler) fail(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.HTTPCode(), echo.Map{"error": appErr.Message()})
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	logger.Error("Function failed",
		slog.String("path", c.Request().URL.Path),
		slog.String("error", err.Error()),
	)

	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// CreateOperator provisions an identity and inserts the operator profile.
func (h *Handler) CreateOperator(c echo.Context) error {
	var payload *service.CreateOperatorPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	if err := c.Validate(payload); err != nil {
		return h.fail(c, err)
	}

	operator, err := h.uc.CreateOperator(c.Request().Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Operator created successfully",
		"operator": operator,
	})
}

// UpdateOperator updates the operator profile fields.
func (h *Handler) UpdateOperator(c echo.Context) error {
	var payload *service.UpdateOperatorPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	if err := c.Validate(payload); err != nil {
		return h.fail(c, err)
	}

	operator, err := h.uc.UpdateOperator(c.Request().Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Operator updated successfully",
		"operator": operator,
	})
}

// DeleteOperator removes the operator profile and its identity.
func (h *Handler) DeleteOperator(c echo.Context) error {
	var payload *deleteRequest
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	if err := c.Validate(payload); err != nil {
		return h.fail(c, err)
	}

	if err := h.uc.DeleteOperator(c.Request().Context(), payload.ID); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Operator deleted successfully"})
}

// CreateFieldOperator provisions an identity and inserts the field operator profile.
func (h *Handler) CreateFieldOperator(c echo.Context) error {
	var payload *service.CreateFieldOperatorPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	if err := c.Validate(payload); err != nil {
		return h.fail(c, err)
	}

	fieldOperator, err := h.uc.CreateFieldOperator(c.Request().Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":        "Field operator created successfully",
		"field_operator": fieldOperator,
	})
}

// UpdateFieldOperator updates the field operator profile fields.
func (h *Handler) UpdateFieldOperator(c echo.Context) error {
	var payload *service.UpdateFieldOperatorPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	if err := c.Validate(payload); err != nil {
		return h.fail(c, err)
	}

	fieldOperator, err := h.uc.UpdateFieldOperator(c.Request().Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":        "Field operator updated successfully",
		"field_operator": fieldOperator,
	})
}

// DeleteFieldOperator removes the field operator profile and its identity.
func (h *Handler) DeleteFieldOperator(c echo.Context) error {
	var payload *deleteRequest
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	if err := c.Validate(payload); err != nil {
		return h.fail(c, err)
	}

	if err := h.uc.DeleteFieldOperator(c.Request().Context(), payload.ID); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Field operator deleted successfully"})
}

// CreateServiceProvider provisions an identity and inserts the provider
// profile with its join sets.
func (h *Handler) CreateServiceProvider(c echo.Context) error {
	var payload *service.CreateServiceProviderPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	if err := c.Validate(payload); err != nil {
		return h.fail(c, err)
	}

	provider, err := h.uc.CreateServiceProvider(c.Request().Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":          "Service provider created successfully",
		"service_provider": provider,
	})
}

// UpdateServiceProvider updates the provider profile and replaces its join sets.
func (h *Handler) UpdateServiceProvider(c echo.Context) error {
	var payload *service.UpdateServiceProviderPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	if err := c.Validate(payload); err != nil {
		return h.fail(c, err)
	}

	provider, err := h.uc.UpdateServiceProvider(c.Request().Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":          "Service provider updated successfully",
		"service_provider": provider,
	})
}

// DeleteServiceProvider removes the provider, its join rows and its identity.
func (h *Handler) DeleteServiceProvider(c echo.Context) error {
	var payload *deleteRequest
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	if err := c.Validate(payload); err != nil {
		return h.fail(c, err)
	}

	if err := h.uc.DeleteServiceProvider(c.Request().Context(), payload.ID); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Service provider deleted successfully"})
}

// CreateStore provisions an identity and inserts the store profile.
func (h *Handler) CreateStore(c echo.Context) error {
	var payload *service.CreateStorePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	if err := c.Validate(payload); err != nil {
		return h.fail(c, err)
	}

	store, err := h.uc.CreateStore(c.Request().Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Store created successfully",
		"store":   store,
	})
}

// UpdateStore updates the store profile fields.
func (h *Handler) UpdateStore(c echo.Context) error {
	var payload *service.UpdateStorePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	if err := c.Validate(payload); err != nil {
		return h.fail(c, err)
	}

	store, err := h.uc.UpdateStore(c.Request().Context(), payload)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Store updated successfully",
		"store":   store,
	})
}

// DeleteStore removes the store profile and its identity.
func (h *Handler) DeleteStore(c echo.Context) error {
	var payload *deleteRequest
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payload"})
	}
	if err := c.Validate(payload); err != nil {
		return h.fail(c, err)
	}

	if err := h.uc.DeleteStore(c.Request().Context(), payload.ID); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Store deleted successfully"})
}
