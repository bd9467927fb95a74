package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// assignRoleRequest is the body of a role grant call.
type assignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UserRoleHandler holds dependencies for role management handlers.
type UserRoleHandler struct {
	uc     usecase.UserRoleUsecase
	logger *slog.Logger
}

// NewUserRoleHandler is the constructor for UserRoleHandler, injected by Fx.
func NewUserRoleHandler(uc usecase.UserRoleUsecase, logger *slog.Logger) *UserRoleHandler {
	return &UserRoleHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListUsers returns every identity with its assigned roles.
func (h *UserRoleHandler) ListUsers(c echo.Context) error {
	sess := deliverycontext.GetSession(c)
	accounts, err := h.uc.ListUsers(c.Request().Context(), sess)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accounts, "")
}

// AssignRole grants a role to an identity.
func (h *UserRoleHandler) AssignRole(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user ID")
	}

	var input *assignRoleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.AssignRole(c.Request().Context(), sess, userID, entity.Role(input.Role)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Role assigned successfully")
}

// RemoveRole revokes a role from an identity.
func (h *UserRoleHandler) RemoveRole(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user ID")
	}

	sess := deliverycontext.GetSession(c)
	if err := h.uc.RemoveRole(c.Request().Context(), sess, userID, entity.Role(c.Param("role"))); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Role removed successfully")
}
