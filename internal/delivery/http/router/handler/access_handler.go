package handler

import (
	"log/slog"
	"net/http"

	"folio/internal/delivery/http/response"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GrantAccessRequest represents the request body for a manual entitlement grant
type GrantAccessRequest struct {
	UserID       uuid.UUID `json:"user_id" validate:"required"`
	ProductID    uuid.UUID `json:"product_id" validate:"required"`
	DurationDays int       `json:"duration_days" validate:"required,gt=0"`
}

// RevokeAccessRequest represents the request body for a manual entitlement revocation
type RevokeAccessRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// AccessHandler holds dependencies for entitlement management handlers.
type AccessHandler struct {
	uc     usecase.AccessUsecase
	logger *slog.Logger
}

// NewAccessHandler is the constructor for AccessHandler, injected by Fx.
func NewAccessHandler(uc usecase.AccessUsecase, logger *slog.Logger) *AccessHandler {
	return &AccessHandler{
		uc:     uc,
		logger: logger,
	}
}

// Grant handles a manual entitlement grant from the admin surface.
func (h *AccessHandler) Grant(c echo.Context) error {
	adminID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req GrantAccessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid grant input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.uc.GrantAccess(c.Request().Context(), adminID, req.UserID, req.ProductID, req.DurationDays)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"order": result.Order,
	}, "Access granted successfully")
}

// Revoke handles a manual entitlement revocation from the admin surface.
func (h *AccessHandler) Revoke(c echo.Context) error {
	adminID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RevokeAccessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid revoke input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.uc.RevokeAccess(c.Request().Context(), adminID, req.UserID, req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"cancelled_count": result.CancelledCount,
	}, "Access revoked successfully")
}

// ListUserOrders handles the admin view of a user's order history.
func (h *AccessHandler) ListUserOrders(c echo.Context) error {
	adminID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	orders, err := h.uc.ListUserOrders(c.Request().Context(), adminID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}
