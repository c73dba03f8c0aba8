package handler

import (
	"log/slog"
	"net/http"

	"folio/internal/delivery/http/response"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PublishPortfolioRequest represents the request body for publishing a snapshot
type PublishPortfolioRequest struct {
	Description string             `json:"description"`
	Holdings    map[string]float64 `json:"holdings" validate:"required,min=1,dive,gte=0,lte=1"`
}

// PortfolioHandler holds dependencies for model portfolio handlers.
type PortfolioHandler struct {
	uc     usecase.PortfolioUsecase
	logger *slog.Logger
}

// NewPortfolioHandler is the constructor for PortfolioHandler, injected by Fx.
func NewPortfolioHandler(uc usecase.PortfolioUsecase, logger *slog.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetActive returns the active snapshot to an entitled reader, or a purchase
// prompt to a reader without an entitlement.
func (h *PortfolioHandler) GetActive(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	view, err := h.uc.GetActive(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Portfolio retrieved successfully")
}

// Publish handles publishing a new snapshot from the admin surface.
func (h *PortfolioHandler) Publish(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PublishPortfolioRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid portfolio input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	portfolio, err := h.uc.Publish(c.Request().Context(), userID, &usecase.PublishPortfolioInput{
		Description: req.Description,
		Holdings:    req.Holdings,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, portfolio, "Portfolio published successfully")
}
