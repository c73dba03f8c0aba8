package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"folio/internal/delivery/http/response"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Slug         string `json:"slug" validate:"required"`
	Name         string `json:"name" validate:"required"`
	PriceCents   int64  `json:"price_cents" validate:"gte=0"`
	Currency     string `json:"currency" validate:"required,len=3"`
	DurationDays *int   `json:"duration_days" validate:"omitempty,gt=0"`
}

// ProductHandler holds dependencies for product catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles adding a new purchasable product.
func (h *ProductHandler) Create(c echo.Context) error {
	adminID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), adminID, &usecase.CreateProductInput{
		Slug:         req.Slug,
		Name:         req.Name,
		PriceCents:   req.PriceCents,
		Currency:     req.Currency,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// List handles listing the catalog. Pass active=false to include retired products.
func (h *ProductHandler) List(c echo.Context) error {
	activeOnly := true
	if raw := c.QueryParam("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid active filter")
		}
		activeOnly = parsed
	}

	products, err := h.uc.ListProducts(c.Request().Context(), activeOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// PurchaseQR renders the product's checkout link as a PNG QR code.
func (h *ProductHandler) PurchaseQR(c echo.Context) error {
	adminID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.uc.GeneratePurchaseQR(c.Request().Context(), adminID, c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
