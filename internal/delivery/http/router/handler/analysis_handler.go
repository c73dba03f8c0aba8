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

// PublishAnalysisRequest represents the request body for publishing an analysis
type PublishAnalysisRequest struct {
	Title         string `json:"title" validate:"required"`
	Content       string `json:"content" validate:"required"`
	AttachmentURL string `json:"attachment_url" validate:"omitempty,url"`
}

// AnalysisHandler holds dependencies for research note handlers.
type AnalysisHandler struct {
	uc     usecase.AnalysisUsecase
	logger *slog.Logger
}

// NewAnalysisHandler is the constructor for AnalysisHandler, injected by Fx.
func NewAnalysisHandler(uc usecase.AnalysisUsecase, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPublished handles the public feed of published analyses.
func (h *AnalysisHandler) ListPublished(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	analyses, err := h.uc.ListPublished(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, analyses, "Analyses retrieved successfully")
}

// Publish handles publishing a new analysis from the admin surface.
func (h *AnalysisHandler) Publish(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PublishAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analysis input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	analysis, err := h.uc.Publish(c.Request().Context(), userID, &usecase.PublishAnalysisInput{
		Title:         req.Title,
		Content:       req.Content,
		AttachmentURL: req.AttachmentURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, analysis, "Analysis published successfully")
}

// UploadAttachment handles storing a chart or document for embedding.
func (h *AnalysisHandler) UploadAttachment(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Attachment file is missing")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	url, err := h.uc.UploadAttachment(
		c.Request().Context(),
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Attachment uploaded successfully")
}
