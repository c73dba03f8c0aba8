package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpvalidator "folio/internal/delivery/http/validator"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	mockUC "folio/internal/mocks/usecase"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisHandler_ListPublished(t *testing.T) {
	mockAnalysis := mockUC.NewMockAnalysisUsecase(t)
	handler := NewAnalysisHandler(mockAnalysis, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/analyses?limit=10&offset=20", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockAnalysis.EXPECT().
		ListPublished(c.Request().Context(), 10, 20).
		Return([]*entity.Analysis{
			{ID: uuid.New(), Title: "Rates outlook", CreatedAt: time.Now()},
		}, nil)

	err := handler.ListPublished(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rates outlook")
}

func TestAnalysisHandler_ListPublished_NoPaginationParams(t *testing.T) {
	mockAnalysis := mockUC.NewMockAnalysisUsecase(t)
	handler := NewAnalysisHandler(mockAnalysis, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/analyses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockAnalysis.EXPECT().
		ListPublished(c.Request().Context(), 0, 0).
		Return([]*entity.Analysis{}, nil)

	err := handler.ListPublished(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnalysisHandler_Publish(t *testing.T) {
	mockAnalysis := mockUC.NewMockAnalysisUsecase(t)
	handler := NewAnalysisHandler(mockAnalysis, newDiscardLogger())

	authorID := uuid.New()
	body := `{"title":"Rates outlook","content":"Duration risk is back."}`

	e := echo.New()
	e.Validator = httpvalidator.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/analyses", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", authorID)

	mockAnalysis.EXPECT().
		Publish(c.Request().Context(), authorID, &usecase.PublishAnalysisInput{
			Title:   "Rates outlook",
			Content: "Duration risk is back.",
		}).
		Return(&entity.Analysis{ID: uuid.New(), AuthorID: authorID, Title: "Rates outlook", IsPublished: true}, nil)

	err := handler.Publish(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAnalysisHandler_Publish_MissingTitle(t *testing.T) {
	mockAnalysis := mockUC.NewMockAnalysisUsecase(t)
	handler := NewAnalysisHandler(mockAnalysis, newDiscardLogger())

	e := echo.New()
	e.Validator = httpvalidator.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/analyses", strings.NewReader(`{"content":"Duration risk is back."}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())

	err := handler.Publish(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAnalysisHandler_Publish_MissingToken(t *testing.T) {
	mockAnalysis := mockUC.NewMockAnalysisUsecase(t)
	handler := NewAnalysisHandler(mockAnalysis, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/analyses", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Publish(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAnalysisHandler_Publish_UsecaseError(t *testing.T) {
	mockAnalysis := mockUC.NewMockAnalysisUsecase(t)
	handler := NewAnalysisHandler(mockAnalysis, newDiscardLogger())

	userID := uuid.New()

	e := echo.New()
	e.Validator = httpvalidator.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/analyses", strings.NewReader(`{"title":"x","content":"y"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	mockAnalysis.EXPECT().
		Publish(c.Request().Context(), userID, &usecase.PublishAnalysisInput{Title: "x", Content: "y"}).
		Return(nil, domainerrors.ErrPermissionDenied)

	err := handler.Publish(c)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}
