package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/entities"
	"rental-system/pkg/config"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/types"
	"rental-system/pkg/validation"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func categoryEcho(svc *mockCategoryService) *echo.Echo {
	e := newTestEcho()
	c := NewCategoryController(svc, config.PaginationConfig{DefaultSize: 10}, zap.NewNop())
	g := e.Group("/api/categories")
	g.POST("", c.Create)
	g.GET("/paged", c.GetPaged)
	g.GET("/:id", c.GetByID)
	g.PUT("/:id", c.Update)
	g.DELETE("/:id", c.Delete)
	g.DELETE("", c.DeleteAll)
	return e
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

func TestCategoryController_Create(t *testing.T) {
	svc := new(mockCategoryService)
	svc.On("Create", mock.Anything, dto.CreateCategoryDTO{Name: "Краны", BaseCategoryID: null.Uint64From(1)}).
		Return(&entities.Category{ID: 2, Name: "Краны"}, nil)

	rec := serve(categoryEcho(svc), http.MethodPost, "/api/categories", `{"name":"Краны","baseCategoryId":1}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got entities.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint64(2), got.ID)
}

func TestCategoryController_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "без имени", body: `{}`},
		{name: "пустое имя", body: `{"name":"   "}`},
		{name: "длинное имя", body: `{"name":"` + strings.Repeat("я", 51) + `"}`},
		{name: "битый json", body: `{"name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockCategoryService)
			rec := serve(categoryEcho(svc), http.MethodPost, "/api/categories", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeMessage(t, rec))
			svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCategoryController_InvalidParent(t *testing.T) {
	svc := new(mockCategoryService)
	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewInvalidInputError("родительская категория %d не найдена", 9))

	rec := serve(categoryEcho(svc), http.MethodPost, "/api/categories", `{"name":"Краны","baseCategoryId":9}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeMessage(t, rec), "не найдена")
}

func TestCategoryController_GetByID(t *testing.T) {
	svc := new(mockCategoryService)
	svc.On("FindByID", mock.Anything, uint64(404)).Return(nil, apperrors.ErrNotFound)
	e := categoryEcho(svc)

	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/api/categories/404", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(e, http.MethodGet, "/api/categories/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(e, http.MethodGet, "/api/categories/0", "").Code)
}

func TestCategoryController_GetPaged(t *testing.T) {
	svc := new(mockCategoryService)
	svc.On("GetPaged", mock.Anything, types.PageRequest{Page: 2, Size: 2}).
		Return([]entities.Category{{ID: 3}, {ID: 4}}, uint64(5), nil)

	rec := serve(categoryEcho(svc), http.MethodGet, "/api/categories/paged?page=2&size=2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		TotalItems  uint64              `json:"totalItems"`
		TotalPages  uint64              `json:"totalPages"`
		CurrentPage uint64              `json:"currentPage"`
		Categories  []entities.Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint64(5), body.TotalItems)
	assert.Equal(t, uint64(3), body.TotalPages)
	assert.Equal(t, uint64(2), body.CurrentPage)
	assert.Len(t, body.Categories, 2)
}

func TestCategoryController_UpdateNullParent(t *testing.T) {
	svc := new(mockCategoryService)
	clearsParent := mock.MatchedBy(func(d dto.UpdateCategoryDTO) bool {
		return !d.BaseCategoryID.Valid && d.Name == nil
	})
	svc.On("Update", mock.Anything, uint64(3), clearsParent, types.Fields{"baseCategoryId": {}}).Return(nil)

	rec := serve(categoryEcho(svc), http.MethodPut, "/api/categories/3", `{"baseCategoryId":null}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Категория обновлена", decodeMessage(t, rec))
	svc.AssertExpectations(t)
}

func TestCategoryController_Delete(t *testing.T) {
	svc := new(mockCategoryService)
	svc.On("Delete", mock.Anything, uint64(8)).Return(apperrors.ErrNotFound)
	svc.On("DeleteAll", mock.Anything).Return(int64(3), nil)
	e := categoryEcho(svc)

	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodDelete, "/api/categories/8", "").Code)

	rec := serve(e, http.MethodDelete, "/api/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Все категории удалены", decodeMessage(t, rec))
}
