package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mazabin/bookshop/internal/domains/author"
	"github.com/mazabin/bookshop/internal/shared/apperror"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*author.Author), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*author.Author), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) GetAll(ctx context.Context) ([]author.Author, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]author.Author), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	args := m.Called(ctx, id, req)
	if v := args.Get(0); v != nil {
		return v.(*author.Author), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAuthorHandler(svc)
	r := gin.New()
	r.GET("/authors", h.GetAll)
	r.GET("/authors/:id", h.GetByID)
	r.POST("/authors", h.Create)
	r.PUT("/authors/:id", h.Update)
	r.DELETE("/authors/:id", h.Delete)
	return r
}

func serve(r http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthorHandler_Create(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name        string
		contentType string
		body        string
		svcResult   *author.Author
		svcErr      error
		wantCode    int
		wantMessage any
		wantStatus  string
	}{
		{
			name:        "json",
			contentType: "application/json",
			body:        `{"name":"Jane Austen","id":"ignored"}`,
			svcResult:   &author.Author{ID: id, Name: "Jane Austen"},
			wantCode:    http.StatusCreated,
			wantMessage: "Author created",
			wantStatus:  "ok",
		},
		{
			name:        "form",
			contentType: "application/x-www-form-urlencoded",
			body:        url.Values{"name": {"Jane Austen"}}.Encode(),
			svcResult:   &author.Author{ID: id, Name: "Jane Austen"},
			wantCode:    http.StatusCreated,
			wantMessage: "Author created",
			wantStatus:  "ok",
		},
		{
			name:        "duplicate",
			contentType: "application/json",
			body:        `{"name":"Jane Austen"}`,
			svcErr:      apperror.NewValidation("Name has already been taken"),
			wantCode:    http.StatusUnprocessableEntity,
			wantMessage: []any{"Name has already been taken"},
			wantStatus:  "error",
		},
		{
			name:        "storage_failure",
			contentType: "application/json",
			body:        `{"name":"Jane Austen"}`,
			svcErr:      errors.New("connection refused"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Author not created",
			wantStatus:  "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Create", mock.Anything, &author.CreateAuthorRequest{Name: "Jane Austen"}).
				Return(tt.svcResult, tt.svcErr)

			w := serve(newRouter(svc), http.MethodPost, "/authors", tt.contentType, tt.body)

			assert.Equal(t, tt.wantCode, w.Code)
			body := decode(t, w)
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Equal(t, tt.wantStatus, body["status"])
			if tt.svcResult != nil {
				assert.Equal(t, id.String(), body["id"])
			} else {
				assert.NotContains(t, body, "id")
			}
		})
	}
}

func TestAuthorHandler_Create_MalformedJSON(t *testing.T) {
	svc := new(mockService)

	w := serve(newRouter(svc), http.MethodPost, "/authors", "application/json", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", decode(t, w)["status"])
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthorHandler_GetAll(t *testing.T) {
	svc := new(mockService)
	id := uuid.New()
	svc.On("GetAll", mock.Anything).Return([]author.Author{{ID: id, Name: "Jane Austen"}}, nil)

	w := serve(newRouter(svc), http.MethodGet, "/authors", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"`+id.String()+`","name":"Jane Austen"}]`, w.Body.String())
}

func TestAuthorHandler_GetAll_Empty(t *testing.T) {
	svc := new(mockService)
	svc.On("GetAll", mock.Anything).Return([]author.Author(nil), nil)

	w := serve(newRouter(svc), http.MethodGet, "/authors", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAuthorHandler_GetByID(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc := new(mockService)
		svc.On("GetByID", mock.Anything, id).Return(&author.Author{ID: id, Name: "Jane Austen"}, nil)

		w := serve(newRouter(svc), http.MethodGet, "/authors/"+id.String(), "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"`+id.String()+`","name":"Jane Austen"}`, w.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		svc := new(mockService)
		svc.On("GetByID", mock.Anything, id).Return(nil, author.ErrAuthorNotFound)

		w := serve(newRouter(svc), http.MethodGet, "/authors/"+id.String(), "", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Author not found","status":"error"}`, w.Body.String())
	})

	t.Run("malformed_id", func(t *testing.T) {
		svc := new(mockService)

		w := serve(newRouter(svc), http.MethodGet, "/authors/42", "", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestAuthorHandler_Update(t *testing.T) {
	id := uuid.New()
	name := "J. Austen"

	svc := new(mockService)
	svc.On("Update", mock.Anything, id, &author.UpdateAuthorRequest{Name: &name}).
		Return(&author.Author{ID: id, Name: name}, nil)

	w := serve(newRouter(svc), http.MethodPut, "/authors/"+id.String(), "application/json", `{"name":"J. Austen"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Author updated","status":"ok"}`, w.Body.String())
}

func TestAuthorHandler_Delete(t *testing.T) {
	tests := []struct {
		name     string
		svcErr   error
		wantCode int
		wantBody string
	}{
		{"ok", nil, http.StatusOK, `{"message":"Author destroyed","status":"ok"}`},
		{"missing", author.ErrAuthorNotFound, http.StatusNotFound, `{"message":"Author not found","status":"error"}`},
		{"has_books", author.ErrAuthorHasBooks, http.StatusConflict, `{"message":"Cannot delete author with linked books","status":"error"}`},
		{"failure", errors.New("boom"), http.StatusInternalServerError, `{"message":"Author not destroyed","status":"error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			svc := new(mockService)
			svc.On("Delete", mock.Anything, id).Return(tt.svcErr)

			w := serve(newRouter(svc), http.MethodDelete, "/authors/"+id.String(), "", "")

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
