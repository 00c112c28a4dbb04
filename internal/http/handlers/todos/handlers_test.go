package todos

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifehub/internal/dto"
	"lifehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockTodoService struct {
	mock.Mock
}

func (m *mockTodoService) List(ctx context.Context, requester *models.User) ([]*models.Todo, error) {
	args := m.Called(ctx, requester)
	return args.Get(0).([]*models.Todo), args.Error(1)
}

func (m *mockTodoService) Create(ctx context.Context, requester *models.User, text string) (*models.Todo, error) {
	args := m.Called(ctx, requester, text)
	return args.Get(0).(*models.Todo), args.Error(1)
}

func (m *mockTodoService) SetCompleted(ctx context.Context, requester *models.User, todoID string, completed bool) (*models.Todo, error) {
	args := m.Called(ctx, requester, todoID, completed)
	return args.Get(0).(*models.Todo), args.Error(1)
}

func (m *mockTodoService) Delete(ctx context.Context, requester *models.User, todoID string) error {
	args := m.Called(ctx, requester, todoID)
	return args.Error(0)
}

func (m *mockTodoService) Count(ctx context.Context, requester *models.User) (int, error) {
	args := m.Called(ctx, requester)
	return args.Int(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authedRequest(method string, target string, body io.Reader, user *models.User) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), models.UserContextKey, user)
	return req.WithContext(ctx)
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}
	body := `{"text": "buy milk"}`
	req := authedRequest(http.MethodPost, "/api/todos", strings.NewReader(body), requester)
	w := httptest.NewRecorder()

	service := new(mockTodoService)
	service.On("Create", mock.Anything, requester, "buy milk").
		Return(&models.Todo{ID: "t1", Text: "buy milk"}, nil)

	Create(req.Context(), discardLogger(), w, req, service)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TodoResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "t1", resp.ID)
	assert.False(t, resp.Completed)
}

func TestCreate_EmptyText(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}
	body := `{"text": ""}`
	req := authedRequest(http.MethodPost, "/api/todos", strings.NewReader(body), requester)
	w := httptest.NewRecorder()

	service := new(mockTodoService)
	service.On("Create", mock.Anything, requester, "").
		Return((*models.Todo)(nil), models.ErrValidation)

	Create(req.Context(), discardLogger(), w, req, service)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetCompleted_Success(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}
	body := `{"completed": true}`
	req := authedRequest(http.MethodPut, "/api/todos/t1", strings.NewReader(body), requester)
	w := httptest.NewRecorder()

	service := new(mockTodoService)
	service.On("SetCompleted", mock.Anything, requester, "t1", true).
		Return(&models.Todo{ID: "t1", Text: "buy milk", Completed: true}, nil)

	SetCompleted(req.Context(), discardLogger(), w, req, "t1", service)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TodoResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Completed)
	assert.Equal(t, "buy milk", resp.Text)
}

func TestSetCompleted_NotFound(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}
	body := `{"completed": true}`
	req := authedRequest(http.MethodPut, "/api/todos/missing", strings.NewReader(body), requester)
	w := httptest.NewRecorder()

	service := new(mockTodoService)
	service.On("SetCompleted", mock.Anything, requester, "missing", true).
		Return((*models.Todo)(nil), models.ErrTodoNotFound)

	SetCompleted(req.Context(), discardLogger(), w, req, "missing", service)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestList_Success(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}
	req := authedRequest(http.MethodGet, "/api/todos", nil, requester)
	w := httptest.NewRecorder()

	service := new(mockTodoService)
	service.On("List", mock.Anything, requester).Return([]*models.Todo{
		{ID: "t1", Text: "older"},
		{ID: "t2", Text: "newer"},
	}, nil)

	List(req.Context(), discardLogger(), w, req, service)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TodoResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "t1", resp[0].ID)
}

func TestDelete_Forbidden(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u2"}
	req := authedRequest(http.MethodDelete, "/api/todos/t1", nil, requester)
	w := httptest.NewRecorder()

	service := new(mockTodoService)
	service.On("Delete", mock.Anything, requester, "t1").Return(models.ErrForbidden)

	Delete(req.Context(), discardLogger(), w, req, "t1", service)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCount_Success(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}
	req := authedRequest(http.MethodGet, "/api/todos/count", nil, requester)
	w := httptest.NewRecorder()

	service := new(mockTodoService)
	service.On("Count", mock.Anything, requester).Return(3, nil)

	Count(req.Context(), discardLogger(), w, req, service)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CountResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)
}
