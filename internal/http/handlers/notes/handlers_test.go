package notes

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

type mockNoteService struct {
	mock.Mock
}

func (m *mockNoteService) List(ctx context.Context, requester *models.User) ([]*models.Note, error) {
	args := m.Called(ctx, requester)
	return args.Get(0).([]*models.Note), args.Error(1)
}

func (m *mockNoteService) Create(ctx context.Context, requester *models.User, title string, content string) (*models.Note, error) {
	args := m.Called(ctx, requester, title, content)
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *mockNoteService) Update(ctx context.Context, requester *models.User, noteID string, upd models.NoteUpdate) (*models.Note, error) {
	args := m.Called(ctx, requester, noteID, upd)
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *mockNoteService) Delete(ctx context.Context, requester *models.User, noteID string) error {
	args := m.Called(ctx, requester, noteID)
	return args.Error(0)
}

func (m *mockNoteService) Count(ctx context.Context, requester *models.User) (int, error) {
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

func TestList_Success(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}
	req := authedRequest(http.MethodGet, "/api/notes", nil, requester)
	w := httptest.NewRecorder()

	service := new(mockNoteService)
	service.On("List", mock.Anything, requester).Return([]*models.Note{
		{ID: "n2", Title: "newer"},
		{ID: "n1", Title: "older"},
	}, nil)

	List(req.Context(), discardLogger(), w, req, service)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.NoteResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "n2", resp[0].ID)
}

func TestList_NoUserInContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	w := httptest.NewRecorder()

	service := new(mockNoteService)

	List(req.Context(), discardLogger(), w, req, service)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	service.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}
	body := `{"title": "groceries", "content": "milk"}`
	req := authedRequest(http.MethodPost, "/api/notes", strings.NewReader(body), requester)
	w := httptest.NewRecorder()

	service := new(mockNoteService)
	service.On("Create", mock.Anything, requester, "groceries", "milk").
		Return(&models.Note{ID: "n1", Title: "groceries", Content: "milk"}, nil)

	Create(req.Context(), discardLogger(), w, req, service)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.NoteResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "n1", resp.ID)
}

func TestCreate_MissingFields(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}
	body := `{"title": "", "content": ""}`
	req := authedRequest(http.MethodPost, "/api/notes", strings.NewReader(body), requester)
	w := httptest.NewRecorder()

	service := new(mockNoteService)
	service.On("Create", mock.Anything, requester, "", "").
		Return((*models.Note)(nil), models.ErrValidation)

	Create(req.Context(), discardLogger(), w, req, service)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdate_PartialBody(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}
	body := `{"title": "renamed"}`
	req := authedRequest(http.MethodPut, "/api/notes/n1", strings.NewReader(body), requester)
	w := httptest.NewRecorder()

	service := new(mockNoteService)
	service.On("Update", mock.Anything, requester, "n1", mock.MatchedBy(func(upd models.NoteUpdate) bool {
		return upd.Title != nil && *upd.Title == "renamed" && upd.Content == nil
	})).Return(&models.Note{ID: "n1", Title: "renamed", Content: "kept"}, nil)

	Update(req.Context(), discardLogger(), w, req, "n1", service)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.NoteResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "kept", resp.Content)
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}
	body := `{"title": "renamed"}`
	req := authedRequest(http.MethodPut, "/api/notes/missing", strings.NewReader(body), requester)
	w := httptest.NewRecorder()

	service := new(mockNoteService)
	service.On("Update", mock.Anything, requester, "missing", mock.Anything).
		Return((*models.Note)(nil), models.ErrNoteNotFound)

	Update(req.Context(), discardLogger(), w, req, "missing", service)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDelete_Forbidden(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u2"}
	req := authedRequest(http.MethodDelete, "/api/notes/n1", nil, requester)
	w := httptest.NewRecorder()

	service := new(mockNoteService)
	service.On("Delete", mock.Anything, requester, "n1").Return(models.ErrForbidden)

	Delete(req.Context(), discardLogger(), w, req, "n1", service)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}
	req := authedRequest(http.MethodDelete, "/api/notes/n1", nil, requester)
	w := httptest.NewRecorder()

	service := new(mockNoteService)
	service.On("Delete", mock.Anything, requester, "n1").Return(nil)

	Delete(req.Context(), discardLogger(), w, req, "n1", service)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCount_Success(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}
	req := authedRequest(http.MethodGet, "/api/notes/count", nil, requester)
	w := httptest.NewRecorder()

	service := new(mockNoteService)
	service.On("Count", mock.Anything, requester).Return(7, nil)

	Count(req.Context(), discardLogger(), w, req, service)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CountResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Count)
}
