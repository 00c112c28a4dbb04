package session

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

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Login(ctx context.Context, login string, password string) (string, *models.User, error) {
	args := m.Called(ctx, login, password)
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

type mockSessionDeleter struct {
	mock.Mock
}

func (m *mockSessionDeleter) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	body := `{"login": "user1", "password": "pass12345"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	auth := new(mockAuthenticator)
	auth.On("Login", mock.Anything, "user1", "pass12345").
		Return("signed-token", &models.User{ID: "u1", Login: "user1", Name: "User One"}, nil)

	Login(req.Context(), discardLogger(), w, req, auth)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "u1", resp.ID)
	assert.Equal(t, "User One", resp.Name)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	body := `{"login": "user1", "password": "wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	auth := new(mockAuthenticator)
	auth.On("Login", mock.Anything, "user1", "wrong").
		Return("", (*models.User)(nil), models.ErrInvalidCredentials)

	Login(req.Context(), discardLogger(), w, req, auth)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MalformedBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader("not-json"))
	w := httptest.NewRecorder()

	auth := new(mockAuthenticator)

	Login(req.Context(), discardLogger(), w, req, auth)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogout_Success(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/users/logout", nil)
	w := httptest.NewRecorder()

	deleter := new(mockSessionDeleter)
	deleter.On("Logout", mock.Anything, "token123").Return(nil)

	Logout(req.Context(), discardLogger(), w, req, "token123", deleter)

	assert.Equal(t, http.StatusOK, w.Code)
	deleter.AssertExpectations(t)
}

func TestLogout_SessionAlreadyGone(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/users/logout", nil)
	w := httptest.NewRecorder()

	deleter := new(mockSessionDeleter)
	deleter.On("Logout", mock.Anything, "token123").Return(models.ErrSessionNotFound)

	Logout(req.Context(), discardLogger(), w, req, "token123", deleter)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogout_InvalidToken(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/users/logout", nil)
	w := httptest.NewRecorder()

	deleter := new(mockSessionDeleter)
	deleter.On("Logout", mock.Anything, "garbage").Return(models.ErrInvalidCredentials)

	Logout(req.Context(), discardLogger(), w, req, "garbage", deleter)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
