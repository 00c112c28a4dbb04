package cachesessionrepo

import (
	"context"
	"errors"
	"lifehub/internal/models"
	cacherepo "lifehub/internal/repositories/cache"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCache struct {
	mock.Mock
}

type mockResponse[T any] struct {
	mock.Mock
	val T
	err error
}

func (m *mockCache) Get(ctx context.Context, key string) cacherepo.CacheResponse[string] {
	args := m.Called(ctx, key)
	return args.Get(0).(cacherepo.CacheResponse[string])
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) cacherepo.CacheResponse[string] {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(cacherepo.CacheResponse[string])
}

func (m *mockCache) Del(ctx context.Context, keys ...string) cacherepo.CacheResponse[int64] {
	args := m.Called(ctx, keys)
	return args.Get(0).(cacherepo.CacheResponse[int64])
}

func (r *mockResponse[T]) Err() error {
	return r.err
}

func (r *mockResponse[T]) Result() (T, error) {
	return r.val, r.err
}

func TestSaveSession_PrefixesKey(t *testing.T) {
	t.Parallel()

	mockCache := new(mockCache)
	mockResp := &mockResponse[string]{err: nil}

	mockCache.On("Set", mock.Anything, "session:sid123", "user-data", time.Minute).
		Return(mockResp)

	repo := New(mockCache, time.Minute)

	err := repo.SaveSession(context.Background(), "sid123", "user-data")
	assert.NoError(t, err)
	mockCache.AssertExpectations(t)
}

func TestDeleteSession_Success(t *testing.T) {
	t.Parallel()

	mockCache := new(mockCache)
	mockResp := &mockResponse[int64]{val: 1, err: nil}

	mockCache.On("Del", mock.Anything, []string{"session:sid123"}).
		Return(mockResp)

	repo := New(mockCache, time.Minute)

	err := repo.DeleteSession(context.Background(), "sid123")
	assert.NoError(t, err)
}

func TestDeleteSession_NotFound(t *testing.T) {
	t.Parallel()

	mockCache := new(mockCache)
	mockResp := &mockResponse[int64]{val: 0, err: nil}

	mockCache.On("Del", mock.Anything, []string{"session:missing"}).
		Return(mockResp)

	repo := New(mockCache, time.Minute)

	err := repo.DeleteSession(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestUserBySession_Success(t *testing.T) {
	t.Parallel()

	mockCache := new(mockCache)
	mockResp := &mockResponse[string]{val: "user-data", err: nil}

	mockCache.On("Get", mock.Anything, "session:sid123").
		Return(mockResp)

	repo := New(mockCache, time.Minute)

	result, err := repo.UserBySession(context.Background(), "sid123")
	assert.NoError(t, err)
	assert.Equal(t, "user-data", result)
}

func TestUserBySession_NotFound(t *testing.T) {
	t.Parallel()

	mockCache := new(mockCache)
	mockResp := &mockResponse[string]{val: "", err: nil}

	mockCache.On("Get", mock.Anything, "session:invalid").
		Return(mockResp)

	repo := New(mockCache, time.Minute)

	result, err := repo.UserBySession(context.Background(), "invalid")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
	assert.Empty(t, result)
}

func TestUserBySession_Error(t *testing.T) {
	t.Parallel()

	mockCache := new(mockCache)
	mockResp := &mockResponse[string]{val: "", err: errors.New("connection error")}

	mockCache.On("Get", mock.Anything, "session:error-sid").
		Return(mockResp)

	repo := New(mockCache, time.Minute)

	result, err := repo.UserBySession(context.Background(), "error-sid")
	assert.Error(t, err)
	assert.Empty(t, result)
}
