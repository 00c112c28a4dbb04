package fileservice

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"lifehub/internal/lifecycle"
	"lifehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) Create(ctx context.Context, file *models.File) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileRepository) FileByID(ctx context.Context, id string) (*models.File, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.File), args.Error(1)
}

func (m *MockFileRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.File, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]*models.File), args.Error(1)
}

func (m *MockFileRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFileRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

type MockLifecycle struct {
	mock.Mock
}

func (m *MockLifecycle) StoreFile(p lifecycle.Payload) (*lifecycle.StoredBlob, error) {
	args := m.Called(p)
	return args.Get(0).(*lifecycle.StoredBlob), args.Error(1)
}

func (m *MockLifecycle) RemoveFile(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockLifecycle) Open(path string) (io.ReadCloser, error) {
	args := m.Called(path)
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

type MockCountCache struct {
	mock.Mock
}

func (m *MockCountCache) Count(ctx context.Context, resource string, ownerID string) (int, bool, error) {
	args := m.Called(ctx, resource, ownerID)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockCountCache) SetCount(ctx context.Context, resource string, ownerID string, count int) error {
	args := m.Called(ctx, resource, ownerID, count)
	return args.Error(0)
}

func (m *MockCountCache) Invalidate(ctx context.Context, resource string, ownerID string) error {
	args := m.Called(ctx, resource, ownerID)
	return args.Error(0)
}

func newService(t *testing.T) (*FileService, *MockFileRepository, *MockLifecycle, *MockCountCache) {
	t.Helper()
	repo := new(MockFileRepository)
	lc := new(MockLifecycle)
	counts := new(MockCountCache)
	return New(slog.Default(), repo, lc, counts), repo, lc, counts
}

func TestUpload_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, repo, lc, counts := newService(t)

	payload := lifecycle.Payload{
		OriginalName: "report.pdf",
		Mime:         "application/pdf",
		Size:         42,
		Content:      bytes.NewReader([]byte("data")),
	}

	lc.On("StoreFile", payload).Return(&lifecycle.StoredBlob{
		StoredName: "1700000000000.pdf",
		Path:       "/blobs/files/1700000000000.pdf",
		Size:       42,
	}, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(f *models.File) bool {
		return f.OwnerID == "u1" && f.OriginalName == "report.pdf" && f.Size == 42
	})).Return(nil)
	counts.On("Invalidate", ctx, "files", "u1").Return(nil)

	file, err := service.Upload(ctx, &models.User{ID: "u1"}, payload)
	require.NoError(t, err)
	assert.Equal(t, "1700000000000.pdf", file.StoredName)
	repo.AssertExpectations(t)
	lc.AssertExpectations(t)
}

func TestUpload_ValidationErrorPassesThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, repo, lc, _ := newService(t)

	payload := lifecycle.Payload{OriginalName: "huge.iso", Size: 1}

	lc.On("StoreFile", payload).Return((*lifecycle.StoredBlob)(nil), models.ErrPayloadTooLarge)

	_, err := service.Upload(ctx, &models.User{ID: "u1"}, payload)
	assert.ErrorIs(t, err, models.ErrPayloadTooLarge)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpload_RowFailureRollsBackBlob(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, repo, lc, _ := newService(t)

	payload := lifecycle.Payload{OriginalName: "a.txt", Size: 1, Content: bytes.NewReader(nil)}

	lc.On("StoreFile", payload).Return(&lifecycle.StoredBlob{
		StoredName: "1700000000000.txt",
		Path:       "/blobs/files/1700000000000.txt",
		Size:       1,
	}, nil)
	repo.On("Create", ctx, mock.Anything).Return(errors.New("db down"))
	lc.On("RemoveFile", "/blobs/files/1700000000000.txt").Return(nil)

	_, err := service.Upload(ctx, &models.User{ID: "u1"}, payload)
	assert.ErrorIs(t, err, models.ErrInternal)
	lc.AssertExpectations(t)
}

func TestDelete_BlobFailureKeepsRow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, repo, lc, _ := newService(t)

	stored := &models.File{ID: "f1", OwnerID: "u1", Path: "/blobs/files/x.bin"}

	repo.On("FileByID", ctx, "f1").Return(stored, nil)
	lc.On("RemoveFile", "/blobs/files/x.bin").Return(errors.New("io error"))

	err := service.Delete(ctx, &models.User{ID: "u1"}, "f1")
	assert.ErrorIs(t, err, models.ErrInternal)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, repo, lc, counts := newService(t)

	stored := &models.File{ID: "f1", OwnerID: "u1", Path: "/blobs/files/x.bin"}

	repo.On("FileByID", ctx, "f1").Return(stored, nil)
	lc.On("RemoveFile", "/blobs/files/x.bin").Return(nil)
	repo.On("Delete", ctx, "f1").Return(nil)
	counts.On("Invalidate", ctx, "files", "u1").Return(nil)

	err := service.Delete(ctx, &models.User{ID: "u1"}, "f1")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
	lc.AssertExpectations(t)
}

func TestDelete_Forbidden(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, repo, lc, _ := newService(t)

	repo.On("FileByID", ctx, "f1").Return(&models.File{ID: "f1", OwnerID: "u1"}, nil)

	err := service.Delete(ctx, &models.User{ID: "u2"}, "f1")
	assert.ErrorIs(t, err, models.ErrForbidden)
	lc.AssertNotCalled(t, "RemoveFile", mock.Anything)
}

func TestDownload_GuardRunsBeforeOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, repo, lc, _ := newService(t)

	repo.On("FileByID", ctx, "f1").Return(&models.File{ID: "f1", OwnerID: "u1", Path: "/blobs/files/x.bin"}, nil)

	_, _, err := service.Download(ctx, &models.User{ID: "u2"}, "f1")
	assert.ErrorIs(t, err, models.ErrForbidden)
	lc.AssertNotCalled(t, "Open", mock.Anything)
}

func TestDownload_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, repo, lc, _ := newService(t)

	stored := &models.File{ID: "f1", OwnerID: "u1", OriginalName: "report.pdf", Path: "/blobs/files/x.pdf"}

	repo.On("FileByID", ctx, "f1").Return(stored, nil)
	lc.On("Open", "/blobs/files/x.pdf").Return(io.NopCloser(bytes.NewReader([]byte("data"))), nil)

	file, rc, err := service.Download(ctx, &models.User{ID: "u1"}, "f1")
	require.NoError(t, err)
	defer rc.Close()

	assert.Equal(t, "report.pdf", file.OriginalName)
	data, _ := io.ReadAll(rc)
	assert.Equal(t, "data", string(data))
}

func TestDownload_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service, repo, _, _ := newService(t)

	repo.On("FileByID", ctx, "missing").Return((*models.File)(nil), models.ErrFileNotFound)

	_, _, err := service.Download(ctx, &models.User{ID: "u1"}, "missing")
	assert.ErrorIs(t, err, models.ErrFileNotFound)
}
