package fileservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"lifehub/internal/guard"
	"lifehub/internal/lifecycle"
	"lifehub/internal/models"

	uuid "github.com/satori/go.uuid"
)

const (
	pkg      = "fileService/"
	resource = "files"
)

type FileService struct {
	log       *slog.Logger
	fileRepo  FileRepository
	lifecycle Lifecycle
	counts    CountCache
}

func New(
	log *slog.Logger,
	fileRepo FileRepository,
	lc Lifecycle,
	counts CountCache,
) *FileService {
	return &FileService{
		log:       log,
		fileRepo:  fileRepo,
		lifecycle: lc,
		counts:    counts,
	}
}

func (fs *FileService) List(ctx context.Context, requester *models.User) ([]*models.File, error) {
	op := pkg + "List"

	log := fs.log.With(slog.String("op", op))

	files, err := fs.fileRepo.ListByOwner(ctx, requester.ID)
	if err != nil {
		log.Error("failed to list files", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return files, nil
}

// Upload writes the blob first and only then the metadata row, so the row
// never references content that was not durably stored. A row failure rolls
// the blob back.
func (fs *FileService) Upload(ctx context.Context, requester *models.User, payload lifecycle.Payload) (*models.File, error) {
	op := pkg + "Upload"

	log := fs.log.With(slog.String("op", op))

	log.Debug("attempting to upload file", slog.String("owner_id", requester.ID), slog.String("name", payload.OriginalName))

	stored, err := fs.lifecycle.StoreFile(payload)
	if err != nil {
		if models.IsValidation(err) {
			return nil, err
		}
		log.Error("failed to store blob", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	now := time.Now()

	file := &models.File{
		ID:           uuid.NewV4().String(),
		OwnerID:      requester.ID,
		StoredName:   stored.StoredName,
		OriginalName: payload.OriginalName,
		Mime:         payload.Mime,
		Path:         stored.Path,
		Size:         stored.Size,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := fs.fileRepo.Create(ctx, file); err != nil {
		log.Error("failed to save file metadata", slog.String("error", err.Error()))
		if delErr := fs.lifecycle.RemoveFile(stored.Path); delErr != nil {
			log.Error("failed to roll back blob", slog.String("error", delErr.Error()))
		}
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	fs.invalidateCount(ctx, requester.ID)

	log.Debug("file uploaded", slog.String("file_id", file.ID), slog.String("stored_name", file.StoredName))

	return file, nil
}

// Delete removes the blob before the row. When the blob cannot be removed
// the row stays and the error is surfaced.
func (fs *FileService) Delete(ctx context.Context, requester *models.User, fileID string) error {
	op := pkg + "Delete"

	log := fs.log.With(slog.String("op", op))

	file, err := fs.load(ctx, requester, fileID)
	if err != nil {
		log.Warn("delete not authorized", slog.String("file_id", fileID), slog.String("error", err.Error()))
		return err
	}

	if err := fs.lifecycle.RemoveFile(file.Path); err != nil {
		log.Error("failed to delete blob, keeping metadata row", slog.String("file_id", fileID), slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := fs.fileRepo.Delete(ctx, fileID); err != nil {
		if errors.Is(err, models.ErrFileNotFound) {
			return models.ErrFileNotFound
		}
		log.Error("failed to delete file metadata", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	fs.invalidateCount(ctx, requester.ID)

	log.Debug("file deleted", slog.String("file_id", fileID))

	return nil
}

// Download re-checks ownership before returning any byte and suggests the
// original upload name to the client.
func (fs *FileService) Download(ctx context.Context, requester *models.User, fileID string) (*models.File, io.ReadCloser, error) {
	op := pkg + "Download"

	log := fs.log.With(slog.String("op", op))

	file, err := fs.load(ctx, requester, fileID)
	if err != nil {
		log.Warn("download not authorized", slog.String("file_id", fileID), slog.String("error", err.Error()))
		return nil, nil, err
	}

	rc, err := fs.lifecycle.Open(file.Path)
	if err != nil {
		log.Error("failed to open blob", slog.String("file_id", fileID), slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("file download started", slog.String("file_id", fileID))

	return file, rc, nil
}

func (fs *FileService) Count(ctx context.Context, requester *models.User) (int, error) {
	op := pkg + "Count"

	log := fs.log.With(slog.String("op", op))

	count, ok, err := fs.counts.Count(ctx, resource, requester.ID)
	if err != nil {
		log.Warn("failed to read count cache", slog.String("error", err.Error()))
	} else if ok {
		return count, nil
	}

	count, err = fs.fileRepo.CountByOwner(ctx, requester.ID)
	if err != nil {
		log.Error("failed to count files", slog.String("error", err.Error()))
		return 0, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := fs.counts.SetCount(ctx, resource, requester.ID, count); err != nil {
		log.Warn("failed to set count cache", slog.String("error", err.Error()))
	}

	return count, nil
}

// load fetches the file and runs the ownership check, existence first.
func (fs *FileService) load(ctx context.Context, requester *models.User, fileID string) (*models.File, error) {
	op := pkg + "load"

	file, err := fs.fileRepo.FileByID(ctx, fileID)
	if err != nil && !errors.Is(err, models.ErrFileNotFound) {
		fs.log.With(slog.String("op", op)).Error("failed to get file by id", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	var ownerID string
	if file != nil {
		ownerID = file.OwnerID
	}

	if guardErr := guard.Check(requester, ownerID, err == nil, models.ErrFileNotFound); guardErr != nil {
		return nil, guardErr
	}

	return file, nil
}

func (fs *FileService) invalidateCount(ctx context.Context, ownerID string) {
	if err := fs.counts.Invalidate(ctx, resource, ownerID); err != nil {
		fs.log.Warn("failed to invalidate count cache", slog.String("error", err.Error()))
	}
}
