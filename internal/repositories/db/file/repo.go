package filerepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lifehub/internal/entities"
	"lifehub/internal/models"

	"github.com/jmoiron/sqlx"
)

const pkg = "fileRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, file *models.File) error {
	op := pkg + "Create"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO files (id, owner_id, stored_name, original_name, mime, path, size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		file.ID, file.OwnerID, file.StoredName, file.OriginalName, file.Mime, file.Path, file.Size, file.CreatedAt, file.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) FileByID(ctx context.Context, id string) (*models.File, error) {
	op := pkg + "FileByID"

	rawFile := entities.File{}

	err := r.db.GetContext(ctx, &rawFile,
		`SELECT
			f.id AS id,
			f.owner_id AS owner_id,
			f.stored_name AS stored_name,
			f.original_name AS original_name,
			f.mime AS mime,
			f.path AS path,
			f.size AS size,
			f.created_at AS created_at,
			f.updated_at AS updated_at
		FROM files f
		WHERE f.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrFileNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fileFromEntity(&rawFile), nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]*models.File, error) {
	op := pkg + "ListByOwner"

	rawFiles := make([]entities.File, 0)

	err := r.db.SelectContext(ctx, &rawFiles,
		`SELECT
			f.id AS id,
			f.owner_id AS owner_id,
			f.stored_name AS stored_name,
			f.original_name AS original_name,
			f.mime AS mime,
			f.path AS path,
			f.size AS size,
			f.created_at AS created_at,
			f.updated_at AS updated_at
		FROM files f
		WHERE f.owner_id = $1
		ORDER BY f.created_at ASC`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	files := make([]*models.File, 0, len(rawFiles))

	for _, rawFile := range rawFiles {
		files = append(files, fileFromEntity(&rawFile))
	}

	return files, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	op := pkg + "Delete"

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM files WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrFileNotFound)
	}

	return nil
}

func (r *repository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	op := pkg + "CountByOwner"

	var count int

	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM files WHERE owner_id = $1`,
		ownerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func fileFromEntity(e *entities.File) *models.File {
	return &models.File{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		StoredName:   e.StoredName,
		OriginalName: e.OriginalName,
		Mime:         e.Mime,
		Path:         e.Path,
		Size:         e.Size,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
