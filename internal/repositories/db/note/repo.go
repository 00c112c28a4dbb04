package noterepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lifehub/internal/entities"
	"lifehub/internal/models"

	"github.com/jmoiron/sqlx"
)

const pkg = "noteRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, note *models.Note) error {
	op := pkg + "Create"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (id, owner_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		note.ID, note.OwnerID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) NoteByID(ctx context.Context, id string) (*models.Note, error) {
	op := pkg + "NoteByID"

	rawNote := entities.Note{}

	err := r.db.GetContext(ctx, &rawNote,
		`SELECT
			n.id AS id,
			n.owner_id AS owner_id,
			n.title AS title,
			n.content AS content,
			n.created_at AS created_at,
			n.updated_at AS updated_at
		FROM notes n
		WHERE n.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNoteNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return noteFromEntity(&rawNote), nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error) {
	op := pkg + "ListByOwner"

	rawNotes := make([]entities.Note, 0)

	err := r.db.SelectContext(ctx, &rawNotes,
		`SELECT
			n.id AS id,
			n.owner_id AS owner_id,
			n.title AS title,
			n.content AS content,
			n.created_at AS created_at,
			n.updated_at AS updated_at
		FROM notes n
		WHERE n.owner_id = $1
		ORDER BY n.created_at DESC`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	notes := make([]*models.Note, 0, len(rawNotes))

	for _, rawNote := range rawNotes {
		notes = append(notes, noteFromEntity(&rawNote))
	}

	return notes, nil
}

// Update merges the supplied fields into the stored row: nil fields keep
// their previous value.
func (r *repository) Update(ctx context.Context, id string, upd models.NoteUpdate) (*models.Note, error) {
	op := pkg + "Update"

	rawNote := entities.Note{}

	err := r.db.GetContext(ctx, &rawNote,
		`UPDATE notes SET
			title = COALESCE($2, title),
			content = COALESCE($3, content),
			updated_at = $4
		WHERE id = $1
		RETURNING id, owner_id, title, content, created_at, updated_at`,
		id, upd.Title, upd.Content, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNoteNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return noteFromEntity(&rawNote), nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	op := pkg + "Delete"

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notes WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNoteNotFound)
	}

	return nil
}

func (r *repository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	op := pkg + "CountByOwner"

	var count int

	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM notes WHERE owner_id = $1`,
		ownerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func noteFromEntity(e *entities.Note) *models.Note {
	return &models.Note{
		ID:        e.ID,
		OwnerID:   e.OwnerID,
		Title:     e.Title,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
