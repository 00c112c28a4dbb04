package noteservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lifehub/internal/guard"
	"lifehub/internal/models"

	uuid "github.com/satori/go.uuid"
)

const (
	pkg      = "noteService/"
	resource = "notes"
)

type NoteService struct {
	log      *slog.Logger
	noteRepo NoteRepository
	counts   CountCache
}

func New(
	log *slog.Logger,
	noteRepo NoteRepository,
	counts CountCache,
) *NoteService {
	return &NoteService{
		log:      log,
		noteRepo: noteRepo,
		counts:   counts,
	}
}

func (ns *NoteService) List(ctx context.Context, requester *models.User) ([]*models.Note, error) {
	op := pkg + "List"

	log := ns.log.With(slog.String("op", op))

	notes, err := ns.noteRepo.ListByOwner(ctx, requester.ID)
	if err != nil {
		log.Error("failed to list notes", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return notes, nil
}

func (ns *NoteService) Create(ctx context.Context, requester *models.User, title string, content string) (*models.Note, error) {
	op := pkg + "Create"

	log := ns.log.With(slog.String("op", op))

	log.Debug("attempting to create note", slog.String("owner_id", requester.ID))

	if title == "" || content == "" {
		log.Warn("missing title or content")
		return nil, models.ErrValidation
	}

	now := time.Now()

	note := &models.Note{
		ID:        uuid.NewV4().String(),
		OwnerID:   requester.ID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ns.noteRepo.Create(ctx, note); err != nil {
		log.Error("failed to create note", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	ns.invalidateCount(ctx, requester.ID)

	log.Debug("note created", slog.String("note_id", note.ID))

	return note, nil
}

func (ns *NoteService) Update(ctx context.Context, requester *models.User, noteID string, upd models.NoteUpdate) (*models.Note, error) {
	op := pkg + "Update"

	log := ns.log.With(slog.String("op", op))

	if err := ns.authorize(ctx, requester, noteID); err != nil {
		log.Warn("update not authorized", slog.String("note_id", noteID), slog.String("error", err.Error()))
		return nil, err
	}

	note, err := ns.noteRepo.Update(ctx, noteID, upd)
	if err != nil {
		if errors.Is(err, models.ErrNoteNotFound) {
			return nil, models.ErrNoteNotFound
		}
		log.Error("failed to update note", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("note updated", slog.String("note_id", note.ID))

	return note, nil
}

func (ns *NoteService) Delete(ctx context.Context, requester *models.User, noteID string) error {
	op := pkg + "Delete"

	log := ns.log.With(slog.String("op", op))

	if err := ns.authorize(ctx, requester, noteID); err != nil {
		log.Warn("delete not authorized", slog.String("note_id", noteID), slog.String("error", err.Error()))
		return err
	}

	if err := ns.noteRepo.Delete(ctx, noteID); err != nil {
		if errors.Is(err, models.ErrNoteNotFound) {
			return models.ErrNoteNotFound
		}
		log.Error("failed to delete note", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	ns.invalidateCount(ctx, requester.ID)

	log.Debug("note deleted", slog.String("note_id", noteID))

	return nil
}

func (ns *NoteService) Count(ctx context.Context, requester *models.User) (int, error) {
	op := pkg + "Count"

	log := ns.log.With(slog.String("op", op))

	count, ok, err := ns.counts.Count(ctx, resource, requester.ID)
	if err != nil {
		log.Warn("failed to read count cache", slog.String("error", err.Error()))
	} else if ok {
		return count, nil
	}

	count, err = ns.noteRepo.CountByOwner(ctx, requester.ID)
	if err != nil {
		log.Error("failed to count notes", slog.String("error", err.Error()))
		return 0, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := ns.counts.SetCount(ctx, resource, requester.ID, count); err != nil {
		log.Warn("failed to set count cache", slog.String("error", err.Error()))
	}

	return count, nil
}

// authorize loads the note and runs the ownership check. Existence is
// decided before ownership, so a missing id never reads as forbidden.
func (ns *NoteService) authorize(ctx context.Context, requester *models.User, noteID string) error {
	op := pkg + "authorize"

	note, err := ns.noteRepo.NoteByID(ctx, noteID)
	if err != nil && !errors.Is(err, models.ErrNoteNotFound) {
		ns.log.With(slog.String("op", op)).Error("failed to get note by id", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	var ownerID string
	if note != nil {
		ownerID = note.OwnerID
	}

	return guard.Check(requester, ownerID, err == nil, models.ErrNoteNotFound)
}

func (ns *NoteService) invalidateCount(ctx context.Context, ownerID string) {
	if err := ns.counts.Invalidate(ctx, resource, ownerID); err != nil {
		ns.log.Warn("failed to invalidate count cache", slog.String("error", err.Error()))
	}
}
