package todoservice

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
	pkg      = "todoService/"
	resource = "todos"
)

type TodoService struct {
	log      *slog.Logger
	todoRepo TodoRepository
	counts   CountCache
}

func New(
	log *slog.Logger,
	todoRepo TodoRepository,
	counts CountCache,
) *TodoService {
	return &TodoService{
		log:      log,
		todoRepo: todoRepo,
		counts:   counts,
	}
}

func (ts *TodoService) List(ctx context.Context, requester *models.User) ([]*models.Todo, error) {
	op := pkg + "List"

	log := ts.log.With(slog.String("op", op))

	todos, err := ts.todoRepo.ListByOwner(ctx, requester.ID)
	if err != nil {
		log.Error("failed to list todos", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return todos, nil
}

// Create stores a new todo. Completed always starts false; it is only ever
// set afterwards by an explicit owner update.
func (ts *TodoService) Create(ctx context.Context, requester *models.User, text string) (*models.Todo, error) {
	op := pkg + "Create"

	log := ts.log.With(slog.String("op", op))

	log.Debug("attempting to create todo", slog.String("owner_id", requester.ID))

	if text == "" {
		log.Warn("missing text")
		return nil, models.ErrValidation
	}

	now := time.Now()

	todo := &models.Todo{
		ID:        uuid.NewV4().String(),
		OwnerID:   requester.ID,
		Text:      text,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ts.todoRepo.Create(ctx, todo); err != nil {
		log.Error("failed to create todo", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	ts.invalidateCount(ctx, requester.ID)

	log.Debug("todo created", slog.String("todo_id", todo.ID))

	return todo, nil
}

// SetCompleted flips the completed flag. Text is fixed at creation and is
// not touched here.
func (ts *TodoService) SetCompleted(ctx context.Context, requester *models.User, todoID string, completed bool) (*models.Todo, error) {
	op := pkg + "SetCompleted"

	log := ts.log.With(slog.String("op", op))

	if err := ts.authorize(ctx, requester, todoID); err != nil {
		log.Warn("update not authorized", slog.String("todo_id", todoID), slog.String("error", err.Error()))
		return nil, err
	}

	todo, err := ts.todoRepo.SetCompleted(ctx, todoID, completed)
	if err != nil {
		if errors.Is(err, models.ErrTodoNotFound) {
			return nil, models.ErrTodoNotFound
		}
		log.Error("failed to update todo", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("todo updated", slog.String("todo_id", todo.ID), slog.Bool("completed", todo.Completed))

	return todo, nil
}

func (ts *TodoService) Delete(ctx context.Context, requester *models.User, todoID string) error {
	op := pkg + "Delete"

	log := ts.log.With(slog.String("op", op))

	if err := ts.authorize(ctx, requester, todoID); err != nil {
		log.Warn("delete not authorized", slog.String("todo_id", todoID), slog.String("error", err.Error()))
		return err
	}

	if err := ts.todoRepo.Delete(ctx, todoID); err != nil {
		if errors.Is(err, models.ErrTodoNotFound) {
			return models.ErrTodoNotFound
		}
		log.Error("failed to delete todo", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	ts.invalidateCount(ctx, requester.ID)

	log.Debug("todo deleted", slog.String("todo_id", todoID))

	return nil
}

func (ts *TodoService) Count(ctx context.Context, requester *models.User) (int, error) {
	op := pkg + "Count"

	log := ts.log.With(slog.String("op", op))

	count, ok, err := ts.counts.Count(ctx, resource, requester.ID)
	if err != nil {
		log.Warn("failed to read count cache", slog.String("error", err.Error()))
	} else if ok {
		return count, nil
	}

	count, err = ts.todoRepo.CountByOwner(ctx, requester.ID)
	if err != nil {
		log.Error("failed to count todos", slog.String("error", err.Error()))
		return 0, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := ts.counts.SetCount(ctx, resource, requester.ID, count); err != nil {
		log.Warn("failed to set count cache", slog.String("error", err.Error()))
	}

	return count, nil
}

func (ts *TodoService) authorize(ctx context.Context, requester *models.User, todoID string) error {
	op := pkg + "authorize"

	todo, err := ts.todoRepo.TodoByID(ctx, todoID)
	if err != nil && !errors.Is(err, models.ErrTodoNotFound) {
		ts.log.With(slog.String("op", op)).Error("failed to get todo by id", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	var ownerID string
	if todo != nil {
		ownerID = todo.OwnerID
	}

	return guard.Check(requester, ownerID, err == nil, models.ErrTodoNotFound)
}

func (ts *TodoService) invalidateCount(ctx context.Context, ownerID string) {
	if err := ts.counts.Invalidate(ctx, resource, ownerID); err != nil {
		ts.log.Warn("failed to invalidate count cache", slog.String("error", err.Error()))
	}
}
