package blogservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path/filepath"
	"time"

	"lifehub/internal/guard"
	"lifehub/internal/lifecycle"
	"lifehub/internal/models"

	uuid "github.com/satori/go.uuid"
)

const (
	pkg      = "blogService/"
	resource = "blogs"
)

type BlogService struct {
	log       *slog.Logger
	blogRepo  BlogRepository
	lifecycle Lifecycle
	counts    CountCache
}

func New(
	log *slog.Logger,
	blogRepo BlogRepository,
	lc Lifecycle,
	counts CountCache,
) *BlogService {
	return &BlogService{
		log:       log,
		blogRepo:  blogRepo,
		lifecycle: lc,
		counts:    counts,
	}
}

func (bs *BlogService) ListOwn(ctx context.Context, requester *models.User) ([]*models.Blog, error) {
	op := pkg + "ListOwn"

	log := bs.log.With(slog.String("op", op))

	blogs, err := bs.blogRepo.ListByOwner(ctx, requester.ID)
	if err != nil {
		log.Error("failed to list blogs", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return blogs, nil
}

// ListPublic is the unauthenticated feed: every blog, newest first.
func (bs *BlogService) ListPublic(ctx context.Context) ([]*models.Blog, error) {
	op := pkg + "ListPublic"

	log := bs.log.With(slog.String("op", op))

	blogs, err := bs.blogRepo.ListAll(ctx)
	if err != nil {
		log.Error("failed to list public blogs", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return blogs, nil
}

func (bs *BlogService) BlogByID(ctx context.Context, requester *models.User, blogID string) (*models.Blog, error) {
	op := pkg + "BlogByID"

	log := bs.log.With(slog.String("op", op))

	blog, err := bs.load(ctx, requester, blogID)
	if err != nil {
		log.Warn("read not authorized", slog.String("blog_id", blogID), slog.String("error", err.Error()))
		return nil, err
	}

	return blog, nil
}

// Create stores the image blobs before the row; the author display name is
// copied from the requester at this point and never refreshed afterwards.
func (bs *BlogService) Create(ctx context.Context, requester *models.User, title string, content string, images []lifecycle.Payload) (*models.Blog, error) {
	op := pkg + "Create"

	log := bs.log.With(slog.String("op", op))

	log.Debug("attempting to create blog", slog.String("owner_id", requester.ID))

	if title == "" || content == "" {
		log.Warn("missing title or content")
		return nil, models.ErrValidation
	}

	stored, err := bs.lifecycle.StoreImages(images)
	if err != nil {
		if models.IsValidation(err) {
			return nil, err
		}
		log.Error("failed to store images", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	now := time.Now()

	blog := &models.Blog{
		ID:         uuid.NewV4().String(),
		OwnerID:    requester.ID,
		Title:      title,
		Content:    content,
		Author:     requester.Name,
		ImagePaths: paths(stored),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := bs.blogRepo.Create(ctx, blog); err != nil {
		log.Error("failed to save blog", slog.String("error", err.Error()))
		bs.lifecycle.RemoveImages(blog.ImagePaths)
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	bs.invalidateCount(ctx, requester.ID)

	log.Debug("blog created", slog.String("blog_id", blog.ID), slog.Int("images", len(blog.ImagePaths)))

	return blog, nil
}

// Update merges title/content and, when new images are supplied, replaces
// the image set wholesale. New blobs are written before the row changes and
// the old blobs are removed only afterwards, so the row always references
// durable content.
func (bs *BlogService) Update(ctx context.Context, requester *models.User, blogID string, upd models.BlogUpdate, images []lifecycle.Payload) (*models.Blog, error) {
	op := pkg + "Update"

	log := bs.log.With(slog.String("op", op))

	existing, err := bs.load(ctx, requester, blogID)
	if err != nil {
		log.Warn("update not authorized", slog.String("blog_id", blogID), slog.String("error", err.Error()))
		return nil, err
	}

	var newPaths []string

	if len(images) > 0 {
		stored, err := bs.lifecycle.StoreImages(images)
		if err != nil {
			if models.IsValidation(err) {
				return nil, err
			}
			log.Error("failed to store images", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}
		newPaths = paths(stored)
	}

	blog, err := bs.blogRepo.Update(ctx, blogID, upd, newPaths)
	if err != nil {
		if newPaths != nil {
			bs.lifecycle.RemoveImages(newPaths)
		}
		if errors.Is(err, models.ErrBlogNotFound) {
			return nil, models.ErrBlogNotFound
		}
		log.Error("failed to update blog", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if newPaths != nil && len(existing.ImagePaths) > 0 {
		bs.lifecycle.RemoveImages(existing.ImagePaths)
	}

	log.Debug("blog updated", slog.String("blog_id", blog.ID), slog.Int("images", len(blog.ImagePaths)))

	return blog, nil
}

// Delete removes the row first and then the image blobs best-effort: a
// leaked image is preferred over a dangling row reference.
func (bs *BlogService) Delete(ctx context.Context, requester *models.User, blogID string) error {
	op := pkg + "Delete"

	log := bs.log.With(slog.String("op", op))

	blog, err := bs.load(ctx, requester, blogID)
	if err != nil {
		log.Warn("delete not authorized", slog.String("blog_id", blogID), slog.String("error", err.Error()))
		return err
	}

	if err := bs.blogRepo.Delete(ctx, blogID); err != nil {
		if errors.Is(err, models.ErrBlogNotFound) {
			return models.ErrBlogNotFound
		}
		log.Error("failed to delete blog", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	bs.lifecycle.RemoveImages(blog.ImagePaths)

	bs.invalidateCount(ctx, requester.ID)

	log.Debug("blog deleted", slog.String("blog_id", blogID))

	return nil
}

// Image opens the blob of one blog image by its position in the stored
// set. Public, like the feed; the stored path never leaves the service.
func (bs *BlogService) Image(ctx context.Context, blogID string, position int) (string, io.ReadCloser, error) {
	op := pkg + "Image"

	log := bs.log.With(slog.String("op", op))

	blog, err := bs.blogRepo.BlogByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, models.ErrBlogNotFound) {
			return "", nil, models.ErrBlogNotFound
		}
		log.Error("failed to get blog by id", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if position < 0 || position >= len(blog.ImagePaths) {
		return "", nil, models.ErrBlogNotFound
	}

	path := blog.ImagePaths[position]

	rc, err := bs.lifecycle.Open(path)
	if err != nil {
		log.Error("failed to open image blob", slog.String("blog_id", blogID), slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return contentType, rc, nil
}

func (bs *BlogService) Count(ctx context.Context, requester *models.User) (int, error) {
	op := pkg + "Count"

	log := bs.log.With(slog.String("op", op))

	count, ok, err := bs.counts.Count(ctx, resource, requester.ID)
	if err != nil {
		log.Warn("failed to read count cache", slog.String("error", err.Error()))
	} else if ok {
		return count, nil
	}

	count, err = bs.blogRepo.CountByOwner(ctx, requester.ID)
	if err != nil {
		log.Error("failed to count blogs", slog.String("error", err.Error()))
		return 0, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	if err := bs.counts.SetCount(ctx, resource, requester.ID, count); err != nil {
		log.Warn("failed to set count cache", slog.String("error", err.Error()))
	}

	return count, nil
}

func (bs *BlogService) load(ctx context.Context, requester *models.User, blogID string) (*models.Blog, error) {
	op := pkg + "load"

	blog, err := bs.blogRepo.BlogByID(ctx, blogID)
	if err != nil && !errors.Is(err, models.ErrBlogNotFound) {
		bs.log.With(slog.String("op", op)).Error("failed to get blog by id", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	var ownerID string
	if blog != nil {
		ownerID = blog.OwnerID
	}

	if guardErr := guard.Check(requester, ownerID, err == nil, models.ErrBlogNotFound); guardErr != nil {
		return nil, guardErr
	}

	return blog, nil
}

func (bs *BlogService) invalidateCount(ctx context.Context, ownerID string) {
	if err := bs.counts.Invalidate(ctx, resource, ownerID); err != nil {
		bs.log.Warn("failed to invalidate count cache", slog.String("error", err.Error()))
	}
}

func paths(stored []lifecycle.StoredBlob) []string {
	out := make([]string, 0, len(stored))
	for _, s := range stored {
		out = append(out, s.Path)
	}
	return out
}
