package blogrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lifehub/internal/entities"
	"lifehub/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pkg = "blogRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, blog *models.Blog) error {
	op := pkg + "Create"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO blogs (id, owner_id, title, content, author, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		blog.ID, blog.OwnerID, blog.Title, blog.Content, blog.Author, blog.CreatedAt, blog.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for i, path := range blog.ImagePaths {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO blog_images (blog_id, position, path) VALUES ($1, $2, $3)`,
			blog.ID, i, path)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) BlogByID(ctx context.Context, id string) (*models.Blog, error) {
	op := pkg + "BlogByID"

	rawBlog := entities.Blog{}

	err := r.db.GetContext(ctx, &rawBlog,
		`SELECT
			b.id AS id,
			b.owner_id AS owner_id,
			b.title AS title,
			b.content AS content,
			b.author AS author,
			b.created_at AS created_at,
			b.updated_at AS updated_at
		FROM blogs b
		WHERE b.id = $1`,
		id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrBlogNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	paths, err := r.imagePaths(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return blogFromEntity(&rawBlog, paths), nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Blog, error) {
	op := pkg + "ListByOwner"

	blogs, err := r.list(ctx,
		`SELECT
			b.id AS id,
			b.owner_id AS owner_id,
			b.title AS title,
			b.content AS content,
			b.author AS author,
			b.created_at AS created_at,
			b.updated_at AS updated_at
		FROM blogs b
		WHERE b.owner_id = $1
		ORDER BY b.created_at DESC`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return blogs, nil
}

// ListAll returns every blog newest-first, for the public feed.
func (r *repository) ListAll(ctx context.Context) ([]*models.Blog, error) {
	op := pkg + "ListAll"

	blogs, err := r.list(ctx,
		`SELECT
			b.id AS id,
			b.owner_id AS owner_id,
			b.title AS title,
			b.content AS content,
			b.author AS author,
			b.created_at AS created_at,
			b.updated_at AS updated_at
		FROM blogs b
		ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return blogs, nil
}

// Update merges the supplied fields; imagePaths, when non-nil, replaces the
// stored image set wholesale.
func (r *repository) Update(ctx context.Context, id string, upd models.BlogUpdate, imagePaths []string) (*models.Blog, error) {
	op := pkg + "Update"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	rawBlog := entities.Blog{}

	err = tx.GetContext(ctx, &rawBlog,
		`UPDATE blogs SET
			title = COALESCE($2, title),
			content = COALESCE($3, content),
			updated_at = $4
		WHERE id = $1
		RETURNING id, owner_id, title, content, author, created_at, updated_at`,
		id, upd.Title, upd.Content, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrBlogNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if imagePaths != nil {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM blog_images WHERE blog_id = $1`, id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		for i, path := range imagePaths {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO blog_images (blog_id, position, path) VALUES ($1, $2, $3)`,
				id, i, path)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if imagePaths == nil {
		imagePaths, err = r.imagePaths(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return blogFromEntity(&rawBlog, imagePaths), nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	op := pkg + "Delete"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM blog_images WHERE blog_id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrBlogNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	op := pkg + "CountByOwner"

	var count int

	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM blogs WHERE owner_id = $1`,
		ownerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (r *repository) list(ctx context.Context, query string, args ...any) ([]*models.Blog, error) {
	rawBlogs := make([]entities.Blog, 0)

	err := r.db.SelectContext(ctx, &rawBlogs, query, args...)
	if err != nil {
		return nil, err
	}

	if len(rawBlogs) == 0 {
		return []*models.Blog{}, nil
	}

	ids := make([]string, 0, len(rawBlogs))
	for _, rawBlog := range rawBlogs {
		ids = append(ids, rawBlog.ID)
	}

	pathsByBlog, err := r.imagePathsByBlog(ctx, ids)
	if err != nil {
		return nil, err
	}

	blogs := make([]*models.Blog, 0, len(rawBlogs))

	for _, rawBlog := range rawBlogs {
		blogs = append(blogs, blogFromEntity(&rawBlog, pathsByBlog[rawBlog.ID]))
	}

	return blogs, nil
}

// imagePathsByBlog loads the image sets for a batch of blogs in one query,
// position order preserved per blog.
func (r *repository) imagePathsByBlog(ctx context.Context, blogIDs []string) (map[string][]string, error) {
	op := pkg + "imagePathsByBlog"

	rows := make([]entities.BlogImage, 0)

	err := r.db.SelectContext(ctx, &rows,
		`SELECT
			i.blog_id AS blog_id,
			i.position AS position,
			i.path AS path
		FROM blog_images i
		WHERE i.blog_id = ANY($1)
		ORDER BY i.blog_id, i.position ASC`,
		pq.Array(blogIDs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pathsByBlog := make(map[string][]string, len(blogIDs))
	for _, row := range rows {
		pathsByBlog[row.BlogID] = append(pathsByBlog[row.BlogID], row.Path)
	}

	return pathsByBlog, nil
}

func (r *repository) imagePaths(ctx context.Context, blogID string) ([]string, error) {
	op := pkg + "imagePaths"

	paths := make([]string, 0)

	err := r.db.SelectContext(ctx, &paths,
		`SELECT
			i.path
		FROM blog_images i
		WHERE i.blog_id = $1
		ORDER BY i.position ASC`,
		blogID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return paths, nil
}

func blogFromEntity(e *entities.Blog, paths []string) *models.Blog {
	return &models.Blog{
		ID:         e.ID,
		OwnerID:    e.OwnerID,
		Title:      e.Title,
		Content:    e.Content,
		Author:     e.Author,
		ImagePaths: paths,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
