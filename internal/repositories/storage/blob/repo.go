// Package blobrepo stores binary payloads on the local filesystem. Paths
// returned from Write are opaque to callers and are the only way to address
// a stored blob afterwards.
package blobrepo

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"lifehub/internal/models"
)

const pkg = "blobRepo/"

type Repository struct {
	root string
}

func NewRepository(root string) (*Repository, error) {
	op := pkg + "NewRepository"

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Repository{root: root}, nil
}

// Write streams reader into namespace/name under the repository root and
// returns the resulting path together with the number of bytes written.
func (r *Repository) Write(namespace string, name string, reader io.Reader) (string, int64, error) {
	op := pkg + "Write"

	dir := filepath.Join(r.root, namespace)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("%s: %w", op, err)
	}

	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("%s: %w", op, err)
	}

	written, err := io.Copy(dst, reader)
	if err != nil {
		dst.Close()
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("%s: %w", op, err)
	}

	return path, written, nil
}

func (r *Repository) Open(path string) (io.ReadCloser, error) {
	op := pkg + "Open"

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrFileNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}

func (r *Repository) Delete(path string) error {
	op := pkg + "Delete"

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", op, models.ErrFileNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
