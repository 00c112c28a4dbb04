// Package lifecycle coordinates binary payloads on the blob area with the
// metadata rows that reference them. Callers write blobs before creating
// rows and write new blobs before deleting old ones, so a row never points
// at content that was supposed to exist and vanished.
package lifecycle

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"lifehub/internal/models"
)

const pkg = "lifecycle/"

type Blob interface {
	Write(namespace string, name string, reader io.Reader) (string, int64, error)
	Open(path string) (io.ReadCloser, error)
	Delete(path string) error
}

type Config struct {
	FilesNamespace    string
	ImagesNamespace   string
	MaxFileSize       int64
	MaxImageSize      int64
	MaxImages         int
	AllowedImageTypes []string
}

// Payload is a single binary upload with its untrusted declared attributes.
type Payload struct {
	OriginalName string
	Mime         string
	Size         int64
	Content      io.Reader
}

type StoredBlob struct {
	StoredName string
	Path       string
	Size       int64
}

type Manager struct {
	log  *slog.Logger
	blob Blob
	cfg  Config
}

func New(log *slog.Logger, blob Blob, cfg Config) *Manager {
	return &Manager{
		log:  log,
		blob: blob,
		cfg:  cfg,
	}
}

// StoreFile validates and writes a single general-purpose upload. No
// metadata row exists yet when this runs; on failure nothing is kept.
func (m *Manager) StoreFile(p Payload) (*StoredBlob, error) {
	op := pkg + "StoreFile"

	log := m.log.With(slog.String("op", op))

	if p.OriginalName == "" || p.Content == nil {
		return nil, models.ErrValidation
	}

	if p.Size > m.cfg.MaxFileSize {
		log.Warn("upload rejected, too large", slog.Int64("size", p.Size))
		return nil, models.ErrPayloadTooLarge
	}

	name := storedName(p.OriginalName, 0)

	path, written, err := m.blob.Write(m.cfg.FilesNamespace, name, p.Content)
	if err != nil {
		log.Error("failed to write blob", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("file stored", slog.String("stored_name", name), slog.Int64("size", written))

	return &StoredBlob{StoredName: name, Path: path, Size: written}, nil
}

// StoreImages validates every image payload before writing any of them,
// so an oversized or disallowed payload leaves no blob behind. A partial
// write failure removes the blobs already written.
func (m *Manager) StoreImages(payloads []Payload) ([]StoredBlob, error) {
	op := pkg + "StoreImages"

	log := m.log.With(slog.String("op", op))

	if len(payloads) > m.cfg.MaxImages {
		log.Warn("upload rejected, too many images", slog.Int("count", len(payloads)))
		return nil, models.ErrTooManyImages
	}

	for _, p := range payloads {
		if p.OriginalName == "" || p.Content == nil {
			return nil, models.ErrValidation
		}
		if p.Size > m.cfg.MaxImageSize {
			log.Warn("image rejected, too large", slog.Int64("size", p.Size))
			return nil, models.ErrPayloadTooLarge
		}
		if !slices.Contains(m.cfg.AllowedImageTypes, p.Mime) {
			log.Warn("image rejected, disallowed type", slog.String("mime", p.Mime))
			return nil, models.ErrUnsupportedMediaType
		}
	}

	stored := make([]StoredBlob, 0, len(payloads))

	for i, p := range payloads {
		name := storedName(p.OriginalName, i)

		path, written, err := m.blob.Write(m.cfg.ImagesNamespace, name, p.Content)
		if err != nil {
			log.Error("failed to write image blob", slog.String("error", err.Error()))
			for _, s := range stored {
				if delErr := m.blob.Delete(s.Path); delErr != nil {
					log.Error("failed to clean up partial upload", slog.String("error", delErr.Error()))
				}
			}
			return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
		}

		stored = append(stored, StoredBlob{StoredName: name, Path: path, Size: written})
	}

	log.Debug("images stored", slog.Int("count", len(stored)))

	return stored, nil
}

// RemoveFile deletes a single-file blob. Failure is surfaced to the caller:
// the metadata row must stay if the blob could not be removed.
func (m *Manager) RemoveFile(path string) error {
	op := pkg + "RemoveFile"

	if err := m.blob.Delete(path); err != nil {
		m.log.With(slog.String("op", op)).Error("failed to delete blob", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveImages deletes blog image blobs best-effort. A leaked blob is
// tolerated over a dangling row reference, so failures are only logged.
func (m *Manager) RemoveImages(paths []string) {
	op := pkg + "RemoveImages"

	log := m.log.With(slog.String("op", op))

	for _, path := range paths {
		if err := m.blob.Delete(path); err != nil {
			log.Warn("failed to delete image blob, leaking it", slog.String("error", err.Error()))
		}
	}
}

func (m *Manager) Open(path string) (io.ReadCloser, error) {
	op := pkg + "Open"

	rc, err := m.blob.Open(path)
	if err != nil {
		m.log.With(slog.String("op", op)).Error("failed to open blob", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rc, nil
}

// storedName derives a collision-resistant name from the upload time and the
// original extension. Uniqueness is best-effort: two writes in the same
// millisecond from different requests may still clash. position keeps the
// payloads of one multi-image request apart.
func storedName(originalName string, position int) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))

	if position > 0 {
		return fmt.Sprintf("%d_%d%s", time.Now().UnixMilli(), position, ext)
	}

	return fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)
}
