package models

import (
	"errors"
	"fmt"
)

var (
	ErrNoRows                 = errors.New("no rows")
	ErrUNIQUEConstraintFailed = errors.New("unique constraint failed")
	ErrInternal               = errors.New("internal server error")
	ErrMethodNotAllowed       = errors.New("method not allowed")
	ErrForbidden              = errors.New("access denied")
	ErrValidation             = errors.New("invalid params")
	ErrUserNotFound           = errors.New("user not found")
	ErrUserExists             = errors.New("user already exists")
	ErrNoteNotFound           = errors.New("note not found")
	ErrTodoNotFound           = errors.New("todo not found")
	ErrFileNotFound           = errors.New("file not found")
	ErrBlogNotFound           = errors.New("blog not found")
	ErrSessionNotFound        = errors.New("session not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrPayloadTooLarge        = errors.New("payload exceeds size limit")
	ErrUnsupportedMediaType   = errors.New("unsupported media type")
	ErrTooManyImages          = errors.New("too many images")
)

type UniqueConstraintError struct {
	Constraint string
	Err        error
}

func (e *UniqueConstraintError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Constraint)
}

func (e *UniqueConstraintError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is any of the per-resource not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoteNotFound) ||
		errors.Is(err, ErrTodoNotFound) ||
		errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrBlogNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsValidation reports whether err is a payload validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrPayloadTooLarge) ||
		errors.Is(err, ErrUnsupportedMediaType) ||
		errors.Is(err, ErrTooManyImages)
}
