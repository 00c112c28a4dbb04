package guard

import (
	"lifehub/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck_Authorized(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}

	err := Check(requester, "u1", true, models.ErrNoteNotFound)
	assert.NoError(t, err)
}

func TestCheck_Forbidden(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u2"}

	err := Check(requester, "u1", true, models.ErrNoteNotFound)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestCheck_NotFound(t *testing.T) {
	t.Parallel()

	requester := &models.User{ID: "u1"}

	err := Check(requester, "", false, models.ErrTodoNotFound)
	assert.ErrorIs(t, err, models.ErrTodoNotFound)
}

func TestCheck_NotFoundBeforeOwnership(t *testing.T) {
	t.Parallel()

	// A stranger probing a missing id must see not-found, not forbidden.
	requester := &models.User{ID: "u2"}

	err := Check(requester, "u1", false, models.ErrBlogNotFound)
	assert.ErrorIs(t, err, models.ErrBlogNotFound)
	assert.NotErrorIs(t, err, models.ErrForbidden)
}

func TestCheck_NilRequester(t *testing.T) {
	t.Parallel()

	err := Check(nil, "u1", true, models.ErrFileNotFound)
	assert.ErrorIs(t, err, models.ErrForbidden)
}
