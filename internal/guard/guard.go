// Package guard implements the ownership check shared by every resource
// service. Existence is always checked before ownership, so a missing
// resource is reported as not-found and never as access denied.
package guard

import (
	"lifehub/internal/models"
)

// Check authorizes requester against a loaded resource. exists must reflect
// whether the lookup found a row; notFoundErr is the resource's own sentinel
// returned when it did not.
func Check(requester *models.User, ownerID string, exists bool, notFoundErr error) error {
	if !exists {
		return notFoundErr
	}

	if requester == nil || requester.ID != ownerID {
		return models.ErrForbidden
	}

	return nil
}
