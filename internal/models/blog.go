package models

import "time"

type Blog struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	// Author is the owner's display name captured at creation time,
	// not a live reference to the user row.
	Author     string    `json:"author"`
	ImagePaths []string  `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BlogUpdate carries a merge-update: nil fields keep their stored value.
// Images, when present, replace the existing set wholesale.
type BlogUpdate struct {
	Title   *string
	Content *string
}
