package models

import "time"

type File struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	StoredName   string    `json:"stored_name"`
	OriginalName string    `json:"original_name"`
	Mime         string    `json:"mime"`
	Path         string    `json:"-"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
