package entities

import "time"

type File struct {
	ID           string    `db:"id"`
	OwnerID      string    `db:"owner_id"`
	StoredName   string    `db:"stored_name"`
	OriginalName string    `db:"original_name"`
	Mime         string    `db:"mime"`
	Path         string    `db:"path"`
	Size         int64     `db:"size"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
