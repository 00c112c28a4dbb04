package entities

import "time"

type Blog struct {
	ID        string    `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Author    string    `db:"author"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type BlogImage struct {
	BlogID   string `db:"blog_id"`
	Position int    `db:"position"`
	Path     string `db:"path"`
}
