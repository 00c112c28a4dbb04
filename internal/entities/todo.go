package entities

import "time"

type Todo struct {
	ID        string    `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Text      string    `db:"text"`
	Completed bool      `db:"completed"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
