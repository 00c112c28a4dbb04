package dto

import "time"

type UpdateBlogRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type BlogResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	ImageCount int       `json:"image_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
