package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrForbidden = errors.New("access forbidden")
var ErrEmptyTitle = errors.New("title must not be empty")
var ErrEmptyContent = errors.New("content must not be empty")

// Post is a published article. AuthorID is set once at creation from the
// authenticated caller and never changes afterwards.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
