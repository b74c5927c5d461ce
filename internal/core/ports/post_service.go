package ports

import (
	"context"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

// CreatePostInput carries all data needed to publish a new post.
type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID string
}

// UpdatePostInput carries the mutable fields of a post. The author identity
// is deliberately absent: it is fixed at creation.
type UpdatePostInput struct {
	Title   string
	Content string
}

// PostService defines use-case operations for posts.
type PostService interface {
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	// Update mutates title/content of an already-loaded post (the ownership
	// guard fetched it) and returns the updated document.
	Update(ctx context.Context, post *domain.Post, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
