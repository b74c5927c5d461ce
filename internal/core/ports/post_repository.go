package ports

import (
	"context"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

// PostRepository defines persistence operations for posts. Reads and writes
// are single-document and atomic; no multi-document transactions are used.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns all posts sorted by created_at descending.
	List(ctx context.Context) ([]*domain.Post, error)
	// Update persists title, content and updated_at for an existing post.
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
}
