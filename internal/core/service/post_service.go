package service

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-platform/internal/core/domain"
	"github.com/inkwell/blog-platform/internal/core/ports"
)

// tagPattern matches embedded markup; posts may contain HTML, but a post
// consisting only of tags and whitespace is rejected as empty.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

type PostService struct {
	repo ports.PostRepository
	log  zerolog.Logger
}

func NewPostService(repo ports.PostRepository, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, log: log}
}

// List returns all posts, newest created first. The sort is applied here so
// the ordering contract holds regardless of the backing store.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	title, content, err := validateBody(input.Title, input.Content)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:     title,
		Content:   content,
		AuthorID:  input.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.log.Info().Str("post_id", created.ID).Str("author_id", created.AuthorID).Msg("post created")
	return created, nil
}

// Update mutates title and content of a post the ownership guard already
// loaded. Author identity and creation time are untouched. Two concurrent
// updates by the owner resolve as last-writer-wins.
func (s *PostService) Update(ctx context.Context, post *domain.Post, input ports.UpdatePostInput) (*domain.Post, error) {
	title, content, err := validateBody(input.Title, input.Content)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", post.ID).Msg("post updated")
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("post_id", id).Msg("post deleted")
	return nil
}

// validateBody trims the title and rejects a title or content that is empty
// once markup tags and surrounding whitespace are stripped. Content is stored
// as written.
func validateBody(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	if visibleText(title) == "" {
		return "", "", domain.ErrEmptyTitle
	}
	if visibleText(content) == "" {
		return "", "", domain.ErrEmptyContent
	}
	return title, content, nil
}

func visibleText(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}
