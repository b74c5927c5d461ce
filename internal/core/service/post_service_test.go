package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-platform/internal/core/domain"
	"github.com/inkwell/blog-platform/internal/core/ports"
)

// stubPostRepo stores posts in insertion order; it deliberately does not
// sort, so the List tests prove the service enforces the ordering contract.
type stubPostRepo struct {
	posts  []*domain.Post
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{}
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.nextID++
	created := *post
	created.ID = fmt.Sprintf("post_%d", r.nextID)
	stored := created
	r.posts = append(r.posts, &stored)
	return &created, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	for _, p := range r.posts {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, post *domain.Post) error {
	for _, p := range r.posts {
		if p.ID == post.ID {
			p.Title = post.Title
			p.Content = post.Content
			p.UpdatedAt = post.UpdatedAt
			return nil
		}
	}
	return domain.ErrPostNotFound
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return domain.ErrPostNotFound
}

func newPostService(repo ports.PostRepository) *PostService {
	return NewPostService(repo, zerolog.Nop())
}

func TestPostService_CreateGet_RoundTrip(t *testing.T) {
	svc := newPostService(newStubPostRepo())

	created, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title:    "  Hello World  ",
		Content:  "<p>First post</p>",
		AuthorID: "user_1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Title != "Hello World" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.AuthorID != "user_1" {
		t.Fatalf("expected owner user_1, got %q", created.AuthorID)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Title != created.Title || got.Content != "<p>First post</p>" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.AuthorID == "" {
		t.Fatalf("owner reference must be non-empty")
	}
}

func TestPostService_Create_EmptyAfterStripping(t *testing.T) {
	svc := newPostService(newStubPostRepo())

	cases := []struct {
		name    string
		title   string
		content string
		want    error
	}{
		{"blank title", "   ", "content", domain.ErrEmptyTitle},
		{"tags-only title", "<b></b>", "content", domain.ErrEmptyTitle},
		{"blank content", "title", "  \n ", domain.ErrEmptyContent},
		{"tags-only content", "title", "<p>  </p>", domain.ErrEmptyContent},
	}

	for _, tc := range cases {
		_, err := svc.Create(context.Background(), ports.CreatePostInput{
			Title:    tc.title,
			Content:  tc.content,
			AuthorID: "user_1",
		})
		if err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestPostService_Update_MutatesOnlyTitleAndContent(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo)

	created, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title:    "Original",
		Content:  "body",
		AuthorID: "user_1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created, ports.UpdatePostInput{
		Title:   "Edited",
		Content: "new body",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.ID != created.ID {
		t.Fatalf("id must not change: %s vs %s", updated.ID, created.ID)
	}
	if updated.AuthorID != "user_1" {
		t.Fatalf("owner must not change, got %q", updated.AuthorID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at must not change")
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Fatalf("updated_at must be bumped")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Title != "Edited" || got.Content != "new body" {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestPostService_Update_RejectsEmptyBody(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo)

	created, _ := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "Original", Content: "body", AuthorID: "user_1",
	})

	if _, err := svc.Update(context.Background(), created, ports.UpdatePostInput{Title: "<i></i>", Content: "x"}); err != domain.ErrEmptyTitle {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestPostService_DeleteThenGet_NotFound(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo)

	created, _ := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "Doomed", Content: "body", AuthorID: "user_1",
	})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound on second delete, got %v", err)
	}
}

func TestPostService_List_NewestFirst(t *testing.T) {
	repo := newStubPostRepo()
	svc := newPostService(repo)

	// Insert directly with out-of-order timestamps to prove the service sorts.
	base := time.Now().UTC()
	for i, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		repo.posts = append(repo.posts, &domain.Post{
			ID:        fmt.Sprintf("post_%d", i),
			Title:     fmt.Sprintf("t%d", i),
			Content:   "c",
			AuthorID:  "user_1",
			CreatedAt: base.Add(-offset),
		})
	}

	posts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].CreatedAt.After(posts[i-1].CreatedAt) {
			t.Fatalf("posts not sorted newest first: %v before %v", posts[i-1].CreatedAt, posts[i].CreatedAt)
		}
	}

	// A new post moves to the front.
	created, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "Newest", Content: "c", AuthorID: "user_1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	posts, _ = svc.List(context.Background())
	if posts[0].ID != created.ID {
		t.Fatalf("expected newest post first, got %s", posts[0].ID)
	}
}
