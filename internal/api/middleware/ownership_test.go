package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

type stubPostRepo struct {
	posts map[string]*domain.Post
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	return p, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) List(context.Context) ([]*domain.Post, error) { return nil, nil }
func (r *stubPostRepo) Update(context.Context, *domain.Post) error   { return nil }
func (r *stubPostRepo) Delete(context.Context, string) error         { return nil }

func ownershipContext(t *testing.T, callerID, postID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/posts/"+postID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(postID)
	if callerID != "" {
		c.Set(UserIDKey, callerID)
	}
	return c, rec
}

func TestOwnership_OwnerPassesAndPostIsAttached(t *testing.T) {
	repo := &stubPostRepo{posts: map[string]*domain.Post{
		"p1": {ID: "p1", Title: "mine", AuthorID: "user_a"},
	}}
	c, _ := ownershipContext(t, "user_a", "p1")

	called := false
	handler := Ownership(repo, zerolog.Nop())(func(c echo.Context) error {
		called = true
		post, _ := c.Get(PostKey).(*domain.Post)
		if post == nil || post.ID != "p1" {
			t.Fatalf("expected loaded post in context, got %v", c.Get(PostKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestOwnership_NonOwnerForbidden(t *testing.T) {
	repo := &stubPostRepo{posts: map[string]*domain.Post{
		"p1": {ID: "p1", Title: "mine", AuthorID: "user_a"},
	}}
	c, _ := ownershipContext(t, "user_b", "p1")

	handler := Ownership(repo, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestOwnership_MissingPost_NotFoundForEveryone(t *testing.T) {
	repo := &stubPostRepo{posts: map[string]*domain.Post{}}

	// Owner or not, an absent resource yields the same NotFound before any
	// ownership comparison.
	for _, caller := range []string{"user_a", "user_b"} {
		c, _ := ownershipContext(t, caller, "ghost")
		handler := Ownership(repo, zerolog.Nop())(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})
		if err := handler(c); err != domain.ErrPostNotFound {
			t.Fatalf("caller %s: expected ErrPostNotFound, got %v", caller, err)
		}
	}
}

func TestOwnership_NoAuthenticatedCaller(t *testing.T) {
	repo := &stubPostRepo{posts: map[string]*domain.Post{
		"p1": {ID: "p1", AuthorID: "user_a"},
	}}
	c, _ := ownershipContext(t, "", "p1")

	handler := Ownership(repo, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
