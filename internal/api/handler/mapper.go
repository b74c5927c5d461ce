package handler

import (
	"github.com/inkwell/blog-platform/internal/core/domain"
)

func toAuthData(u *domain.User, token string) authData {
	return authData{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Token: token,
	}
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
}

func toPostList(posts []*domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}
