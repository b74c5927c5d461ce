package ports

import (
	"context"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

// AuthService implements the credential store contract: registration and
// credential verification, both of which also mint a session token.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
