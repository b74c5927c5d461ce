package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell/blog-platform/internal/core/domain"
	"github.com/inkwell/blog-platform/internal/core/ports"
)

// LoginThrottle abstracts the failed-login counter (Redis).
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration and login.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	throttle LoginThrottle
	log      zerolog.Logger

	// dummyHash is compared against when the email is unknown so that a
	// missing account costs the same as a wrong password.
	dummyHash []byte
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, throttle LoginThrottle, log zerolog.Logger) *AuthService {
	dummy, err := bcrypt.GenerateFromPassword([]byte("blog-platform-dummy"), bcrypt.DefaultCost)
	if err != nil {
		panic("auth: generate dummy hash: " + err.Error())
	}
	return &AuthService{users: users, tokens: tokens, throttle: throttle, log: log, dummyHash: dummy}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if s.throttle != nil {
		blocked, err := s.throttle.TooManyFailures(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle check failed, proceeding")
		} else if blocked {
			return nil, "", domain.ErrTooManyLogins
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err == domain.ErrUserNotFound {
		// Burn a comparison so an unknown email is indistinguishable, in
		// both error kind and effort, from a wrong password.
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		s.recordFailure(ctx, email)
		return nil, "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return nil, "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}
