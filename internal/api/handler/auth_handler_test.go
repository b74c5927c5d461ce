package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string) (*domain.User, string, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.User, string, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.loginFn(ctx, email, password)
}

func newAuthContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, string, error) {
			if name != "Alice" || email != "alice@example.com" || password != "hunter22" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return &domain.User{ID: "u1", Name: name, Email: email}, "token123", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"hunter22"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data in response")
	}
	if data["id"] != "u1" || data["email"] != "alice@example.com" || data["token"] != "token123" {
		t.Fatalf("unexpected payload: %+v", data)
	}
	if _, leaked := data["password"]; leaked {
		t.Fatalf("password must never be serialized")
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, string, error) {
			t.Fatalf("should not be called")
			return nil, "", nil
		},
	}
	h := NewAuthHandler(stub)

	cases := []string{
		`not-json`,
		`{"name":"Bob","email":"not-an-email","password":"hunter22"}`,
		`{"name":"Bob","email":"bob@example.com","password":"short"}`,
		`{"email":"bob@example.com","password":"hunter22"}`,
	}
	for _, body := range cases {
		c, _ := newAuthContext(t, "/auth/register", body)
		err := h.Register(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400 HTTPError, got %v", body, err)
		}
	}
}

func TestAuthHandler_Register_DuplicateEmailPassedThrough(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, email, password string) (*domain.User, string, error) {
			return nil, "", domain.ErrDuplicateEmail
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, "/auth/register",
		`{"name":"Bob","email":"bob@example.com","password":"hunter22"}`)

	if err := h.Register(c); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return &domain.User{ID: "u1", Name: "Alice", Email: email}, "token123", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, "/auth/login",
		`{"email":"alice@example.com","password":"hunter22"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, _ := resp["data"].(map[string]any)
	if data["token"] != "token123" {
		t.Fatalf("expected token, got %v", data["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentialsPassedThrough(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, "/auth/login",
		`{"email":"alice@example.com","password":"badpass1"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}
