package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-platform/internal/api/middleware"
	"github.com/inkwell/blog-platform/internal/core/domain"
)

// ctxUserID extracts the caller identity injected by the Auth middleware.
// An empty id means the middleware did not run on this route — reject with
// 401 before any service call.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.UserIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// ctxPost extracts the post loaded by the Ownership middleware.
func ctxPost(c echo.Context) (*domain.Post, error) {
	post, _ := c.Get(middleware.PostKey).(*domain.Post)
	if post == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "post not loaded")
	}
	return post, nil
}
