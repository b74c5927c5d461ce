package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-platform/internal/core/domain"
	"github.com/inkwell/blog-platform/internal/core/ports"
)

// PostKey is the echo context key under which Ownership stores the loaded
// post so the downstream handler does not fetch it again.
const PostKey = "post"

// Ownership loads the post named by the :id path parameter and admits only
// its author. A missing post yields 404 before any ownership comparison, so
// non-owners cannot probe which ids exist.
func Ownership(posts ports.PostRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerID, _ := c.Get(UserIDKey).(string)
			if callerID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			post, err := posts.FindByID(c.Request().Context(), c.Param("id"))
			if err != nil {
				return err
			}

			if post.AuthorID != callerID {
				log.Debug().
					Str("post_id", post.ID).
					Str("caller_id", callerID).
					Msg("mutation refused, caller is not the author")
				return domain.ErrForbidden
			}

			c.Set(PostKey, post)
			return next(c)
		}
	}
}
