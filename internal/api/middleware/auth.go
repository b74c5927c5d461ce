package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-platform/internal/api/metrics"
	"github.com/inkwell/blog-platform/internal/core/domain"
	"github.com/inkwell/blog-platform/internal/core/ports"
)

// UserIDKey is the echo context key under which Auth stores the verified
// caller identity.
const UserIDKey = "user_id"

// Auth validates the bearer token and injects the resolved user id into the
// context. The token's subject is trusted for the request lifetime; the user
// record is not re-fetched. Every failure kind maps to the same 401 for the
// caller but is logged and counted individually.
func Auth(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(c, log, domain.ErrTokenMissing)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return reject(c, log, domain.ErrTokenMalformed)
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				return reject(c, log, err)
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}

func reject(c echo.Context, log zerolog.Logger, cause error) error {
	reason := rejectionReason(cause)
	metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
	log.Debug().
		Str("reason", reason).
		Str("path", c.Path()).
		Msg("bearer token rejected")

	// The cause is deliberately not echoed to the caller.
	return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenMissing):
		return "missing"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "bad_signature"
	default:
		return "malformed"
	}
}
