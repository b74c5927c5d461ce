package domain

import "errors"

// Token verification failure kinds. All of them surface to the caller as a
// single 401, but logging and metrics need to tell them apart.
var (
	ErrTokenMissing          = errors.New("missing bearer token")
	ErrTokenMalformed        = errors.New("malformed token")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
)
