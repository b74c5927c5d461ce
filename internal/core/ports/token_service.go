package ports

// TokenService issues and verifies stateless bearer tokens. Issue is a pure
// computation; Verify reports one of the domain token error kinds on failure.
type TokenService interface {
	Issue(userID string) (string, error)
	// Verify returns the subject user id encoded in the token.
	Verify(token string) (string, error)
}
