package ports

import "github.com/mindreboot/mindreboot-api/internal/core/domain"

// Identity is the decoded, trusted content of a verified token. Handlers
// must rely on this, never on identity fields supplied by the client.
type Identity struct {
	UserID string
	Email  string
	Role   domain.Role
}

// TokenService issues and verifies stateless signed identity tokens.
// There is no server-side revocation: logout is client-side token discard.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify returns domain.ErrInvalidToken on any failure; tampering,
	// bad signature and expiry are indistinguishable to the caller.
	Verify(token string) (*Identity, error)
}
