package ports

import (
	"context"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at account creation.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // optional; defaults to "user"
}

// AuthService implements registration, login and profile lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
