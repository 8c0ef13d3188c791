package ports

import (
	"context"
	"time"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Emails are stored lowercased; lookups are case-insensitive by contract.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateLastLogin is best effort; a failure must not block a login.
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
