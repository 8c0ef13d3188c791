package ports

import (
	"context"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
)

// ListAudiosFilter carries the query parameters for listing catalog items.
type ListAudiosFilter struct {
	Category   string // already normalized; empty = no filter
	Search     string // raw search text; repository escapes it for regex use
	PublicOnly bool
	Page       int // 1-based
	Limit      int
}

// AudioRepository defines persistence operations for catalog items.
type AudioRepository interface {
	Insert(ctx context.Context, a *domain.Audio) (*domain.Audio, error)
	FindByID(ctx context.Context, id string) (*domain.Audio, error)
	// List returns a page sorted newest-first by upload time (stable for
	// equal timestamps) together with the total matching count.
	List(ctx context.Context, filter ListAudiosFilter) ([]*domain.Audio, int64, error)
	Update(ctx context.Context, id string, a *domain.Audio) (*domain.Audio, error)
	Delete(ctx context.Context, id string) error
	// IncrementPlayCount and IncrementLikes apply an atomic $inc and
	// return the new counter value.
	IncrementPlayCount(ctx context.Context, id string) (int64, error)
	IncrementLikes(ctx context.Context, id string) (int64, error)
	// ReplaceAll wipes the collection and inserts the given items.
	ReplaceAll(ctx context.Context, items []*domain.Audio) (int, error)
}
