package ports

import (
	"context"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
)

// ListRequestsFilter carries the query parameters for listing requests.
type ListRequestsFilter struct {
	Status domain.RequestStatus // empty = no filter
	Email  string               // already lowercased; empty = no filter
	Page   int                  // 1-based
	Limit  int
}

// RequestRepository defines persistence operations for personalized requests.
type RequestRepository interface {
	Insert(ctx context.Context, r *domain.PersonalizedRequest) (*domain.PersonalizedRequest, error)
	FindByID(ctx context.Context, id string) (*domain.PersonalizedRequest, error)
	// List returns a page sorted newest-first by request date together
	// with the total matching count.
	List(ctx context.Context, filter ListRequestsFilter) ([]*domain.PersonalizedRequest, int64, error)
	Update(ctx context.Context, r *domain.PersonalizedRequest) error
}
