package ports

import (
	"context"
	"time"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
)

// SubmitRequestInput carries the intake form fields. Amount is absent on
// purpose: pricing is always derived server-side from the urgency tier.
type SubmitRequestInput struct {
	Name               string
	Email              string
	Phone              string
	Issue              string
	SpecificRequest    string
	Duration           string
	Urgency            string
	PreviousExperience string
	AdditionalNotes    string
	PaymentID          string
	RequestDate        time.Time // zero = now
}

// SubmitRequestResult is returned after a successful intake submission.
type SubmitRequestResult struct {
	RequestID         string
	Message           string
	EstimatedDelivery string
	Amount            string // formatted, e.g. "$97.00"
}

// ListRequestsInput carries the admin/therapist listing parameters.
type ListRequestsInput struct {
	Status string // "all" or "" = no filter
	Email  string
	Page   int
	Limit  int
}

// ListRequestsResult is the paginated request page.
type ListRequestsResult struct {
	Items      []*domain.PersonalizedRequest
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UpdateRequestStatusInput moves a request through its fulfillment
// lifecycle. AudioURL is only meaningful when transitioning to completed.
type UpdateRequestStatusInput struct {
	ID         string
	Status     string
	AudioURL   string
	AdminNotes string
}

// IntakeService defines use-case operations for personalized audio requests.
type IntakeService interface {
	Submit(ctx context.Context, input SubmitRequestInput) (*SubmitRequestResult, error)
	List(ctx context.Context, input ListRequestsInput) (*ListRequestsResult, error)
	UpdateStatus(ctx context.Context, input UpdateRequestStatusInput) (*domain.PersonalizedRequest, error)
}
