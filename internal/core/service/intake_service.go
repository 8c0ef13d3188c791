package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
	"github.com/mindreboot/mindreboot-api/internal/core/ports"
)

var intakeEmailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)

// IntakeService validates and persists personalized audio requests and
// drives them through the fulfillment state machine.
type IntakeService struct {
	repo   ports.RequestRepository
	logger zerolog.Logger
}

func NewIntakeService(repo ports.RequestRepository, logger zerolog.Logger) *IntakeService {
	return &IntakeService{repo: repo, logger: logger}
}

// Submit validates the intake form, derives the amount from the urgency
// tier and persists the request. The payment flow is stubbed: payment
// status defaults to completed.
func (s *IntakeService) Submit(ctx context.Context, input ports.SubmitRequestInput) (*ports.SubmitRequestResult, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	specific := strings.TrimSpace(input.SpecificRequest)

	switch {
	case name == "":
		return nil, domain.ErrValidation("name is required")
	case email == "":
		return nil, domain.ErrValidation("email is required")
	case input.Issue == "":
		return nil, domain.ErrValidation("issue is required")
	case specific == "":
		return nil, domain.ErrValidation("specific request is required")
	case input.Duration == "":
		return nil, domain.ErrValidation("duration preference is required")
	case input.Urgency == "":
		return nil, domain.ErrValidation("urgency level is required")
	}

	if !intakeEmailPattern.MatchString(email) {
		return nil, domain.ErrValidation("invalid email format")
	}
	if !domain.ValidIssue(input.Issue) {
		return nil, domain.ErrValidation("invalid issue category")
	}
	if !domain.ValidDurationBand(input.Duration) {
		return nil, domain.ErrValidation("invalid duration preference")
	}
	if len(specific) > 2000 {
		return nil, domain.ErrValidation("request description cannot exceed 2000 characters")
	}

	urgency, err := domain.ParseUrgency(input.Urgency)
	if err != nil {
		return nil, domain.ErrValidation("invalid urgency level")
	}

	requestDate := input.RequestDate
	if requestDate.IsZero() {
		requestDate = time.Now().UTC()
	}

	now := time.Now().UTC()
	req := &domain.PersonalizedRequest{
		Name:               name,
		Email:              email,
		Phone:              strings.TrimSpace(input.Phone),
		Issue:              input.Issue,
		SpecificRequest:    specific,
		Duration:           input.Duration,
		Urgency:            urgency,
		PreviousExperience: input.PreviousExperience,
		AdditionalNotes:    strings.TrimSpace(input.AdditionalNotes),
		Amount:             urgency.Price(),
		PaymentStatus:      domain.PaymentCompleted,
		PaymentID:          input.PaymentID,
		Status:             domain.RequestSubmitted,
		RequestDate:        requestDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := s.repo.Insert(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("request_id", created.ID).
		Str("urgency", string(created.Urgency)).
		Int("amount", created.Amount).
		Msg("personalized request submitted")

	return &ports.SubmitRequestResult{
		RequestID:         created.ID,
		Message:           "Personalized audio request submitted successfully",
		EstimatedDelivery: urgency.DeliveryEstimate(),
		Amount:            created.FormattedAmount(),
	}, nil
}

// List returns one page of requests for the fulfillment dashboard.
func (s *IntakeService) List(ctx context.Context, input ports.ListRequestsInput) (*ports.ListRequestsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	var status domain.RequestStatus
	if input.Status != "" && input.Status != "all" {
		parsed, err := domain.ParseRequestStatus(input.Status)
		if err != nil {
			return nil, domain.ErrValidation("invalid status filter")
		}
		status = parsed
	}

	items, total, err := s.repo.List(ctx, ports.ListRequestsFilter{
		Status: status,
		Email:  strings.ToLower(strings.TrimSpace(input.Email)),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListRequestsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// UpdateStatus advances a request through the state machine. Illegal
// transitions are rejected with domain.ErrInvalidTransition; delivered and
// cancelled are terminal.
func (s *IntakeService) UpdateStatus(ctx context.Context, input ports.UpdateRequestStatusInput) (*domain.PersonalizedRequest, error) {
	next, err := domain.ParseRequestStatus(input.Status)
	if err != nil {
		return nil, domain.ErrValidation("invalid status")
	}

	req, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if !req.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	req.Status = next
	req.UpdatedAt = time.Now().UTC()
	if input.AdminNotes != "" {
		req.AdminNotes = input.AdminNotes
	}

	switch next {
	case domain.RequestCompleted:
		if input.AudioURL != "" {
			req.AudioURL = strings.TrimSpace(input.AudioURL)
		}
	case domain.RequestDelivered:
		now := time.Now().UTC()
		req.DeliveredAt = &now
	}

	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("request_id", req.ID).
		Str("status", string(req.Status)).
		Msg("personalized request status updated")

	return req, nil
}
