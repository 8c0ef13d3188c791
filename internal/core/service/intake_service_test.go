package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
	"github.com/mindreboot/mindreboot-api/internal/core/ports"
)

type stubRequestRepo struct {
	requests   map[string]*domain.PersonalizedRequest
	lastFilter ports.ListRequestsFilter
	nextID     int
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{requests: make(map[string]*domain.PersonalizedRequest)}
}

func (r *stubRequestRepo) Insert(_ context.Context, req *domain.PersonalizedRequest) (*domain.PersonalizedRequest, error) {
	r.nextID++
	stored := *req
	stored.ID = "req-" + strconv.Itoa(r.nextID)
	r.requests[stored.ID] = &stored
	return &stored, nil
}

func (r *stubRequestRepo) FindByID(_ context.Context, id string) (*domain.PersonalizedRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	copied := *req
	return &copied, nil
}

func (r *stubRequestRepo) List(_ context.Context, filter ports.ListRequestsFilter) ([]*domain.PersonalizedRequest, int64, error) {
	r.lastFilter = filter
	out := make([]*domain.PersonalizedRequest, 0, len(r.requests))
	for _, req := range r.requests {
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

func (r *stubRequestRepo) Update(_ context.Context, req *domain.PersonalizedRequest) error {
	if _, ok := r.requests[req.ID]; !ok {
		return domain.ErrRequestNotFound
	}
	stored := *req
	r.requests[req.ID] = &stored
	return nil
}

func validSubmitInput() ports.SubmitRequestInput {
	return ports.SubmitRequestInput{
		Name:            "Alice",
		Email:           "alice@example.com",
		Issue:           "anxiety",
		SpecificRequest: "Help with public speaking nerves",
		Duration:        "25-30",
		Urgency:         "standard",
	}
}

func newTestIntakeService(repo ports.RequestRepository) *IntakeService {
	return NewIntakeService(repo, zerolog.Nop())
}

func TestSubmitDerivesPricing(t *testing.T) {
	tests := []struct {
		urgency  string
		amount   string
		delivery string
	}{
		{"standard", "$97.00", "7-10 business days"},
		{"priority", "$147.00", "3-5 business days"},
		{"rush", "$197.00", "24-48 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.urgency, func(t *testing.T) {
			repo := newStubRequestRepo()
			svc := newTestIntakeService(repo)

			input := validSubmitInput()
			input.Urgency = tt.urgency

			result, err := svc.Submit(context.Background(), input)
			if err != nil {
				t.Fatalf("Submit: %v", err)
			}
			if result.Amount != tt.amount {
				t.Errorf("amount = %q, want %q", result.Amount, tt.amount)
			}
			if result.EstimatedDelivery != tt.delivery {
				t.Errorf("delivery = %q, want %q", result.EstimatedDelivery, tt.delivery)
			}
			if result.RequestID == "" {
				t.Error("expected a request id")
			}

			stored := repo.requests[result.RequestID]
			if stored.Status != domain.RequestSubmitted {
				t.Errorf("status = %q, want submitted", stored.Status)
			}
			if stored.PaymentStatus != domain.PaymentCompleted {
				t.Errorf("payment status = %q, want completed", stored.PaymentStatus)
			}
		})
	}
}

func TestSubmitRejectsBadInput(t *testing.T) {
	svc := newTestIntakeService(newStubRequestRepo())

	tests := []struct {
		name   string
		mutate func(*ports.SubmitRequestInput)
	}{
		{"missing name", func(in *ports.SubmitRequestInput) { in.Name = "  " }},
		{"missing email", func(in *ports.SubmitRequestInput) { in.Email = "" }},
		{"bad email", func(in *ports.SubmitRequestInput) { in.Email = "not-an-email" }},
		{"missing issue", func(in *ports.SubmitRequestInput) { in.Issue = "" }},
		{"unknown issue", func(in *ports.SubmitRequestInput) { in.Issue = "procrastination" }},
		{"missing request", func(in *ports.SubmitRequestInput) { in.SpecificRequest = "" }},
		{"oversize request", func(in *ports.SubmitRequestInput) { in.SpecificRequest = strings.Repeat("x", 2001) }},
		{"missing duration", func(in *ports.SubmitRequestInput) { in.Duration = "" }},
		{"unknown duration", func(in *ports.SubmitRequestInput) { in.Duration = "5-10" }},
		{"missing urgency", func(in *ports.SubmitRequestInput) { in.Urgency = "" }},
		{"unknown urgency", func(in *ports.SubmitRequestInput) { in.Urgency = "immediate" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSubmitInput()
			tt.mutate(&input)

			_, err := svc.Submit(context.Background(), input)
			var ve domain.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("Submit error = %v, want ValidationError", err)
			}
		})
	}
}

func TestSubmitIgnoresClientAmount(t *testing.T) {
	repo := newStubRequestRepo()
	svc := newTestIntakeService(repo)

	// SubmitRequestInput has no amount field at all; the stored amount must
	// come from the urgency tier.
	input := validSubmitInput()
	input.Urgency = "rush"

	result, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if repo.requests[result.RequestID].Amount != 197 {
		t.Errorf("amount = %d, want 197", repo.requests[result.RequestID].Amount)
	}
}

func TestListStatusFilter(t *testing.T) {
	repo := newStubRequestRepo()
	svc := newTestIntakeService(repo)

	if _, err := svc.List(context.Background(), ports.ListRequestsInput{Status: "all"}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastFilter.Status != "" {
		t.Errorf("status filter = %q, want empty for 'all'", repo.lastFilter.Status)
	}

	if _, err := svc.List(context.Background(), ports.ListRequestsInput{Status: "in_progress"}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastFilter.Status != domain.RequestInProgress {
		t.Errorf("status filter = %q, want in_progress", repo.lastFilter.Status)
	}

	_, err := svc.List(context.Background(), ports.ListRequestsInput{Status: "bogus"})
	var ve domain.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("List error = %v, want ValidationError", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := newStubRequestRepo()
	svc := newTestIntakeService(repo)

	result, err := svc.Submit(context.Background(), validSubmitInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	id := result.RequestID

	// submitted -> delivered skips the machine
	if _, err := svc.UpdateStatus(context.Background(), ports.UpdateRequestStatusInput{ID: id, Status: "delivered"}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("skip-ahead error = %v, want ErrInvalidTransition", err)
	}

	// walk the happy path
	if _, err := svc.UpdateStatus(context.Background(), ports.UpdateRequestStatusInput{ID: id, Status: "in_progress"}); err != nil {
		t.Fatalf("to in_progress: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), ports.UpdateRequestStatusInput{
		ID: id, Status: "completed", AudioURL: "https://cdn/custom.mp3",
	})
	if err != nil {
		t.Fatalf("to completed: %v", err)
	}
	if updated.AudioURL != "https://cdn/custom.mp3" {
		t.Errorf("audio url = %q, want stamped on completion", updated.AudioURL)
	}

	updated, err = svc.UpdateStatus(context.Background(), ports.UpdateRequestStatusInput{ID: id, Status: "delivered"})
	if err != nil {
		t.Fatalf("to delivered: %v", err)
	}
	if updated.DeliveredAt == nil {
		t.Error("delivered_at should be stamped on delivery")
	}

	// delivered is terminal
	if _, err := svc.UpdateStatus(context.Background(), ports.UpdateRequestStatusInput{ID: id, Status: "cancelled"}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("terminal error = %v, want ErrInvalidTransition", err)
	}
}

func TestUpdateStatusUnknownRequest(t *testing.T) {
	svc := newTestIntakeService(newStubRequestRepo())

	_, err := svc.UpdateStatus(context.Background(), ports.UpdateRequestStatusInput{ID: "missing", Status: "in_progress"})
	if !errors.Is(err, domain.ErrRequestNotFound) {
		t.Errorf("UpdateStatus error = %v, want ErrRequestNotFound", err)
	}
}

func TestUpdateStatusInvalidStatus(t *testing.T) {
	svc := newTestIntakeService(newStubRequestRepo())

	_, err := svc.UpdateStatus(context.Background(), ports.UpdateRequestStatusInput{ID: "x", Status: "bogus"})
	var ve domain.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("UpdateStatus error = %v, want ValidationError", err)
	}
}
