package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
	"github.com/mindreboot/mindreboot-api/internal/core/ports"
)

type stubIntakeService struct {
	submitResult *ports.SubmitRequestResult
	submitInput  ports.SubmitRequestInput
	listResult   *ports.ListRequestsResult
	listInput    ports.ListRequestsInput
	updated      *domain.PersonalizedRequest
	err          error
}

func (s *stubIntakeService) Submit(_ context.Context, input ports.SubmitRequestInput) (*ports.SubmitRequestResult, error) {
	s.submitInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.submitResult, nil
}

func (s *stubIntakeService) List(_ context.Context, input ports.ListRequestsInput) (*ports.ListRequestsResult, error) {
	s.listInput = input
	if s.err != nil {
		return nil, s.err
	}
	return s.listResult, nil
}

func (s *stubIntakeService) UpdateStatus(_ context.Context, _ ports.UpdateRequestStatusInput) (*domain.PersonalizedRequest, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.updated, nil
}

const validSubmitBody = `{
	"name": "Alice",
	"email": "alice@example.com",
	"issue": "anxiety",
	"specificRequest": "Help with public speaking nerves",
	"duration": "25-30",
	"urgency": "standard"
}`

func TestRequestSubmit(t *testing.T) {
	svc := &stubIntakeService{
		submitResult: &ports.SubmitRequestResult{
			RequestID:         "req-1",
			Message:           "Personalized audio request submitted successfully",
			EstimatedDelivery: "7-10 business days",
			Amount:            "$97.00",
		},
	}
	h := NewRequestHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/personalized-requests", validSubmitBody)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp submitRequestResponse
	decodeBody(t, rec, &resp)
	if !resp.Success || resp.RequestID != "req-1" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Amount != "$97.00" {
		t.Errorf("amount = %q, want $97.00", resp.Amount)
	}
	if resp.EstimatedDelivery != "7-10 business days" {
		t.Errorf("delivery = %q", resp.EstimatedDelivery)
	}
}

func TestRequestSubmitIgnoresClientAmount(t *testing.T) {
	svc := &stubIntakeService{
		submitResult: &ports.SubmitRequestResult{RequestID: "req-1", Amount: "$197.00"},
	}
	h := NewRequestHandler(svc)

	// an injected amount field must not reach the service input
	body := `{
		"name": "Mallory",
		"email": "mallory@example.com",
		"issue": "anxiety",
		"specificRequest": "cheap please",
		"duration": "25-30",
		"urgency": "rush",
		"amount": 1
	}`
	c, rec := newTestContext(t, http.MethodPost, "/api/personalized-requests", body)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.submitInput.Urgency != "rush" {
		t.Errorf("urgency = %q", svc.submitInput.Urgency)
	}
}

func TestRequestSubmitValidation(t *testing.T) {
	h := NewRequestHandler(&stubIntakeService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.com","issue":"anxiety","specificRequest":"x","duration":"25-30","urgency":"standard"}`},
		{"bad email", `{"name":"A","email":"nope","issue":"anxiety","specificRequest":"x","duration":"25-30","urgency":"standard"}`},
		{"missing urgency", `{"name":"A","email":"a@b.com","issue":"anxiety","specificRequest":"x","duration":"25-30"}`},
		{"bad experience", `{"name":"A","email":"a@b.com","issue":"anxiety","specificRequest":"x","duration":"25-30","urgency":"standard","previousExperience":"expert"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t, http.MethodPost, "/api/personalized-requests", tt.body)
			if err := h.Submit(c); err != nil {
				t.Fatalf("Submit: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestRequestSubmitServiceValidation(t *testing.T) {
	h := NewRequestHandler(&stubIntakeService{err: domain.ErrValidation("invalid urgency level")})

	c, rec := newTestContext(t, http.MethodPost, "/api/personalized-requests", validSubmitBody)
	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRequestList(t *testing.T) {
	svc := &stubIntakeService{
		listResult: &ports.ListRequestsResult{
			Items: []*domain.PersonalizedRequest{
				{ID: "req-1", Name: "Alice", Status: domain.RequestSubmitted, Amount: 97},
			},
			Total:      1,
			Page:       1,
			Limit:      20,
			TotalPages: 1,
		},
	}
	h := NewRequestHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/personalized-requests?status=submitted&page=1", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.listInput.Status != "submitted" {
		t.Errorf("status filter = %q", svc.listInput.Status)
	}

	var resp listRequestsResponse
	decodeBody(t, rec, &resp)
	if len(resp.Requests) != 1 || resp.Pagination.Total != 1 {
		t.Errorf("response = %+v", resp)
	}
}

func TestRequestUpdateStatus(t *testing.T) {
	svc := &stubIntakeService{
		updated: &domain.PersonalizedRequest{ID: "req-1", Status: domain.RequestInProgress},
	}
	h := NewRequestHandler(svc)

	c, rec := newTestContext(t, http.MethodPatch, "/api/personalized-requests/req-1/status",
		`{"status":"in_progress"}`)
	c.SetParamNames("id")
	c.SetParamValues("req-1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	h := NewRequestHandler(&stubIntakeService{})

	c, rec := newTestContext(t, http.MethodPatch, "/api/personalized-requests/req-1/status",
		`{"status":"archived"}`)
	c.SetParamNames("id")
	c.SetParamValues("req-1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRequestUpdateStatusNotFound(t *testing.T) {
	h := NewRequestHandler(&stubIntakeService{err: domain.ErrRequestNotFound})

	c, rec := newTestContext(t, http.MethodPatch, "/api/personalized-requests/missing/status",
		`{"status":"in_progress"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRequestUpdateStatusInvalidTransition(t *testing.T) {
	h := NewRequestHandler(&stubIntakeService{err: domain.ErrInvalidTransition})

	c, rec := newTestContext(t, http.MethodPatch, "/api/personalized-requests/req-1/status",
		`{"status":"delivered"}`)
	c.SetParamNames("id")
	c.SetParamValues("req-1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}
