package handler

import (
	"time"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
)

type submitRequestRequest struct {
	Name               string `json:"name"            validate:"required,max=100"`
	Email              string `json:"email"           validate:"required,email"`
	Phone              string `json:"phone"           validate:"max=20"`
	Issue              string `json:"issue"           validate:"required"`
	SpecificRequest    string `json:"specificRequest" validate:"required,max=2000"`
	Duration           string `json:"duration"        validate:"required"`
	Urgency            string `json:"urgency"         validate:"required"`
	PreviousExperience string `json:"previousExperience" validate:"omitempty,oneof=none beginner intermediate advanced"`
	AdditionalNotes    string `json:"additionalNotes" validate:"max=1000"`
	PaymentID          string `json:"paymentId"`
	RequestDate        *time.Time `json:"requestDate"`
}

type submitRequestResponse struct {
	Success           bool   `json:"success"`
	RequestID         string `json:"requestId"`
	Message           string `json:"message"`
	EstimatedDelivery string `json:"estimatedDelivery"`
	Amount            string `json:"amount"`
}

type listRequestsResponse struct {
	Requests   []*domain.PersonalizedRequest `json:"requests"`
	Pagination paginationResponse            `json:"pagination"`
}

type updateRequestStatusRequest struct {
	Status     string `json:"status"   validate:"required,oneof=submitted in_progress completed delivered cancelled"`
	AudioURL   string `json:"audioUrl"`
	AdminNotes string `json:"adminNotes" validate:"max=1000"`
}
