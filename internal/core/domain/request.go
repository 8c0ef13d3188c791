package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrRequestNotFound   = errors.New("personalized request not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidUrgency    = errors.New("invalid urgency level")
)

// Urgency is the pricing/SLA band for personalized-audio fulfillment.
// Price and delivery estimate are derived from it on the server; amounts
// supplied by clients are never trusted.
type Urgency string

const (
	UrgencyStandard Urgency = "standard"
	UrgencyPriority Urgency = "priority"
	UrgencyRush     Urgency = "rush"
)

var urgencyPricing = map[Urgency]int{
	UrgencyStandard: 97,
	UrgencyPriority: 147,
	UrgencyRush:     197,
}

var urgencyDelivery = map[Urgency]string{
	UrgencyStandard: "7-10 business days",
	UrgencyPriority: "3-5 business days",
	UrgencyRush:     "24-48 hours",
}

// ParseUrgency validates a raw urgency string.
func ParseUrgency(s string) (Urgency, error) {
	u := Urgency(s)
	if _, ok := urgencyPricing[u]; !ok {
		return "", ErrInvalidUrgency
	}
	return u, nil
}

// Price returns the fixed amount in whole dollars for the tier.
func (u Urgency) Price() int {
	return urgencyPricing[u]
}

// DeliveryEstimate returns the human-readable delivery window for the tier.
func (u Urgency) DeliveryEstimate() string {
	return urgencyDelivery[u]
}

// RequestStatus is the fulfillment state of a personalized request.
type RequestStatus string

const (
	RequestSubmitted  RequestStatus = "submitted"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestDelivered  RequestStatus = "delivered"
	RequestCancelled  RequestStatus = "cancelled"
)

// requestTransitions defines the forward-only fulfillment state machine.
// Delivered and cancelled are terminal.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestSubmitted:  {RequestInProgress, RequestCancelled},
	RequestInProgress: {RequestCompleted, RequestCancelled},
	RequestCompleted:  {RequestDelivered},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseRequestStatus validates a raw status string.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch st := RequestStatus(s); st {
	case RequestSubmitted, RequestInProgress, RequestCompleted, RequestDelivered, RequestCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown request status %q", s)
}

// PaymentStatus mirrors the (stubbed) payment flow.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// IssueCategories is the closed set of accepted issue/goal values.
var IssueCategories = []string{
	"anxiety", "sleep", "confidence", "phobias", "habits",
	"performance", "trauma", "focus", "weight", "relationships", "other",
}

// ValidIssue reports whether the issue belongs to the accepted set.
func ValidIssue(issue string) bool {
	for _, v := range IssueCategories {
		if issue == v {
			return true
		}
	}
	return false
}

// DurationBands is the closed set of accepted session-length preferences.
var DurationBands = []string{"15-20", "25-30", "35-45", "45-60", "custom"}

// ValidDurationBand reports whether the band belongs to the accepted set.
func ValidDurationBand(band string) bool {
	for _, v := range DurationBands {
		if band == v {
			return true
		}
	}
	return false
}

// PersonalizedRequest is a paid intake for a custom-made hypnosis audio.
type PersonalizedRequest struct {
	ID                 string        `json:"id" bson:"_id,omitempty"`
	Name               string        `json:"name" bson:"name"`
	Email              string        `json:"email" bson:"email"`
	Phone              string        `json:"phone,omitempty" bson:"phone,omitempty"`
	Issue              string        `json:"issue" bson:"issue"`
	SpecificRequest    string        `json:"specificRequest" bson:"specific_request"`
	Duration           string        `json:"duration" bson:"duration"`
	Urgency            Urgency       `json:"urgency" bson:"urgency"`
	PreviousExperience string        `json:"previousExperience,omitempty" bson:"previous_experience,omitempty"`
	AdditionalNotes    string        `json:"additionalNotes,omitempty" bson:"additional_notes,omitempty"`
	Amount             int           `json:"amount" bson:"amount"`
	PaymentStatus      PaymentStatus `json:"paymentStatus" bson:"payment_status"`
	PaymentID          string        `json:"paymentId,omitempty" bson:"payment_id,omitempty"`
	Status             RequestStatus `json:"status" bson:"status"`
	AssignedTherapist  string        `json:"assignedTherapist,omitempty" bson:"assigned_therapist,omitempty"`
	AudioURL           string        `json:"audioUrl,omitempty" bson:"audio_url,omitempty"`
	DeliveredAt        *time.Time    `json:"deliveredAt,omitempty" bson:"delivered_at,omitempty"`
	RequestDate        time.Time     `json:"requestDate" bson:"request_date"`
	AdminNotes         string        `json:"adminNotes,omitempty" bson:"admin_notes,omitempty"`
	CreatedAt          time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt          time.Time     `json:"updatedAt" bson:"updated_at"`
}

// FormattedAmount renders the amount as a dollar string, e.g. "$97.00".
func (r *PersonalizedRequest) FormattedAmount() string {
	return fmt.Sprintf("$%d.00", r.Amount)
}
