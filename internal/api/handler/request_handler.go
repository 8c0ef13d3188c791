package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mindreboot/mindreboot-api/internal/api/metrics"
	"github.com/mindreboot/mindreboot-api/internal/core/domain"
	"github.com/mindreboot/mindreboot-api/internal/core/ports"
)

// RequestHandler handles HTTP requests for personalized audio intake and
// fulfillment.
type RequestHandler struct {
	intake ports.IntakeService
}

func NewRequestHandler(intake ports.IntakeService) *RequestHandler {
	return &RequestHandler{intake: intake}
}

// Submit handles POST /api/personalized-requests (authenticated).
// Pricing is derived server-side from the urgency tier; any amount in the
// payload is ignored.
//
// @Summary      Submit a personalized audio request
// @Tags         personalized-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitRequestRequest  true  "Intake form"
// @Success      201   {object}  submitRequestResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/personalized-requests [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	var req submitRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input := ports.SubmitRequestInput{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Issue:              req.Issue,
		SpecificRequest:    req.SpecificRequest,
		Duration:           req.Duration,
		Urgency:            req.Urgency,
		PreviousExperience: req.PreviousExperience,
		AdditionalNotes:    req.AdditionalNotes,
		PaymentID:          req.PaymentID,
	}
	if req.RequestDate != nil {
		input.RequestDate = *req.RequestDate
	}

	result, err := h.intake.Submit(c.Request().Context(), input)
	if err != nil {
		var ve domain.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Error()})
		}
		return err
	}

	metrics.IntakeSubmissionsTotal.WithLabelValues(req.Urgency).Inc()

	return c.JSON(http.StatusCreated, submitRequestResponse{
		Success:           true,
		RequestID:         result.RequestID,
		Message:           result.Message,
		EstimatedDelivery: result.EstimatedDelivery,
		Amount:            result.Amount,
	})
}

// List handles GET /api/personalized-requests (therapist/admin).
//
// @Summary      List personalized requests
// @Tags         personalized-requests
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "status filter; 'all' disables the filter"
// @Param        email   query     string  false  "requester email filter"
// @Param        page    query     int     false  "1-based page number"
// @Param        limit   query     int     false  "page size (default 20, max 100)"
// @Success      200     {object}  listRequestsResponse
// @Router       /api/personalized-requests [get]
func (h *RequestHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.intake.List(c.Request().Context(), ports.ListRequestsInput{
		Status: c.QueryParam("status"),
		Email:  c.QueryParam("email"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		var ve domain.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, listRequestsResponse{
		Requests: result.Items,
		Pagination: paginationResponse{
			Page:  result.Page,
			Limit: result.Limit,
			Total: result.Total,
			Pages: result.TotalPages,
		},
	})
}

// UpdateStatus handles PATCH /api/personalized-requests/:id/status
// (therapist/admin). Transitions must follow the fulfillment state machine.
//
// @Summary      Advance a request through fulfillment
// @Tags         personalized-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Request id"
// @Param        body  body      updateRequestStatusRequest  true  "New status"
// @Success      200   {object}  domain.PersonalizedRequest
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/personalized-requests/{id}/status [patch]
func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	var req updateRequestStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	updated, err := h.intake.UpdateStatus(c.Request().Context(), ports.UpdateRequestStatusInput{
		ID:         c.Param("id"),
		Status:     req.Status,
		AudioURL:   req.AudioURL,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "personalized request not found"})
		case errors.Is(err, domain.ErrInvalidTransition):
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.IntakeStatusChangesTotal.WithLabelValues(string(updated.Status)).Inc()

	return c.JSON(http.StatusOK, updated)
}
