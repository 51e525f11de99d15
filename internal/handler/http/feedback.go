package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/feedback"
	"github.com/kelora-hr/kelora-backend-go/internal/handler/http/response"
)

type FeedbackHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListSent(w http.ResponseWriter, r *http.Request)
	ListReceived(w http.ResponseWriter, r *http.Request)
	Respond(w http.ResponseWriter, r *http.Request)
}

type feedbackHandlerImpl struct {
	feedbackService feedback.FeedbackService
}

func NewFeedbackHandler(feedbackService feedback.FeedbackService) FeedbackHandler {
	return &feedbackHandlerImpl{
		feedbackService: feedbackService,
	}
}

// Create implements FeedbackHandler.
func (h *feedbackHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req feedback.CreateRequestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.feedbackService.Create(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Feedback request sent", result)
}

// ListSent implements FeedbackHandler.
func (h *feedbackHandlerImpl) ListSent(w http.ResponseWriter, r *http.Request) {
	results, err := h.feedbackService.ListSent(r.Context(), feedbackFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ListReceived implements FeedbackHandler.
func (h *feedbackHandlerImpl) ListReceived(w http.ResponseWriter, r *http.Request) {
	results, err := h.feedbackService.ListReceived(r.Context(), feedbackFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Respond implements FeedbackHandler.
func (h *feedbackHandlerImpl) Respond(w http.ResponseWriter, r *http.Request) {
	var req feedback.RespondRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.feedbackService.Respond(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func feedbackFilterFromQuery(r *http.Request) *feedback.RequestFilter {
	filter := &feedback.RequestFilter{}

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	filter.Page, filter.Limit = parsePagination(r)

	return filter
}
