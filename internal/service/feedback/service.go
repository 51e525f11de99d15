package feedback

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/auth"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/employee"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/feedback"
)

type FeedbackServiceImpl struct {
	feedback.FeedbackRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewFeedbackService(feedbackRepository feedback.FeedbackRepository, employeeRepository employee.EmployeeRepository) feedback.FeedbackService {
	return &FeedbackServiceImpl{
		FeedbackRepository: feedbackRepository,
		EmployeeRepository: employeeRepository,
		now:                time.Now,
	}
}

// Create implements feedback.FeedbackService.
func (s *FeedbackServiceImpl) Create(ctx context.Context, req *feedback.CreateRequestRequest) (*feedback.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	requesterID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}
	if req.PeerID == requesterID {
		return nil, feedback.ErrSelfRequest
	}

	peer, err := s.EmployeeRepository.GetByID(ctx, req.PeerID)
	if err != nil {
		return nil, err
	}
	if peer.Status != employee.StatusActive {
		return nil, employee.ErrEmployeeInactive
	}

	request := &feedback.Request{
		RequesterID: requesterID,
		PeerID:      req.PeerID,
		Topic:       req.Topic,
		Message:     req.Message,
		Status:      feedback.StatusPending,
	}
	if err := s.FeedbackRepository.Create(ctx, request); err != nil {
		return nil, err
	}

	return toRequestResponse(request), nil
}

// ListSent implements feedback.FeedbackService.
func (s *FeedbackServiceImpl) ListSent(ctx context.Context, filter *feedback.RequestFilter) (*feedback.ListRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	requests, total, err := s.FeedbackRepository.ListSent(ctx, employeeID, filter)
	if err != nil {
		return nil, err
	}

	return toListRequestResponse(requests, total, filter.Page, filter.Limit), nil
}

// ListReceived implements feedback.FeedbackService.
func (s *FeedbackServiceImpl) ListReceived(ctx context.Context, filter *feedback.RequestFilter) (*feedback.ListRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	requests, total, err := s.FeedbackRepository.ListReceived(ctx, employeeID, filter)
	if err != nil {
		return nil, err
	}

	return toListRequestResponse(requests, total, filter.Page, filter.Limit), nil
}

// Respond implements feedback.FeedbackService. The conditional update in the
// repository decides between two racing answers; the loser gets the same
// error as answering an already completed request.
func (s *FeedbackServiceImpl) Respond(ctx context.Context, req *feedback.RespondRequest) (*feedback.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employeeID, err := employeeIDFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	request, err := s.FeedbackRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if request.PeerID != employeeID {
		return nil, feedback.ErrNotAddressedPeer
	}
	if request.Status == feedback.StatusCompleted {
		return nil, feedback.ErrAlreadyAnswered
	}

	applied, err := s.FeedbackRepository.Respond(ctx, req.ID, employeeID, req.ResponseText, s.now())
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, feedback.ErrAlreadyAnswered
	}

	answered, err := s.FeedbackRepository.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return toRequestResponse(answered), nil
}

func employeeIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", auth.ErrNoEmployeeIdentity
	}
	return employeeID, nil
}

func toRequestResponse(request *feedback.Request) *feedback.RequestResponse {
	resp := &feedback.RequestResponse{
		ID:            request.ID,
		RequesterID:   request.RequesterID,
		RequesterName: request.RequesterName,
		PeerID:        request.PeerID,
		PeerName:      request.PeerName,
		Topic:         request.Topic,
		Message:       request.Message,
		Status:        string(request.Status),
		ResponseText:  request.ResponseText,
		CreatedAt:     request.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     request.UpdatedAt.Format(time.RFC3339),
	}
	if request.RespondedAt != nil {
		respondedAt := request.RespondedAt.Format(time.RFC3339)
		resp.RespondedAt = &respondedAt
	}
	return resp
}

func toListRequestResponse(requests []feedback.Request, total int64, page, limit int) *feedback.ListRequestResponse {
	responses := make([]feedback.RequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *toRequestResponse(&requests[i]))
	}

	return &feedback.ListRequestResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		Requests:   responses,
	}
}
