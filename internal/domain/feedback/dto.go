package feedback

import (
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	PeerID  string `json:"peer_id"`
	Topic   string `json:"topic"`
	Message string `json:"message"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "peer_id",
			Message: "peer_id is required",
		})
	} else if !validator.IsValidUUID(r.PeerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "peer_id",
			Message: "peer_id must be a valid id",
		})
	}

	if validator.IsEmpty(r.Topic) {
		errs = append(errs, validator.ValidationError{
			Field:   "topic",
			Message: "topic is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RespondRequest struct {
	ID           string `json:"-"`
	ResponseText string `json:"response_text"`
}

func (r *RespondRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ResponseText) {
		errs = append(errs, validator.ValidationError{
			Field:   "response_text",
			Message: "response_text is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID            string  `json:"id"`
	RequesterID   string  `json:"requester_id"`
	RequesterName *string `json:"requester_name,omitempty"`
	PeerID        string  `json:"peer_id"`
	PeerName      *string `json:"peer_name,omitempty"`
	Topic         string  `json:"topic"`
	Message       string  `json:"message"`
	Status        string  `json:"status"`
	ResponseText  *string `json:"response_text,omitempty"`
	RespondedAt   *string `json:"responded_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type ListRequestResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Requests   []RequestResponse `json:"requests"`
}

type RequestFilter struct {
	Status *string `json:"status,omitempty"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

func (f *RequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && *f.Status != "" &&
		!validator.IsInSlice(*f.Status, []string{string(StatusPending), string(StatusCompleted)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, completed",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
