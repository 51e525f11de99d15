package feedback

import "context"

type FeedbackService interface {
	Create(ctx context.Context, req *CreateRequestRequest) (*RequestResponse, error)
	ListSent(ctx context.Context, filter *RequestFilter) (*ListRequestResponse, error)
	ListReceived(ctx context.Context, filter *RequestFilter) (*ListRequestResponse, error)
	Respond(ctx context.Context, req *RespondRequest) (*RequestResponse, error)
}
