package feedback

import (
	"context"
	"time"
)

type FeedbackRepository interface {
	Create(ctx context.Context, request *Request) error
	GetByID(ctx context.Context, id string) (*Request, error)
	// Respond fills in the peer's answer and flips the request to
	// completed. The update only matches when the request is still
	// pending and addressed to peerID; it reports whether a row
	// changed so callers can tell a lost race from a missing row.
	Respond(ctx context.Context, id, peerID, responseText string, respondedAt time.Time) (bool, error)
	ListSent(ctx context.Context, requesterID string, filter *RequestFilter) ([]Request, int64, error)
	ListReceived(ctx context.Context, peerID string, filter *RequestFilter) ([]Request, int64, error)
}
