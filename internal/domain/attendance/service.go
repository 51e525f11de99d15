package attendance

import (
	"context"
)

// CheckinService defines business logic for the attendance ledger.
type CheckinService interface {
	// CheckIn opens the authenticated employee's day. Fails with
	// ErrAlreadyCheckedIn when a record for today exists.
	CheckIn(ctx context.Context) (CheckinRecordResponse, error)

	// Transition applies a state change to an existing record.
	Transition(ctx context.Context, req TransitionRequest) (CheckinRecordResponse, error)

	// GetToday retrieves the authenticated employee's record for the current
	// day, or ErrRecordNotFound before the first check-in.
	GetToday(ctx context.Context) (CheckinRecordResponse, error)

	// GetMyHistory retrieves the authenticated employee's records, newest day
	// first. Never fails on an empty history.
	GetMyHistory(ctx context.Context, filter MyHistoryFilter) (ListCheckinResponse, error)

	// ListHistory retrieves records across employees (admin view).
	ListHistory(ctx context.Context, filter HistoryFilter) (ListCheckinResponse, error)
}
