package attendance

import (
	"context"
	"time"
)

// TransitionUpdate is the explicit allow-list of fields a transition may
// persist. Anything outside it never reaches an UPDATE statement.
type TransitionUpdate struct {
	Status       Status
	OnBreak      bool
	CheckoutTime *time.Time
	DailyMinutes *int
}

// CheckinRepository defines data access for attendance records. The store is
// the single authority on state: creation relies on the (employee_id,
// checkin_date) unique index, transitions on a status-conditional update.
type CheckinRepository interface {
	// Create inserts a new record. A record already covering the same
	// employee and date surfaces as ErrAlreadyCheckedIn.
	Create(ctx context.Context, record CheckinRecord) (CheckinRecord, error)

	// GetByID retrieves a record or ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (CheckinRecord, error)

	// GetByEmployeeAndDate returns the record for the given local date, or
	// nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, dateLocal string) (*CheckinRecord, error)

	// ApplyTransition persists update for the record only if its stored
	// status still equals expected. Returns false (and no error) when the
	// conditional write matched no row.
	ApplyTransition(ctx context.Context, id string, expected Status, update TransitionUpdate) (bool, error)

	// ListByEmployee returns the employee's records ordered by checkin_date
	// descending, with the total count for pagination.
	ListByEmployee(ctx context.Context, employeeID string, filter MyHistoryFilter) ([]CheckinRecord, int64, error)

	// List returns records across employees with filters and pagination.
	List(ctx context.Context, filter HistoryFilter) ([]CheckinRecord, int64, error)
}
