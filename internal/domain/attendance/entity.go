package attendance

import (
	"time"
)

// Status is the lifecycle state of a day's check-in record.
type Status string

const (
	StatusCheckin  Status = "checkin"
	StatusBreak    Status = "break"
	StatusCheckout Status = "checkout"
)

// ParseStatus maps a transition target from the wire to a Status.
// Unrecognized values are rejected before any repository access.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusCheckin, StatusBreak, StatusCheckout:
		return Status(s), true
	default:
		return "", false
	}
}

// CheckinRecord is one employee's attendance for one calendar day. At most one
// exists per (employee, date); the record is terminal once Status is checkout.
type CheckinRecord struct {
	ID           string
	EmployeeID   string
	CheckinDate  time.Time
	CheckinTime  time.Time
	CheckoutTime *time.Time
	Status       Status
	OnBreak      bool

	// Minute counters are owned by transition logic, never by request input.
	// WorkingMinutes and BreakMinutes default to 0 and are not yet derived
	// from break intervals; only DailyMinutes is computed, at checkout.
	WorkingMinutes int
	BreakMinutes   int
	DailyMinutes   int

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for list views
	EmployeeName *string
}

// NewCheckinRecord opens the day for an employee: state checkin, no checkout
// time, all counters zero. This is the only way a record comes into existence.
// The date is the wall-clock day in now's location, not the UTC day.
func NewCheckinRecord(employeeID string, now time.Time) CheckinRecord {
	year, month, day := now.Date()
	return CheckinRecord{
		EmployeeID:  employeeID,
		CheckinDate: time.Date(year, month, day, 0, 0, 0, 0, now.Location()),
		CheckinTime: now,
		Status:      StatusCheckin,
		OnBreak:     false,
	}
}

// ApplyTransition advances the record's state machine toward target and
// updates the dependent fields in the same step, so Status, OnBreak and
// CheckoutTime can never disagree.
//
//	checkin  --break-->    break
//	break    --checkin-->  checkin
//	checkin  --checkout--> checkout (terminal)
//	break    --checkout--> checkout (terminal)
func (r *CheckinRecord) ApplyTransition(target Status, now time.Time) error {
	if r.Status == StatusCheckout {
		return ErrDayAlreadyClosed
	}

	switch target {
	case StatusBreak:
		if r.Status != StatusCheckin {
			return ErrAlreadyOnBreak
		}
		r.Status = StatusBreak
		r.OnBreak = true

	case StatusCheckin:
		if r.Status != StatusBreak {
			return ErrNotOnBreak
		}
		r.Status = StatusCheckin
		r.OnBreak = false

	case StatusCheckout:
		checkout := now
		r.Status = StatusCheckout
		r.OnBreak = false
		r.CheckoutTime = &checkout
		r.DailyMinutes = wholeMinutesBetween(r.CheckinTime, checkout)

	default:
		return ErrUnknownTransition
	}

	r.UpdatedAt = now
	return nil
}

// wholeMinutesBetween truncates the elapsed time to whole minutes. A checkout
// timestamp behind the check-in (clock adjustment) counts as zero rather than
// producing a negative total.
func wholeMinutesBetween(from, to time.Time) int {
	minutes := int(to.Sub(from).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}
