package attendance

import (
	"errors"
	"testing"
	"time"
)

func recordInState(t *testing.T, status Status, checkin time.Time) CheckinRecord {
	t.Helper()
	rec := NewCheckinRecord("emp-1", checkin)
	rec.ID = "rec-1"
	switch status {
	case StatusCheckin:
	case StatusBreak:
		if err := rec.ApplyTransition(StatusBreak, checkin.Add(time.Hour)); err != nil {
			t.Fatalf("setup transition to break: %v", err)
		}
	case StatusCheckout:
		if err := rec.ApplyTransition(StatusCheckout, checkin.Add(8*time.Hour)); err != nil {
			t.Fatalf("setup transition to checkout: %v", err)
		}
	}
	return rec
}

func TestApplyTransition_Table(t *testing.T) {
	checkin := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		from    Status
		target  Status
		wantErr error
	}{
		{"checkin to break", StatusCheckin, StatusBreak, nil},
		{"checkin to checkin", StatusCheckin, StatusCheckin, ErrNotOnBreak},
		{"checkin to checkout", StatusCheckin, StatusCheckout, nil},
		{"break to checkin", StatusBreak, StatusCheckin, nil},
		{"break to break", StatusBreak, StatusBreak, ErrAlreadyOnBreak},
		{"break to checkout", StatusBreak, StatusCheckout, nil},
		{"checkout to checkin", StatusCheckout, StatusCheckin, ErrDayAlreadyClosed},
		{"checkout to break", StatusCheckout, StatusBreak, ErrDayAlreadyClosed},
		{"checkout to checkout", StatusCheckout, StatusCheckout, ErrDayAlreadyClosed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := recordInState(t, c.from, checkin)
			before := rec

			err := rec.ApplyTransition(c.target, checkin.Add(9*time.Hour))
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("ApplyTransition(%s -> %s) error = %v, want %v", c.from, c.target, err, c.wantErr)
			}

			if err != nil {
				if rec.Status != before.Status || rec.OnBreak != before.OnBreak {
					t.Fatalf("rejected transition mutated the record: %+v", rec)
				}
				return
			}

			if rec.Status != c.target {
				t.Errorf("status = %s, want %s", rec.Status, c.target)
			}
			if rec.OnBreak != (rec.Status == StatusBreak) {
				t.Errorf("on_break = %v disagrees with status %s", rec.OnBreak, rec.Status)
			}
			if c.target == StatusCheckout && rec.CheckoutTime == nil {
				t.Error("checkout left CheckoutTime nil")
			}
			if c.target != StatusCheckout && rec.CheckoutTime != nil {
				t.Error("non-terminal transition set CheckoutTime")
			}
		})
	}
}

func TestNewCheckinRecord_LocalDayBoundary(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)

	// 23:00 local is still 16:00 UTC the same day; the record's date must be
	// the local calendar day.
	rec := NewCheckinRecord("emp-1", time.Date(2025, 3, 10, 23, 0, 0, 0, loc))
	if got := rec.CheckinDate.Format("2006-01-02"); got != "2025-03-10" {
		t.Errorf("CheckinDate = %s, want 2025-03-10", got)
	}

	// 06:00 the next local morning shares the previous UTC day but opens a
	// new local day.
	rec = NewCheckinRecord("emp-1", time.Date(2025, 3, 11, 6, 0, 0, 0, loc))
	if got := rec.CheckinDate.Format("2006-01-02"); got != "2025-03-11" {
		t.Errorf("CheckinDate = %s, want 2025-03-11", got)
	}
}

func TestApplyTransition_DailyMinutes(t *testing.T) {
	checkin := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	checkout := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)

	rec := NewCheckinRecord("emp-1", checkin)
	if err := rec.ApplyTransition(StatusCheckout, checkout); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}

	if rec.DailyMinutes != 510 {
		t.Errorf("DailyMinutes = %d, want 510", rec.DailyMinutes)
	}
	if rec.WorkingMinutes != 0 || rec.BreakMinutes != 0 {
		t.Errorf("working/break minutes mutated: %d/%d", rec.WorkingMinutes, rec.BreakMinutes)
	}
}

func TestApplyTransition_FinishFromBreakClearsOnBreak(t *testing.T) {
	checkin := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	rec := recordInState(t, StatusBreak, checkin)

	if err := rec.ApplyTransition(StatusCheckout, checkin.Add(4*time.Hour)); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if rec.OnBreak {
		t.Error("finish from break left OnBreak true")
	}
}

func TestApplyTransition_ClockSkewClampsToZero(t *testing.T) {
	checkin := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	rec := NewCheckinRecord("emp-1", checkin)

	if err := rec.ApplyTransition(StatusCheckout, checkin.Add(-10*time.Minute)); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if rec.DailyMinutes != 0 {
		t.Errorf("DailyMinutes = %d, want 0", rec.DailyMinutes)
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"checkin", "break", "checkout"} {
		if _, ok := ParseStatus(s); !ok {
			t.Errorf("ParseStatus(%q) rejected a valid status", s)
		}
	}
	for _, s := range []string{"lunch", "CHECKIN", "", "done"} {
		if _, ok := ParseStatus(s); ok {
			t.Errorf("ParseStatus(%q) accepted an invalid status", s)
		}
	}
}

func TestNewCheckinRecord(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 45, 12, 0, time.UTC)
	rec := NewCheckinRecord("emp-9", now)

	if rec.Status != StatusCheckin {
		t.Errorf("status = %s, want checkin", rec.Status)
	}
	if rec.OnBreak {
		t.Error("new record starts on break")
	}
	if rec.CheckoutTime != nil {
		t.Error("new record has checkout time")
	}
	if rec.WorkingMinutes != 0 || rec.BreakMinutes != 0 || rec.DailyMinutes != 0 {
		t.Error("new record has nonzero minute counters")
	}
	if !rec.CheckinTime.Equal(now) {
		t.Errorf("checkin time = %v, want %v", rec.CheckinTime, now)
	}
}
