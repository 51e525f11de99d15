package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")

	// Transition errors
	ErrDayAlreadyClosed  = errors.New("you have already checked out today")
	ErrAlreadyOnBreak    = errors.New("a break can only start while working")
	ErrNotOnBreak        = errors.New("you are not on a break")
	ErrUnknownTransition = errors.New("unknown transition target")

	// ErrTransitionConflict means another request changed the record between
	// our read and our conditional write; the caller may retry.
	ErrTransitionConflict = errors.New("attendance record was modified concurrently")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
