package feedback

import "errors"

// Feedback domain errors
var (
	ErrRequestNotFound  = errors.New("feedback request not found")
	ErrSelfRequest      = errors.New("you cannot request feedback from yourself")
	ErrNotAddressedPeer = errors.New("only the requested peer can respond")
	ErrAlreadyAnswered  = errors.New("feedback request has already been answered")
)
