package feedback

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Request is a peer feedback request: one employee asks another for feedback
// on a topic; the peer answers at most once.
type Request struct {
	ID           string
	RequesterID  string
	PeerID       string
	Topic        string
	Message      string
	Status       Status
	ResponseText *string
	RespondedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for list views
	RequesterName *string
	PeerName      *string
}
