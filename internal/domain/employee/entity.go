package employee

import (
	"time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Employee struct {
	ID        string
	FullName  string
	Email     string
	Phone     *string
	Position  *string
	Status    Status
	HireDate  *time.Time
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
