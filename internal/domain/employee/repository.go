package employee

import (
	"context"
)

// UpdateEmployee is the allow-list of mutable employee fields. A nil field is
// left untouched; the repository never assembles SET clauses from request
// maps.
type UpdateEmployee struct {
	FullName  *string
	Email     *string
	Phone     *string
	Position  *string
	Status    *Status
	HireDate  *string // YYYY-MM-DD
	AvatarURL *string
}

type EmployeeRepository interface {
	// Create inserts a new employee; a duplicate email surfaces as
	// ErrEmailExists.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee or ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email or ErrEmployeeNotFound.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// Update applies the allow-listed fields and refreshes updated_at.
	Update(ctx context.Context, id string, update UpdateEmployee) (Employee, error)

	// List retrieves employees with filters and pagination.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// Positions returns the distinct non-empty positions for dropdowns.
	Positions(ctx context.Context) ([]string, error)
}
