package employee

import (
	"context"
)

// EmployeeService defines business logic for employee records.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// UploadAvatar stores a profile picture and records its path. Employees
	// may only replace their own avatar; admins may replace anyone's.
	UploadAvatar(ctx context.Context, req UploadAvatarRequest) (EmployeeResponse, error)

	// DeactivateEmployee flips the status to inactive; rows are retained as
	// an audit trail.
	DeactivateEmployee(ctx context.Context, id string) error

	// FilterOptions returns the dropdown values for the admin list view.
	FilterOptions(ctx context.Context) (FilterOptionsResponse, error)
}
