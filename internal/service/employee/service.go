package employee

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/auth"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/employee"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/user"
	"github.com/kelora-hr/kelora-backend-go/internal/service/file"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	fileService file.FileService
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository, fileService file.FileService) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
		fileService:        fileService,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Position: req.Position,
		Status:   employee.StatusActive,
	}
	if req.HireDate != nil && *req.HireDate != "" {
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err == nil {
			emp.HireDate = &hireDate
		}
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	update := employee.UpdateEmployee{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Position: req.Position,
		HireDate: req.HireDate,
	}
	if req.Status != nil {
		status := employee.Status(*req.Status)
		update.Status = &status
	}

	updated, err := s.EmployeeRepository.Update(ctx, req.ID, update)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  responses,
	}, nil
}

// UploadAvatar implements employee.EmployeeService. An employee replacing
// another employee's avatar gets a not-found, the same answer as for a record
// that does not exist.
func (s *EmployeeServiceImpl) UploadAvatar(ctx context.Context, req employee.UploadAvatarRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	employeeID, role, err := identityFromClaims(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if role != user.RoleAdmin && employeeID != req.EmployeeID {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	avatarURL, err := s.fileService.UploadAvatar(ctx, req.EmployeeID, req.File, req.FileHeader.Filename)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.Update(ctx, req.EmployeeID, employee.UpdateEmployee{AvatarURL: &avatarURL})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

func identityFromClaims(ctx context.Context) (employeeID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", auth.ErrNoEmployeeIdentity
	}
	roleStr, _ := claims["role"].(string)
	return employeeID, user.Role(roleStr), nil
}

// DeactivateEmployee implements employee.EmployeeService. The row is kept so
// attendance history stays attributable.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id string) error {
	status := employee.StatusInactive
	_, err := s.EmployeeRepository.Update(ctx, id, employee.UpdateEmployee{Status: &status})
	return err
}

// FilterOptions implements employee.EmployeeService.
func (s *EmployeeServiceImpl) FilterOptions(ctx context.Context) (employee.FilterOptionsResponse, error) {
	positions, err := s.EmployeeRepository.Positions(ctx)
	if err != nil {
		return employee.FilterOptionsResponse{}, err
	}

	return employee.FilterOptionsResponse{
		Positions: positions,
		Statuses:  []string{string(employee.StatusActive), string(employee.StatusInactive)},
	}, nil
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:        emp.ID,
		FullName:  emp.FullName,
		Email:     emp.Email,
		Phone:     emp.Phone,
		Position:  emp.Position,
		Status:    string(emp.Status),
		AvatarURL: emp.AvatarURL,
		CreatedAt: emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: emp.UpdatedAt.Format(time.RFC3339),
	}
	if emp.HireDate != nil {
		hireDate := emp.HireDate.Format("2006-01-02")
		resp.HireDate = &hireDate
	}
	return resp
}
