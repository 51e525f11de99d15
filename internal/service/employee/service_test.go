package employee

import (
	"context"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/employee"
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepository struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, id string, update employee.UpdateEmployee) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if update.AvatarURL != nil {
		emp.AvatarURL = update.AvatarURL
	}
	if update.Status != nil {
		emp.Status = *update.Status
	}
	f.employees[id] = emp
	return emp, nil
}

func (f *fakeEmployeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepository) Positions(ctx context.Context) ([]string, error) {
	return nil, nil
}

type fakeFileService struct {
	uploads int
}

func (f *fakeFileService) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	f.uploads++
	return "avatars/" + employeeID + "/avatar.png", nil
}

func (f *fakeFileService) UploadDocument(ctx context.Context, employeeID string, file io.Reader, filename string, documentType string) (string, error) {
	return "documents/" + employeeID + "/" + filename, nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, path string) error {
	return nil
}

func (f *fakeFileService) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "/uploads/" + path, nil
}

var testTokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func claimsContext(t *testing.T, employeeID, role string) context.Context {
	t.Helper()
	token, _, err := testTokenAuth.Encode(map[string]interface{}{
		"user_id":     "user-" + employeeID,
		"employee_id": employeeID,
		"role":        role,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService() (*EmployeeServiceImpl, *fakeEmployeeRepository, *fakeFileService) {
	repo := &fakeEmployeeRepository{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", FullName: "Ana", Email: "ana@example.com", Status: employee.StatusActive},
		"emp-2": {ID: "emp-2", FullName: "Ben", Email: "ben@example.com", Status: employee.StatusActive},
	}}
	files := &fakeFileService{}
	return &EmployeeServiceImpl{EmployeeRepository: repo, fileService: files}, repo, files
}

func avatarRequest(employeeID, filename string) employee.UploadAvatarRequest {
	return employee.UploadAvatarRequest{
		EmployeeID: employeeID,
		FileHeader: &multipart.FileHeader{Filename: filename, Size: 1024},
	}
}

func TestEmployeeService_UploadAvatar_Self(t *testing.T) {
	svc, repo, files := newTestService()

	resp, err := svc.UploadAvatar(claimsContext(t, "emp-1", "employee"), avatarRequest("emp-1", "me.png"))

	require.NoError(t, err)
	require.NotNil(t, resp.AvatarURL)
	assert.Equal(t, "avatars/emp-1/avatar.png", *resp.AvatarURL)
	assert.Equal(t, 1, files.uploads)

	stored, err := repo.GetByID(context.Background(), "emp-1")
	require.NoError(t, err)
	require.NotNil(t, stored.AvatarURL)
}

func TestEmployeeService_UploadAvatar_OtherEmployeeRejected(t *testing.T) {
	svc, _, files := newTestService()

	_, err := svc.UploadAvatar(claimsContext(t, "emp-1", "employee"), avatarRequest("emp-2", "me.png"))

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Equal(t, 0, files.uploads)
}

func TestEmployeeService_UploadAvatar_AdminForAnyEmployee(t *testing.T) {
	svc, _, files := newTestService()

	resp, err := svc.UploadAvatar(claimsContext(t, "emp-1", "admin"), avatarRequest("emp-2", "ben.jpg"))

	require.NoError(t, err)
	require.NotNil(t, resp.AvatarURL)
	assert.Equal(t, 1, files.uploads)
}

func TestEmployeeService_UploadAvatar_RejectsNonImage(t *testing.T) {
	svc, _, files := newTestService()

	_, err := svc.UploadAvatar(claimsContext(t, "emp-1", "employee"), avatarRequest("emp-1", "resume.pdf"))

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, 0, files.uploads)
}
