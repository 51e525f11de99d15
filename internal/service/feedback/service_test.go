package feedback

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/employee"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/feedback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFeedbackRepository struct {
	mu       sync.Mutex
	requests map[string]feedback.Request
	nextID   int
}

func newFakeFeedbackRepository() *fakeFeedbackRepository {
	return &fakeFeedbackRepository{requests: make(map[string]feedback.Request)}
}

func (f *fakeFeedbackRepository) Create(ctx context.Context, request *feedback.Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	request.ID = fmt.Sprintf("fb-%d", f.nextID)
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.requests[request.ID] = *request
	return nil
}

func (f *fakeFeedbackRepository) GetByID(ctx context.Context, id string) (*feedback.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[id]
	if !ok {
		return nil, feedback.ErrRequestNotFound
	}
	r := request
	return &r, nil
}

func (f *fakeFeedbackRepository) Respond(ctx context.Context, id, peerID, responseText string, respondedAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[id]
	if !ok || request.PeerID != peerID || request.Status != feedback.StatusPending {
		return false, nil
	}

	request.Status = feedback.StatusCompleted
	request.ResponseText = &responseText
	request.RespondedAt = &respondedAt
	f.requests[id] = request
	return true, nil
}

func (f *fakeFeedbackRepository) ListSent(ctx context.Context, requesterID string, filter *feedback.RequestFilter) ([]feedback.Request, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var requests []feedback.Request
	for _, request := range f.requests {
		if request.RequesterID == requesterID {
			requests = append(requests, request)
		}
	}
	return requests, int64(len(requests)), nil
}

func (f *fakeFeedbackRepository) ListReceived(ctx context.Context, peerID string, filter *feedback.RequestFilter) ([]feedback.Request, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var requests []feedback.Request
	for _, request := range f.requests {
		if request.PeerID == peerID {
			requests = append(requests, request)
		}
	}
	return requests, int64(len(requests)), nil
}

type fakeEmployeeRepository struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, id string, update employee.UpdateEmployee) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepository) Positions(ctx context.Context) ([]string, error) {
	return nil, nil
}

var testTokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func employeeContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	token, _, err := testTokenAuth.Encode(map[string]interface{}{
		"user_id":     "user-" + employeeID,
		"employee_id": employeeID,
		"role":        "employee",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo *fakeFeedbackRepository) *FeedbackServiceImpl {
	employees := &fakeEmployeeRepository{employees: map[string]employee.Employee{
		"1f1e9f40-8b5f-4c79-90b2-000000000001": {ID: "1f1e9f40-8b5f-4c79-90b2-000000000001", FullName: "Ana", Status: employee.StatusActive},
		"1f1e9f40-8b5f-4c79-90b2-000000000002": {ID: "1f1e9f40-8b5f-4c79-90b2-000000000002", FullName: "Ben", Status: employee.StatusActive},
		"1f1e9f40-8b5f-4c79-90b2-000000000003": {ID: "1f1e9f40-8b5f-4c79-90b2-000000000003", FullName: "Cleo", Status: employee.StatusInactive},
	}}
	return &FeedbackServiceImpl{
		FeedbackRepository: repo,
		EmployeeRepository: employees,
		now:                func() time.Time { return time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC) },
	}
}

const (
	empAna  = "1f1e9f40-8b5f-4c79-90b2-000000000001"
	empBen  = "1f1e9f40-8b5f-4c79-90b2-000000000002"
	empCleo = "1f1e9f40-8b5f-4c79-90b2-000000000003"
)

func TestFeedbackService_Create_Success(t *testing.T) {
	svc := newTestService(newFakeFeedbackRepository())
	ctx := employeeContext(t, empAna)

	resp, err := svc.Create(ctx, &feedback.CreateRequestRequest{
		PeerID:  empBen,
		Topic:   "Q1 project",
		Message: "How did I do?",
	})

	require.NoError(t, err)
	assert.Equal(t, empAna, resp.RequesterID)
	assert.Equal(t, empBen, resp.PeerID)
	assert.Equal(t, "pending", resp.Status)
	assert.Nil(t, resp.ResponseText)
}

func TestFeedbackService_Create_SelfRequest(t *testing.T) {
	svc := newTestService(newFakeFeedbackRepository())
	ctx := employeeContext(t, empAna)

	_, err := svc.Create(ctx, &feedback.CreateRequestRequest{
		PeerID: empAna,
		Topic:  "Self review",
	})

	assert.ErrorIs(t, err, feedback.ErrSelfRequest)
}

func TestFeedbackService_Create_InactivePeer(t *testing.T) {
	svc := newTestService(newFakeFeedbackRepository())
	ctx := employeeContext(t, empAna)

	_, err := svc.Create(ctx, &feedback.CreateRequestRequest{
		PeerID: empCleo,
		Topic:  "Handover notes",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestFeedbackService_Respond_Success(t *testing.T) {
	repo := newFakeFeedbackRepository()
	svc := newTestService(repo)

	created, err := svc.Create(employeeContext(t, empAna), &feedback.CreateRequestRequest{
		PeerID: empBen,
		Topic:  "Q1 project",
	})
	require.NoError(t, err)

	resp, err := svc.Respond(employeeContext(t, empBen), &feedback.RespondRequest{
		ID:           created.ID,
		ResponseText: "Strong delivery, keep it up.",
	})

	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.ResponseText)
	assert.Equal(t, "Strong delivery, keep it up.", *resp.ResponseText)
	assert.NotNil(t, resp.RespondedAt)
}

func TestFeedbackService_Respond_WrongPeer(t *testing.T) {
	repo := newFakeFeedbackRepository()
	svc := newTestService(repo)

	created, err := svc.Create(employeeContext(t, empAna), &feedback.CreateRequestRequest{
		PeerID: empBen,
		Topic:  "Q1 project",
	})
	require.NoError(t, err)

	_, err = svc.Respond(employeeContext(t, empAna), &feedback.RespondRequest{
		ID:           created.ID,
		ResponseText: "Answering my own request",
	})

	assert.ErrorIs(t, err, feedback.ErrNotAddressedPeer)
}

func TestFeedbackService_Respond_Twice(t *testing.T) {
	repo := newFakeFeedbackRepository()
	svc := newTestService(repo)

	created, err := svc.Create(employeeContext(t, empAna), &feedback.CreateRequestRequest{
		PeerID: empBen,
		Topic:  "Q1 project",
	})
	require.NoError(t, err)

	ctx := employeeContext(t, empBen)
	_, err = svc.Respond(ctx, &feedback.RespondRequest{ID: created.ID, ResponseText: "First answer"})
	require.NoError(t, err)

	_, err = svc.Respond(ctx, &feedback.RespondRequest{ID: created.ID, ResponseText: "Second answer"})
	assert.ErrorIs(t, err, feedback.ErrAlreadyAnswered)
}

func TestFeedbackService_ListSentAndReceived(t *testing.T) {
	repo := newFakeFeedbackRepository()
	svc := newTestService(repo)

	_, err := svc.Create(employeeContext(t, empAna), &feedback.CreateRequestRequest{
		PeerID: empBen,
		Topic:  "Q1 project",
	})
	require.NoError(t, err)

	sent, err := svc.ListSent(employeeContext(t, empAna), &feedback.RequestFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), sent.TotalCount)

	received, err := svc.ListReceived(employeeContext(t, empBen), &feedback.RequestFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), received.TotalCount)

	none, err := svc.ListReceived(employeeContext(t, empAna), &feedback.RequestFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), none.TotalCount)
}
