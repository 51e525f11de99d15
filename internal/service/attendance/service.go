package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/attendance"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/auth"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/user"
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/database"
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/timefmt"
)

type CheckinServiceImpl struct {
	db *database.DB
	attendance.CheckinRepository
	loc *time.Location
	now func() time.Time
}

// NewCheckinService creates a new instance of attendance.CheckinService. All
// day boundaries are evaluated in loc.
func NewCheckinService(db *database.DB, checkinRepository attendance.CheckinRepository, loc *time.Location) attendance.CheckinService {
	return &CheckinServiceImpl{
		db:                db,
		CheckinRepository: checkinRepository,
		loc:               loc,
		now:               time.Now,
	}
}

// CheckIn implements attendance.CheckinService. The repository's unique index
// on (employee_id, checkin_date) decides the winner when two check-ins for
// the same day race; there is no read-then-insert window to exploit.
func (s *CheckinServiceImpl) CheckIn(ctx context.Context) (attendance.CheckinRecordResponse, error) {
	employeeID, _, err := identityFromClaims(ctx)
	if err != nil {
		return attendance.CheckinRecordResponse{}, err
	}

	nowLocal := s.now().In(s.loc)

	record := attendance.NewCheckinRecord(employeeID, nowLocal)
	created, err := s.CheckinRepository.Create(ctx, record)
	if err != nil {
		return attendance.CheckinRecordResponse{}, err
	}

	return toCheckinRecordResponse(created), nil
}

// Transition implements attendance.CheckinService. The state machine runs on
// an in-memory copy; persistence is conditional on the status we read, so a
// concurrent transition leaves exactly one winner.
func (s *CheckinServiceImpl) Transition(ctx context.Context, req attendance.TransitionRequest) (attendance.CheckinRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckinRecordResponse{}, err
	}
	target, _ := attendance.ParseStatus(req.Type)

	employeeID, role, err := identityFromClaims(ctx)
	if err != nil {
		return attendance.CheckinRecordResponse{}, err
	}

	record, err := s.CheckinRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.CheckinRecordResponse{}, err
	}
	if role != user.RoleAdmin && record.EmployeeID != employeeID {
		return attendance.CheckinRecordResponse{}, attendance.ErrRecordNotFound
	}

	expected := record.Status
	updated := record
	if err := updated.ApplyTransition(target, s.now().In(s.loc)); err != nil {
		return attendance.CheckinRecordResponse{}, err
	}

	update := attendance.TransitionUpdate{
		Status:  updated.Status,
		OnBreak: updated.OnBreak,
	}
	if updated.Status == attendance.StatusCheckout {
		update.CheckoutTime = updated.CheckoutTime
		update.DailyMinutes = &updated.DailyMinutes
	}

	applied, err := s.CheckinRepository.ApplyTransition(ctx, req.ID, expected, update)
	if err != nil {
		return attendance.CheckinRecordResponse{}, err
	}
	if !applied {
		return attendance.CheckinRecordResponse{}, s.classifyLostTransition(ctx, req.ID)
	}

	return toCheckinRecordResponse(updated), nil
}

// classifyLostTransition turns a zero-row conditional update into the error
// the caller can act on: the record vanished, the day closed under us, or a
// sibling request simply got there first.
func (s *CheckinServiceImpl) classifyLostTransition(ctx context.Context, id string) error {
	current, err := s.CheckinRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status == attendance.StatusCheckout {
		return attendance.ErrDayAlreadyClosed
	}
	return attendance.ErrTransitionConflict
}

// GetToday implements attendance.CheckinService.
func (s *CheckinServiceImpl) GetToday(ctx context.Context) (attendance.CheckinRecordResponse, error) {
	employeeID, _, err := identityFromClaims(ctx)
	if err != nil {
		return attendance.CheckinRecordResponse{}, err
	}

	dateLocal := s.now().In(s.loc).Format("2006-01-02")
	record, err := s.CheckinRepository.GetByEmployeeAndDate(ctx, employeeID, dateLocal)
	if err != nil {
		return attendance.CheckinRecordResponse{}, err
	}
	if record == nil {
		return attendance.CheckinRecordResponse{}, attendance.ErrRecordNotFound
	}

	return toCheckinRecordResponse(*record), nil
}

// GetMyHistory implements attendance.CheckinService.
func (s *CheckinServiceImpl) GetMyHistory(ctx context.Context, filter attendance.MyHistoryFilter) (attendance.ListCheckinResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListCheckinResponse{}, err
	}

	employeeID, _, err := identityFromClaims(ctx)
	if err != nil {
		return attendance.ListCheckinResponse{}, err
	}

	records, total, err := s.CheckinRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListCheckinResponse{}, err
	}

	return toListCheckinResponse(records, total, filter.Page, filter.Limit), nil
}

// ListHistory implements attendance.CheckinService.
func (s *CheckinServiceImpl) ListHistory(ctx context.Context, filter attendance.HistoryFilter) (attendance.ListCheckinResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListCheckinResponse{}, err
	}

	records, total, err := s.CheckinRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListCheckinResponse{}, err
	}

	return toListCheckinResponse(records, total, filter.Page, filter.Limit), nil
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

func toCheckinRecordResponse(record attendance.CheckinRecord) attendance.CheckinRecordResponse {
	resp := attendance.CheckinRecordResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		CheckinDate:  record.CheckinDate.Format("2006-01-02"),
		CheckinTime:  record.CheckinTime.Format("2006-01-02 15:04:05"),
		CheckoutTime: timePtrToString(record.CheckoutTime),
		Status:       string(record.Status),
		OnBreak:      record.OnBreak,

		WorkingMinutes: record.WorkingMinutes,
		BreakMinutes:   record.BreakMinutes,
		DailyMinutes:   record.DailyMinutes,

		WorkingHours: timefmt.MustFormatMinutes(record.WorkingMinutes),
		BreakHours:   timefmt.MustFormatMinutes(record.BreakMinutes),
		DailyHours:   timefmt.MustFormatMinutes(record.DailyMinutes),

		CreatedAt: record.CreatedAt.Format(time.RFC3339),
		UpdatedAt: record.UpdatedAt.Format(time.RFC3339),
	}
	return resp
}

func toListCheckinResponse(records []attendance.CheckinRecord, total int64, page, limit int) attendance.ListCheckinResponse {
	responses := make([]attendance.CheckinRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toCheckinRecordResponse(record))
	}

	return attendance.ListCheckinResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		Records:    responses,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}
