package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/attendance"
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/database"
)

type checkinRepository struct {
	db *database.DB
}

// NewCheckinRepository creates a new instance of attendance.CheckinRepository.
func NewCheckinRepository(db *database.DB) attendance.CheckinRepository {
	return &checkinRepository{db: db}
}

// Create implements attendance.CheckinRepository. The unique index on
// (employee_id, checkin_date) is the sole guard against two records covering
// the same day; a violation maps to ErrAlreadyCheckedIn.
func (r *checkinRepository) Create(ctx context.Context, record attendance.CheckinRecord) (attendance.CheckinRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO checkin_records (
			employee_id, checkin_date, checkin_time, checkout_time,
			status, on_break, working_minutes, break_minutes, daily_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.CheckinDate,
		record.CheckinTime,
		record.CheckoutTime,
		record.Status,
		record.OnBreak,
		record.WorkingMinutes,
		record.BreakMinutes,
		record.DailyMinutes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.CheckinRecord{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.CheckinRecord{}, fmt.Errorf("failed to create check-in record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.CheckinRepository.
func (r *checkinRepository) GetByID(ctx context.Context, id string) (attendance.CheckinRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.employee_id, c.checkin_date, c.checkin_time, c.checkout_time,
			   c.status, c.on_break, c.working_minutes, c.break_minutes, c.daily_minutes,
			   c.created_at, c.updated_at,
			   e.full_name AS employee_name
		FROM checkin_records c
		LEFT JOIN employees e ON e.id = c.employee_id
		WHERE c.id = $1
	`

	var record attendance.CheckinRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.CheckinDate, &record.CheckinTime, &record.CheckoutTime,
		&record.Status, &record.OnBreak, &record.WorkingMinutes, &record.BreakMinutes, &record.DailyMinutes,
		&record.CreatedAt, &record.UpdatedAt,
		&record.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.CheckinRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.CheckinRecord{}, fmt.Errorf("failed to get check-in record by ID: %w", err)
	}

	return record, nil
}

// GetByEmployeeAndDate implements attendance.CheckinRepository.
func (r *checkinRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, dateLocal string) (*attendance.CheckinRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, checkin_date, checkin_time, checkout_time,
			   status, on_break, working_minutes, break_minutes, daily_minutes,
			   created_at, updated_at
		FROM checkin_records
		WHERE employee_id = $1
		  AND checkin_date = $2
		LIMIT 1
	`

	var record attendance.CheckinRecord
	err := q.QueryRow(ctx, query, employeeID, dateLocal).Scan(
		&record.ID, &record.EmployeeID, &record.CheckinDate, &record.CheckinTime, &record.CheckoutTime,
		&record.Status, &record.OnBreak, &record.WorkingMinutes, &record.BreakMinutes, &record.DailyMinutes,
		&record.CreatedAt, &record.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get check-in record by employee and date: %w", err)
	}

	return &record, nil
}

// ApplyTransition implements attendance.CheckinRepository. The WHERE clause
// pins the stored status, so two concurrent transitions from the same state
// can never both win; the loser sees zero rows affected.
func (r *checkinRepository) ApplyTransition(ctx context.Context, id string, expected attendance.Status, update attendance.TransitionUpdate) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE checkin_records
		SET status = $1,
			on_break = $2,
			checkout_time = COALESCE($3, checkout_time),
			daily_minutes = COALESCE($4, daily_minutes),
			updated_at = NOW()
		WHERE id = $5
		  AND status = $6
	`

	commandTag, err := q.Exec(ctx, query,
		update.Status,
		update.OnBreak,
		update.CheckoutTime,
		update.DailyMinutes,
		id,
		expected,
	)
	if err != nil {
		return false, fmt.Errorf("failed to apply transition: %w", err)
	}

	return commandTag.RowsAffected() > 0, nil
}

// ListByEmployee implements attendance.CheckinRepository.
func (r *checkinRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.MyHistoryFilter) ([]attendance.CheckinRecord, int64, error) {
	baseWhere := "c.employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	baseWhere, args, argIdx = appendCheckinFilters(baseWhere, args, argIdx, filter.Date, filter.StartDate, filter.EndDate, filter.Status)

	return r.list(ctx, baseWhere, args, argIdx, filter.SortBy, filter.SortOrder, filter.Page, filter.Limit)
}

// List implements attendance.CheckinRepository.
func (r *checkinRepository) List(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.CheckinRecord, int64, error) {
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND c.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	baseWhere, args, argIdx = appendCheckinFilters(baseWhere, args, argIdx, filter.Date, filter.StartDate, filter.EndDate, filter.Status)

	return r.list(ctx, baseWhere, args, argIdx, filter.SortBy, filter.SortOrder, filter.Page, filter.Limit)
}

func appendCheckinFilters(baseWhere string, args []interface{}, argIdx int, date, startDate, endDate, status *string) (string, []interface{}, int) {
	if date != nil && *date != "" {
		baseWhere += fmt.Sprintf(" AND c.checkin_date = $%d", argIdx)
		args = append(args, *date)
		argIdx++
	}
	if startDate != nil && *startDate != "" {
		baseWhere += fmt.Sprintf(" AND c.checkin_date >= $%d", argIdx)
		args = append(args, *startDate)
		argIdx++
	}
	if endDate != nil && *endDate != "" {
		baseWhere += fmt.Sprintf(" AND c.checkin_date <= $%d", argIdx)
		args = append(args, *endDate)
		argIdx++
	}
	if status != nil && *status != "" {
		baseWhere += fmt.Sprintf(" AND c.status = $%d", argIdx)
		args = append(args, *status)
		argIdx++
	}
	return baseWhere, args, argIdx
}

func (r *checkinRepository) list(ctx context.Context, baseWhere string, args []interface{}, argIdx int, sortBy, sortOrder string, page, limit int) ([]attendance.CheckinRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := "SELECT COUNT(*) FROM checkin_records c WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count check-in records: %w", err)
	}

	orderByField := "c.checkin_date"
	switch sortBy {
	case "checkin_time":
		orderByField = "c.checkin_time"
	case "checkout_time":
		orderByField = "c.checkout_time"
	case "status":
		orderByField = "c.status"
	}
	order := "DESC"
	if strings.ToLower(sortOrder) == "asc" {
		order = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT c.id, c.employee_id, c.checkin_date, c.checkin_time, c.checkout_time,
			   c.status, c.on_break, c.working_minutes, c.break_minutes, c.daily_minutes,
			   c.created_at, c.updated_at,
			   e.full_name AS employee_name
		FROM checkin_records c
		LEFT JOIN employees e ON e.id = c.employee_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, order, argIdx, argIdx+1)

	if limit == 0 {
		limit = 20
	}
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query check-in records: %w", err)
	}
	defer rows.Close()

	var records []attendance.CheckinRecord
	for rows.Next() {
		var record attendance.CheckinRecord
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.CheckinDate, &record.CheckinTime, &record.CheckoutTime,
			&record.Status, &record.OnBreak, &record.WorkingMinutes, &record.BreakMinutes, &record.DailyMinutes,
			&record.CreatedAt, &record.UpdatedAt,
			&record.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan check-in record: %w", err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
