package attendance

import (
	"strings"

	"github.com/kelora-hr/kelora-backend-go/internal/pkg/validator"
)

type TransitionRequest struct {
	ID   string `json:"-"`
	Type string `json:"type"`
}

func (r *TransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "record id is required",
		})
	}

	if _, ok := ParseStatus(r.Type); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: checkin, break, checkout",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckinRecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	CheckinDate  string  `json:"checkin_date"`
	CheckinTime  string  `json:"checkin_time"`
	CheckoutTime *string `json:"checkout_time,omitempty"`
	Status       string  `json:"status"`
	OnBreak      bool    `json:"on_break"`

	WorkingMinutes int `json:"working_minutes"`
	BreakMinutes   int `json:"break_minutes"`
	DailyMinutes   int `json:"daily_minutes"`

	// HH:MM projections of the minute fields, recomputed on every read.
	WorkingHours string `json:"working_hours"`
	BreakHours   string `json:"break_hours"`
	DailyHours   string `json:"daily_hours"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ListCheckinResponse struct {
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"total_pages"`
	Records    []CheckinRecordResponse `json:"records"`
}

type HistoryFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`    // checkin_date, checkin_time, checkout_time, status
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = appendPaginationErrors(errs, &f.Page, &f.Limit)
	errs = appendStatusError(errs, f.Status)
	errs = appendDateErrors(errs, f.Date, f.StartDate, f.EndDate)

	if f.SortBy == "" {
		f.SortBy = "checkin_date"
	} else if !validator.IsInSlice(f.SortBy, []string{"checkin_date", "checkin_time", "checkout_time", "status"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of: checkin_date, checkin_time, checkout_time, status",
		})
	}
	errs = appendSortOrderError(errs, &f.SortOrder)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MyHistoryFilter struct {
	Date      *string `json:"date,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Status    *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`

	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

func (f *MyHistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = appendPaginationErrors(errs, &f.Page, &f.Limit)
	errs = appendStatusError(errs, f.Status)
	errs = appendDateErrors(errs, f.Date, f.StartDate, f.EndDate)

	if f.SortBy == "" {
		f.SortBy = "checkin_date"
	} else if !validator.IsInSlice(f.SortBy, []string{"checkin_date", "checkin_time", "checkout_time", "status"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of: checkin_date, checkin_time, checkout_time, status",
		})
	}
	errs = appendSortOrderError(errs, &f.SortOrder)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func appendPaginationErrors(errs validator.ValidationErrors, page, limit *int) validator.ValidationErrors {
	if *page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if *page == 0 {
		*page = 1
	}

	if *limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if *limit == 0 {
		*limit = 20
	}
	if *limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}
	return errs
}

func appendStatusError(errs validator.ValidationErrors, status *string) validator.ValidationErrors {
	if status == nil || *status == "" {
		return errs
	}
	if _, ok := ParseStatus(*status); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: checkin, break, checkout",
		})
	}
	return errs
}

func appendDateErrors(errs validator.ValidationErrors, dates ...*string) validator.ValidationErrors {
	fields := []string{"date", "start_date", "end_date"}
	for i, d := range dates {
		if d == nil || *d == "" {
			continue
		}
		if _, valid := validator.IsValidDate(*d); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   fields[i],
				Message: fields[i] + " must be in YYYY-MM-DD format",
			})
		}
	}
	return errs
}

func appendSortOrderError(errs validator.ValidationErrors, sortOrder *string) validator.ValidationErrors {
	if *sortOrder == "" {
		*sortOrder = "desc"
		return errs
	}
	if !validator.IsInSlice(strings.ToLower(*sortOrder), []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be one of: asc, desc",
		})
	}
	return errs
}
