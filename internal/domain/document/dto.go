package document

import (
	"mime/multipart"

	"github.com/kelora-hr/kelora-backend-go/internal/pkg/validator"
)

// MaxUploadSize caps document uploads at 20MB.
const MaxUploadSize = 20 << 20

var allowedDocTypes = []string{"contract", "id_card", "certificate", "cv", "other"}

type UploadDocumentRequest struct {
	EmployeeID string                `json:"-"`
	Name       string                `json:"name"`
	DocType    string                `json:"doc_type"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UploadDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.DocType, allowedDocTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "doc_type",
			Message: "doc_type must be one of: contract, id_card, certificate, cv, other",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "file is required",
		})
	} else if r.FileHeader.Size > MaxUploadSize {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "file size must not exceed 20MB",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DocumentResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	DocType    string  `json:"doc_type"`
	SizeBytes  int64   `json:"size_bytes"`
	UploadedBy string  `json:"uploaded_by"`
	FileURL    *string `json:"file_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type ListDocumentResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Documents  []DocumentResponse `json:"documents"`
}

type DocumentFilter struct {
	DocType *string `json:"doc_type,omitempty"`
	Page    int     `json:"page"`
	Limit   int     `json:"limit"`
}

func (f *DocumentFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.DocType != nil && *f.DocType != "" && !validator.IsInSlice(*f.DocType, allowedDocTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "doc_type",
			Message: "doc_type must be one of: contract, id_card, certificate, cv, other",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
