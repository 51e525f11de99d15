package document

import (
	"context"
)

// DocumentService defines business logic for employee document handling.
type DocumentService interface {
	// Upload stores the file and records its metadata.
	Upload(ctx context.Context, req UploadDocumentRequest) (DocumentResponse, error)

	// ListByEmployee returns an employee's documents with resolved URLs.
	ListByEmployee(ctx context.Context, employeeID string, filter DocumentFilter) (ListDocumentResponse, error)

	// Delete removes the metadata row, then the stored file best-effort.
	Delete(ctx context.Context, id string) error
}
