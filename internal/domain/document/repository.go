package document

import (
	"context"
)

type DocumentRepository interface {
	// Create inserts a document row; an unknown employee surfaces as a
	// foreign-key violation translated by the repository.
	Create(ctx context.Context, doc Document) (Document, error)

	// GetByID retrieves a document or ErrDocumentNotFound.
	GetByID(ctx context.Context, id string) (Document, error)

	// ListByEmployee returns an employee's documents, newest first.
	ListByEmployee(ctx context.Context, employeeID string, filter DocumentFilter) ([]Document, int64, error)

	// Delete removes the row; ErrDocumentNotFound when nothing matched.
	Delete(ctx context.Context, id string) error
}
