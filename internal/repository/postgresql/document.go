package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/document"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/employee"
	"github.com/kelora-hr/kelora-backend-go/internal/pkg/database"
)

type documentRepository struct {
	db *database.DB
}

// NewDocumentRepository creates a new instance of document.DocumentRepository.
func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepository{db: db}
}

// Create implements document.DocumentRepository. A foreign-key violation on
// employee_id maps to employee.ErrEmployeeNotFound.
func (r *documentRepository) Create(ctx context.Context, doc document.Document) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO documents (employee_id, name, doc_type, file_path, size_bytes, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		doc.EmployeeID,
		doc.Name,
		doc.DocType,
		doc.FilePath,
		doc.SizeBytes,
		doc.UploadedBy,
	).Scan(&doc.ID, &doc.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return document.Document{}, employee.ErrEmployeeNotFound
		}
		return document.Document{}, fmt.Errorf("failed to create document: %w", err)
	}

	return doc, nil
}

// GetByID implements document.DocumentRepository.
func (r *documentRepository) GetByID(ctx context.Context, id string) (document.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, name, doc_type, file_path, size_bytes, uploaded_by, created_at
		FROM documents
		WHERE id = $1
	`

	var doc document.Document
	err := q.QueryRow(ctx, query, id).Scan(
		&doc.ID, &doc.EmployeeID, &doc.Name, &doc.DocType,
		&doc.FilePath, &doc.SizeBytes, &doc.UploadedBy, &doc.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, fmt.Errorf("failed to get document by ID: %w", err)
	}

	return doc, nil
}

// ListByEmployee implements document.DocumentRepository.
func (r *documentRepository) ListByEmployee(ctx context.Context, employeeID string, filter document.DocumentFilter) ([]document.Document, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.DocType != nil && *filter.DocType != "" {
		baseWhere += fmt.Sprintf(" AND doc_type = $%d", argIdx)
		args = append(args, *filter.DocType)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM documents WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, employee_id, name, doc_type, file_path, size_bytes, uploaded_by, created_at
		FROM documents
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		var doc document.Document
		err := rows.Scan(
			&doc.ID, &doc.EmployeeID, &doc.Name, &doc.DocType,
			&doc.FilePath, &doc.SizeBytes, &doc.UploadedBy, &doc.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// Delete implements document.DocumentRepository.
func (r *documentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return document.ErrDocumentNotFound
	}

	return nil
}
