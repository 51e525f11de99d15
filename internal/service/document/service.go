package document

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kelora-hr/kelora-backend-go/internal/domain/document"
	"github.com/kelora-hr/kelora-backend-go/internal/service/file"
)

var allowedExtensions = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".jpg", ".jpeg", ".png"}

type DocumentServiceImpl struct {
	document.DocumentRepository
	fileService file.FileService
}

func NewDocumentService(documentRepository document.DocumentRepository, fileService file.FileService) document.DocumentService {
	return &DocumentServiceImpl{
		DocumentRepository: documentRepository,
		fileService:        fileService,
	}
}

// Upload implements document.DocumentService. The file is stored first; if
// recording the metadata fails the stored file is removed again.
func (s *DocumentServiceImpl) Upload(ctx context.Context, req document.UploadDocumentRequest) (document.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return document.DocumentResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	uploadedBy, _ := claims["user_id"].(string)

	ext := strings.ToLower(filepath.Ext(req.FileHeader.Filename))
	allowed := false
	for _, allowedExt := range allowedExtensions {
		if ext == allowedExt {
			allowed = true
			break
		}
	}
	if !allowed {
		return document.DocumentResponse{}, document.ErrInvalidFileType
	}

	path, err := s.fileService.UploadDocument(ctx, req.EmployeeID, req.File, req.FileHeader.Filename, req.DocType)
	if err != nil {
		return document.DocumentResponse{}, err
	}

	doc := document.Document{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		DocType:    req.DocType,
		FilePath:   path,
		SizeBytes:  req.FileHeader.Size,
		UploadedBy: uploadedBy,
	}

	created, err := s.DocumentRepository.Create(ctx, doc)
	if err != nil {
		if delErr := s.fileService.DeleteFile(ctx, path); delErr != nil {
			return document.DocumentResponse{}, fmt.Errorf("%w (orphaned file cleanup also failed: %v)", err, delErr)
		}
		return document.DocumentResponse{}, err
	}

	return s.toDocumentResponse(ctx, created), nil
}

// ListByEmployee implements document.DocumentService.
func (s *DocumentServiceImpl) ListByEmployee(ctx context.Context, employeeID string, filter document.DocumentFilter) (document.ListDocumentResponse, error) {
	if err := filter.Validate(); err != nil {
		return document.ListDocumentResponse{}, err
	}

	docs, total, err := s.DocumentRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return document.ListDocumentResponse{}, err
	}

	responses := make([]document.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, s.toDocumentResponse(ctx, doc))
	}

	return document.ListDocumentResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Documents:  responses,
	}, nil
}

// Delete implements document.DocumentService. The metadata row is the source
// of truth; the stored file is removed best-effort afterwards.
func (s *DocumentServiceImpl) Delete(ctx context.Context, id string) error {
	doc, err := s.DocumentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.DocumentRepository.Delete(ctx, id); err != nil {
		return err
	}

	// The file may already be gone; the row deletion is what matters.
	_ = s.fileService.DeleteFile(ctx, doc.FilePath)
	return nil
}

func (s *DocumentServiceImpl) toDocumentResponse(ctx context.Context, doc document.Document) document.DocumentResponse {
	resp := document.DocumentResponse{
		ID:         doc.ID,
		EmployeeID: doc.EmployeeID,
		Name:       doc.Name,
		DocType:    doc.DocType,
		SizeBytes:  doc.SizeBytes,
		UploadedBy: doc.UploadedBy,
		CreatedAt:  doc.CreatedAt.Format(time.RFC3339),
	}
	if url, err := s.fileService.GetFileURL(ctx, doc.FilePath, time.Hour); err == nil {
		resp.FileURL = &url
	}
	return resp
}
