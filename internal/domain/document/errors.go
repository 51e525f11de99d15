package document

import "errors"

// Document domain errors
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrFileTooLarge     = errors.New("file exceeds the maximum allowed size")
	ErrInvalidFileType  = errors.New("file type is not allowed")
)
