package document

import (
	"time"
)

type Document struct {
	ID         string
	EmployeeID string
	Name       string
	DocType    string
	FilePath   string
	SizeBytes  int64
	UploadedBy string
	CreatedAt  time.Time

	// Resolved at read time from FilePath
	FileURL *string
}
