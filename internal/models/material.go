package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Supported material file types
const (
	FileTypePDF  = "pdf"
	FileTypeTXT  = "txt"
	FileTypeDOCX = "docx"
)

// AllowedFileTypes is the upload allow-list.
var AllowedFileTypes = map[string]struct{}{
	FileTypePDF:  {},
	FileTypeTXT:  {},
	FileTypeDOCX: {},
}

// FileTypeOf returns the lower-cased substring after the final dot of name,
// or an empty string when name has no extension.
func FileTypeOf(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// IsAllowedFileType reports whether fileType is in the upload allow-list.
func IsAllowedFileType(fileType string) bool {
	_, ok := AllowedFileTypes[fileType]
	return ok
}

// MaterialDB represents an uploaded study material row in the database
type MaterialDB struct {
	MaterialID  uuid.UUID `json:"id" db:"material_id"`          // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`         // Owner of the material
	Title       string    `json:"title" db:"title"`             // Display title
	Description *string   `json:"description" db:"description"` // Optional free-text description
	FilePath    string    `json:"-" db:"file_path"`             // Storage path or object key of the artifact
	FileType    string    `json:"file_type" db:"file_type"`     // One of AllowedFileTypes
	FileSize    int64     `json:"file_size" db:"file_size"`     // Size of the persisted artifact in bytes
	Pages       *int      `json:"pages" db:"pages"`             // PDF page count, nil when unknown
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
