package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// DefaultStoragePath is the logical bucket used when a document names none.
const DefaultStoragePath = "Default"

// Document is one managed file in the catalog.
// FilePath is the natural key; ID is assigned by the store on first persist.
type Document struct {
	ID            int64     `json:"id,omitempty"`
	Title         string    `json:"title"`
	FilePath      string    `json:"file_path"`
	FileName      string    `json:"file_name"`
	FileSize      int64     `json:"file_size"`
	PageCount     int       `json:"page_count"`
	ArchiveSerial *string   `json:"archive_serial,omitempty"`
	DateCreated   string    `json:"date_created"`
	Correspondent *string   `json:"correspondent,omitempty"`
	DocumentType  *string   `json:"document_type,omitempty"`
	StoragePath   string    `json:"storage_path"`
	Tags          string    `json:"tags"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Stats aggregates the whole catalog.
type Stats struct {
	TotalDocuments int64 `json:"total_documents"`
	TotalSizeBytes int64 `json:"total_size_bytes"`
}

// EncodeTags serializes an ordered tag list into the text form stored in Tags.
// Characters such as & and < are kept literal so substring search sees them.
func EncodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tags); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// DecodeTags parses the stored text form back into the ordered list.
// An empty string decodes to an empty list.
func DecodeTags(s string) ([]string, error) {
	if s == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
