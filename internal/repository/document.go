package repository

import (
	"context"

	"docdesk/internal/model"
)

// CatalogRepository defines data access for catalogued documents using SQL queries only.
// Persistence only; validation lives in the service layer.
type CatalogRepository interface {
	// Upsert inserts doc, or updates the row that already holds doc.FilePath.
	// created_at is only written on insert. Returns the row id in both cases.
	Upsert(ctx context.Context, doc *model.Document) (int64, error)

	// FindByID returns a document by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.Document, error)

	// Search returns documents ordered by most recently updated first.
	Search(ctx context.Context, q SearchQuery) ([]model.Document, error)

	// UpdateByID overwrites every mutable field of the row and returns rows affected.
	UpdateByID(ctx context.Context, id int64, doc *model.Document) (int64, error)

	// DeleteByID removes the row and returns rows affected.
	DeleteByID(ctx context.Context, id int64) (int64, error)

	// Stats returns the row count and the sum of file sizes.
	Stats(ctx context.Context) (model.Stats, error)
}

// SearchQuery holds optional filters and limit/offset pagination.
// Nil fields are not applied.
type SearchQuery struct {
	Text         *string
	DocumentType *string
	Limit        *int
	Offset       *int
}
