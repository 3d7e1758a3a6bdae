package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"docdesk/internal/apperr"
	"docdesk/internal/model"
	"docdesk/internal/repository"
	"docdesk/internal/storage"
)

// SearchParams are the optional catalog filters. Nil fields are not applied.
type SearchParams struct {
	Text         *string
	DocumentType *string
	Limit        *int
	Offset       *int
}

// ArchiveResult describes an archived copy of a catalogued file.
type ArchiveResult struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
	ETag string `json:"etag"`
	URL  string `json:"url"`
}

// CatalogService defines the use cases for the document catalog.
type CatalogService interface {
	// Upsert inserts or updates by file path and returns the document id.
	Upsert(ctx context.Context, doc *model.Document) (int64, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id int64) (*model.Document, error)

	// Search returns matching documents, most recently updated first.
	Search(ctx context.Context, p SearchParams) ([]model.Document, error)

	// Update overwrites the mutable fields of an existing document.
	// A missing id is reported as NotFound.
	Update(ctx context.Context, id int64, doc *model.Document) error

	// Delete removes a document (and its archived copy, if archiving is enabled).
	// A missing id is reported as NotFound.
	Delete(ctx context.Context, id int64) error

	// Stats returns catalog totals.
	Stats(ctx context.Context) (model.Stats, error)

	// Archive uploads the document's file to object storage and returns a download URL.
	Archive(ctx context.Context, id int64) (*ArchiveResult, error)
}

type catalogService struct {
	repo      repository.CatalogRepository
	archive   storage.Storage
	urlExpiry time.Duration
}

// NewCatalogService constructs a new CatalogService. archive may be nil, which
// disables Archive.
func NewCatalogService(repo repository.CatalogRepository, archive storage.Storage, urlExpiry time.Duration) CatalogService {
	if urlExpiry <= 0 {
		urlExpiry = 15 * time.Minute
	}
	return &catalogService{repo: repo, archive: archive, urlExpiry: urlExpiry}
}

func (s *catalogService) Upsert(ctx context.Context, doc *model.Document) (int64, error) {
	if err := normalize("catalog.upsert", doc); err != nil {
		return 0, err
	}
	id, err := s.repo.Upsert(ctx, doc)
	if err != nil {
		return 0, fmt.Errorf("save document: %w", err)
	}
	return id, nil
}

func (s *catalogService) Get(ctx context.Context, id int64) (*model.Document, error) {
	if id <= 0 {
		return nil, apperr.ConstraintViolation("catalog.get", "id must be positive")
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("catalog.get", "document %d not found", id)
		}
		return nil, err
	}
	return doc, nil
}

func (s *catalogService) Search(ctx context.Context, p SearchParams) ([]model.Document, error) {
	if p.Limit != nil && *p.Limit < 0 {
		return nil, apperr.ConstraintViolation("catalog.search", "limit must not be negative")
	}
	if p.Offset != nil && *p.Offset < 0 {
		return nil, apperr.ConstraintViolation("catalog.search", "offset must not be negative")
	}
	return s.repo.Search(ctx, repository.SearchQuery{
		Text:         p.Text,
		DocumentType: p.DocumentType,
		Limit:        p.Limit,
		Offset:       p.Offset,
	})
}

func (s *catalogService) Update(ctx context.Context, id int64, doc *model.Document) error {
	if id <= 0 {
		return apperr.ConstraintViolation("catalog.update", "id must be positive")
	}
	if err := normalize("catalog.update", doc); err != nil {
		return err
	}
	n, err := s.repo.UpdateByID(ctx, id, doc)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if n == 0 {
		return apperr.NotFound("catalog.update", "document %d not found", id)
	}
	return nil
}

// Delete removes the archived copy first; if that fails the row is kept so the
// archive reference is not lost.
func (s *catalogService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.ConstraintViolation("catalog.delete", "id must be positive")
	}
	if s.archive != nil {
		doc, err := s.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := s.archive.Delete(ctx, archiveKey(doc)); err != nil {
			return fmt.Errorf("delete archive: %w", err)
		}
	}
	n, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("catalog.delete", "document %d not found", id)
	}
	return nil
}

func (s *catalogService) Stats(ctx context.Context) (model.Stats, error) {
	return s.repo.Stats(ctx)
}

func (s *catalogService) Archive(ctx context.Context, id int64) (*ArchiveResult, error) {
	if s.archive == nil {
		return nil, apperr.ToolUnavailable("catalog.archive", nil, "object storage is not configured")
	}
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(doc.FilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.NotFound("catalog.archive", "file %s not found", doc.FilePath)
		}
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}

	ct := mime.TypeByExtension(filepath.Ext(doc.FileName))
	if ct == "" {
		ct = "application/octet-stream"
	}

	key := archiveKey(doc)
	info, err := s.archive.Put(ctx, key, f, storage.PutObjectOptions{
		Size:        fi.Size(),
		ContentType: ct,
		Metadata: map[string]string{
			"document-id": strconv.FormatInt(doc.ID, 10),
			"title":       doc.Title,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	u, err := s.archive.PresignGet(ctx, info.Key, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign archive: %w", err)
	}
	return &ArchiveResult{Key: info.Key, Size: info.Size, ETag: info.ETag, URL: u}, nil
}

// archiveKey is <storage path>/<id>/<file name>.
func archiveKey(doc *model.Document) string {
	return path.Join(doc.StoragePath, strconv.FormatInt(doc.ID, 10), doc.FileName)
}

// normalize applies defaults and rejects documents the catalog cannot hold.
func normalize(op string, doc *model.Document) error {
	if doc == nil {
		return apperr.ConstraintViolation(op, "document is required")
	}
	if doc.Title == "" || doc.FileName == "" {
		return apperr.ConstraintViolation(op, "title and file name are required")
	}
	if doc.FilePath == "" || !filepath.IsAbs(doc.FilePath) {
		return apperr.ConstraintViolation(op, "file path must be absolute")
	}
	if doc.FileSize < 0 || doc.PageCount < 0 {
		return apperr.ConstraintViolation(op, "file size and page count must not be negative")
	}
	if doc.StoragePath == "" {
		doc.StoragePath = model.DefaultStoragePath
	}
	if doc.Tags == "" {
		doc.Tags = "[]"
	}
	if _, err := model.DecodeTags(doc.Tags); err != nil {
		return apperr.Serialization(op, err)
	}
	return nil
}
