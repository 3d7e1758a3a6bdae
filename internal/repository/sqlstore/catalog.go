package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"docdesk/internal/model"
	"docdesk/internal/repository"
)

// timeLayout is fixed width so lexical order equals chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const selectColumns = `id, title, file_path, file_name, file_size, page_count,
		archive_serial, date_created, correspondent, document_type,
		storage_path, tags, notes, created_at, updated_at`

// CatalogStore is a database/sql implementation of repository.CatalogRepository.
// It uses parameterized queries and contains no business logic.
type CatalogStore struct {
	db      *sql.DB
	dialect Dialect

	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewCatalogStore creates a new CatalogStore for the given dialect.
func NewCatalogStore(db *sql.DB, dialect Dialect) *CatalogStore {
	return &CatalogStore{db: db, dialect: dialect, now: time.Now}
}

var _ repository.CatalogRepository = (*CatalogStore)(nil)

// stamp returns the mutation timestamp. It never repeats or goes backwards
// within this store, so updated_at strictly advances on every write.
func (r *CatalogStore) stamp() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.now().UTC()
	if !t.After(r.last) {
		t = r.last.Add(time.Nanosecond)
	}
	r.last = t
	return t
}

// Upsert inserts a row or, on a file_path conflict, updates it in place.
// created_at is only written by the insert branch.
func (r *CatalogStore) Upsert(ctx context.Context, doc *model.Document) (int64, error) {
	b := r.dialect.bind
	q := fmt.Sprintf(`
		INSERT INTO documents (
			title, file_path, file_name, file_size, page_count,
			archive_serial, date_created, correspondent, document_type,
			storage_path, tags, notes, created_at, updated_at
		) VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		ON CONFLICT (file_path) DO UPDATE SET
			title = excluded.title,
			file_name = excluded.file_name,
			file_size = excluded.file_size,
			page_count = excluded.page_count,
			archive_serial = excluded.archive_serial,
			date_created = excluded.date_created,
			correspondent = excluded.correspondent,
			document_type = excluded.document_type,
			storage_path = excluded.storage_path,
			tags = excluded.tags,
			notes = excluded.notes,
			updated_at = excluded.updated_at
		RETURNING id`,
		b(1), b(2), b(3), b(4), b(5), b(6), b(7), b(8), b(9), b(10), b(11), b(12), b(13), b(14))

	now := r.stamp().Format(timeLayout)
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		doc.Title,
		doc.FilePath,
		doc.FileName,
		doc.FileSize,
		doc.PageCount,
		nullString(doc.ArchiveSerial),
		doc.DateCreated,
		nullString(doc.Correspondent),
		nullString(doc.DocumentType),
		doc.StoragePath,
		doc.Tags,
		nullString(doc.Notes),
		now,
		now,
	).Scan(&id)
	if err != nil {
		return 0, classify("catalog.upsert", err)
	}
	return id, nil
}

// FindByID fetches a single document by its ID.
func (r *CatalogStore) FindByID(ctx context.Context, id int64) (*model.Document, error) {
	q := `SELECT ` + selectColumns + ` FROM documents WHERE id = ` + r.dialect.bind(1)
	d, err := scanDocument(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Search filters by a case-insensitive substring over title, file_name and tags,
// and by exact document_type, newest update first.
func (r *CatalogStore) Search(ctx context.Context, sq repository.SearchQuery) ([]model.Document, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT ` + selectColumns + ` FROM documents WHERE 1=1`)

	if sq.Text != nil {
		args = append(args, "%"+escapeLike(strings.ToLower(*sq.Text))+"%")
		p := r.dialect.bind(len(args))
		lower := r.dialect.lower
		fmt.Fprintf(&sb, ` AND (%[2]s LIKE %[1]s ESCAPE '\' OR %[3]s LIKE %[1]s ESCAPE '\' OR %[4]s LIKE %[1]s ESCAPE '\')`,
			p, lower("title"), lower("file_name"), lower("tags"))
	}
	if sq.DocumentType != nil {
		args = append(args, *sq.DocumentType)
		fmt.Fprintf(&sb, ` AND document_type = %s`, r.dialect.bind(len(args)))
	}

	sb.WriteString(` ORDER BY updated_at DESC, id DESC`)

	switch {
	case sq.Limit != nil:
		args = append(args, *sq.Limit)
		fmt.Fprintf(&sb, ` LIMIT %s`, r.dialect.bind(len(args)))
	case sq.Offset != nil:
		fmt.Fprintf(&sb, ` LIMIT %s`, r.dialect.unboundedLimit())
	}
	if sq.Offset != nil {
		args = append(args, *sq.Offset)
		fmt.Fprintf(&sb, ` OFFSET %s`, r.dialect.bind(len(args)))
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateByID overwrites all fields except id, file_path and created_at.
func (r *CatalogStore) UpdateByID(ctx context.Context, id int64, doc *model.Document) (int64, error) {
	b := r.dialect.bind
	q := fmt.Sprintf(`
		UPDATE documents SET
			title = %s,
			file_name = %s,
			file_size = %s,
			page_count = %s,
			archive_serial = %s,
			date_created = %s,
			correspondent = %s,
			document_type = %s,
			storage_path = %s,
			tags = %s,
			notes = %s,
			updated_at = %s
		WHERE id = %s`,
		b(1), b(2), b(3), b(4), b(5), b(6), b(7), b(8), b(9), b(10), b(11), b(12), b(13))

	res, err := r.db.ExecContext(ctx, q,
		doc.Title,
		doc.FileName,
		doc.FileSize,
		doc.PageCount,
		nullString(doc.ArchiveSerial),
		doc.DateCreated,
		nullString(doc.Correspondent),
		nullString(doc.DocumentType),
		doc.StoragePath,
		doc.Tags,
		nullString(doc.Notes),
		r.stamp().Format(timeLayout),
		id,
	)
	if err != nil {
		return 0, classify("catalog.update", err)
	}
	return res.RowsAffected()
}

// DeleteByID removes a document by ID.
func (r *CatalogStore) DeleteByID(ctx context.Context, id int64) (int64, error) {
	q := `DELETE FROM documents WHERE id = ` + r.dialect.bind(1)
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Stats returns the document count and total size in one pass.
func (r *CatalogStore) Stats(ctx context.Context) (model.Stats, error) {
	const q = `SELECT COUNT(*), CAST(COALESCE(SUM(file_size), 0) AS BIGINT) FROM documents`
	var s model.Stats
	if err := r.db.QueryRowContext(ctx, q).Scan(&s.TotalDocuments, &s.TotalSizeBytes); err != nil {
		return model.Stats{}, err
	}
	return s, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(s scanner) (*model.Document, error) {
	var (
		d                                            model.Document
		archiveSerial, correspondent, docType, notes sql.NullString
		createdAt, updatedAt                         string
	)
	if err := s.Scan(
		&d.ID,
		&d.Title,
		&d.FilePath,
		&d.FileName,
		&d.FileSize,
		&d.PageCount,
		&archiveSerial,
		&d.DateCreated,
		&correspondent,
		&docType,
		&d.StoragePath,
		&d.Tags,
		&notes,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	d.ArchiveSerial = stringPtr(archiveSerial)
	d.Correspondent = stringPtr(correspondent)
	d.DocumentType = stringPtr(docType)
	d.Notes = stringPtr(notes)

	var err error
	if d.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &d, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
