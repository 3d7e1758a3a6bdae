package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"docdesk/internal/apperr"
	"docdesk/internal/model"
	"docdesk/internal/service"
)

// documentRequest is the body of create and update calls.
type documentRequest struct {
	Title         string   `json:"title"`
	FilePath      string   `json:"file_path"`
	FileName      string   `json:"file_name"`
	FileSize      int64    `json:"file_size"`
	PageCount     int      `json:"page_count"`
	ArchiveSerial *string  `json:"archive_serial"`
	DateCreated   string   `json:"date_created"`
	Correspondent *string  `json:"correspondent"`
	DocumentType  *string  `json:"document_type"`
	StoragePath   string   `json:"storage_path"`
	Tags          []string `json:"tags"`
	Notes         *string  `json:"notes"`
}

func (r *documentRequest) toModel() (*model.Document, error) {
	tags, err := model.EncodeTags(r.Tags)
	if err != nil {
		return nil, apperr.Serialization("catalog.tags", err)
	}
	return &model.Document{
		Title:         r.Title,
		FilePath:      r.FilePath,
		FileName:      r.FileName,
		FileSize:      r.FileSize,
		PageCount:     r.PageCount,
		ArchiveSerial: r.ArchiveSerial,
		DateCreated:   r.DateCreated,
		Correspondent: r.Correspondent,
		DocumentType:  r.DocumentType,
		StoragePath:   r.StoragePath,
		Tags:          tags,
		Notes:         r.Notes,
	}, nil
}

// documentView renders Tags as a list instead of the stored text.
type documentView struct {
	model.Document
	Tags []string `json:"tags"`
}

func viewOf(d model.Document) documentView {
	tags, err := model.DecodeTags(d.Tags)
	if err != nil {
		tags = []string{}
	}
	return documentView{Document: d, Tags: tags}
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func optionalInt(c *fiber.Ctx, key string) (*int, bool) {
	s := c.Query(key)
	if s == "" {
		return nil, true
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, false
	}
	return &v, true
}

func optionalString(c *fiber.Ctx, key string) *string {
	if s := c.Query(key); s != "" {
		return &s
	}
	return nil
}

// SearchDocuments godoc
// @Summary Search the catalog
// @Description Case-insensitive substring match on title, file name and tags, most recently updated first.
// @Tags documents
// @Produce json
// @Param q query string false "Text to match"
// @Param type query string false "Exact document type"
// @Param limit query int false "Maximum results"
// @Param offset query int false "Results to skip"
// @Success 200 {array} documentView
// @Failure 400 {object} errorPayload
// @Router /documents [get]
func SearchDocuments(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, ok := optionalInt(c, "limit")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, ok := optionalInt(c, "offset")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		docs, err := svc.Search(c.UserContext(), service.SearchParams{
			Text:         optionalString(c, "q"),
			DocumentType: optionalString(c, "type"),
			Limit:        limit,
			Offset:       offset,
		})
		if err != nil {
			return writeAppError(c, err)
		}

		out := make([]documentView, 0, len(docs))
		for _, d := range docs {
			out = append(out, viewOf(d))
		}
		return c.JSON(out)
	}
}

// UpsertDocument godoc
// @Summary Save a document
// @Description Inserts a document or updates the one with the same file path.
// @Tags documents
// @Accept json
// @Produce json
// @Param document body documentRequest true "Document"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /documents [post]
func UpsertDocument(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req documentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		doc, err := req.toModel()
		if err != nil {
			return writeAppError(c, err)
		}

		id, err := svc.Upsert(c.UserContext(), doc)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(fiber.Map{"id": id})
	}
}

// DocumentStats godoc
// @Summary Catalog totals
// @Tags documents
// @Produce json
// @Success 200 {object} model.Stats
// @Router /documents/stats [get]
func DocumentStats(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(st)
	}
}

// GetDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} documentView
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [get]
func GetDocument(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(viewOf(*doc))
	}
}

// UpdateDocument godoc
// @Summary Update a document
// @Tags documents
// @Accept json
// @Param id path int true "Document ID"
// @Param document body documentRequest true "Document"
// @Success 204
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /documents/{id} [put]
func UpdateDocument(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req documentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		doc, err := req.toModel()
		if err != nil {
			return writeAppError(c, err)
		}
		if err := svc.Update(c.UserContext(), id, doc); err != nil {
			return writeAppError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Param id path int true "Document ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [delete]
func DeleteDocument(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeAppError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ArchiveDocument godoc
// @Summary Archive a document's file to object storage
// @Tags documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} service.ArchiveResult
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /documents/{id}/archive [post]
func ArchiveDocument(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := svc.Archive(c.UserContext(), id)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(res)
	}
}
