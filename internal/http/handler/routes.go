package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"docdesk/internal/dispatch"
	"docdesk/internal/service"
)

// Gateway is what the processing routes need from the dispatch layer.
type Gateway interface {
	dispatch.Runner
	dispatch.Executor
}

// Deps are the collaborators behind the HTTP surface.
type Deps struct {
	DB         *sql.DB
	Catalog    service.CatalogService
	Gateway    Gateway
	Compressor Compressor
	Inspector  Inspector
	// RateLimit guards routes that spawn processes. Optional.
	RateLimit fiber.Handler
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	docs := app.Group("/documents")
	docs.Get("/", SearchDocuments(d.Catalog))
	docs.Post("/", UpsertDocument(d.Catalog))
	docs.Get("/stats", DocumentStats(d.Catalog))
	docs.Get("/:id", GetDocument(d.Catalog))
	docs.Put("/:id", UpdateDocument(d.Catalog))
	docs.Delete("/:id", DeleteDocument(d.Catalog))
	docs.Post("/:id/archive", ArchiveDocument(d.Catalog))

	app.Get("/pdf/validate", ValidatePDF(d.Inspector))
	app.Get("/pdf/version", PDFVersion(d.Inspector))
	app.Get("/pdf/security", PDFSecurity(d.Inspector))
	app.Get("/pdf/info", PDFInfo(d.Inspector))
	app.Get("/files/stats", FileStats(d.Inspector))

	var limit []fiber.Handler
	if d.RateLimit != nil {
		limit = append(limit, d.RateLimit)
	}
	limited := func(h fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, limit...), h)
	}

	app.Post("/pdf/compress", limited(CompressPDF(d.Compressor))...)
	app.Post("/dispatch", limited(Dispatch(d.Gateway))...)
	RegisterProcessingRoutes(app.Group("/pdf"), d.Gateway, limit...)
}
