package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"docdesk/docs"
	"docdesk/internal/apperr"
	"docdesk/internal/model"
	"docdesk/internal/service"
	serviceMocks "docdesk/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("database is locked"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSearchDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Get("/documents", SearchDocuments(mockSvc))

	t.Run("success with filters", func(t *testing.T) {
		mockSvc.On("Search", mock.Anything, mock.MatchedBy(func(p service.SearchParams) bool {
			return p.Text != nil && *p.Text == "invoice" &&
				p.DocumentType != nil && *p.DocumentType == "Receipt" &&
				p.Limit != nil && *p.Limit == 2 &&
				p.Offset != nil && *p.Offset == 4
		})).Return([]model.Document{{ID: 9, Title: "Invoice 9", Tags: `["tax"]`}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/documents?q=invoice&type=Receipt&limit=2&offset=4", nil)
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []documentView
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.Len(t, result, 1)
		assert.Equal(t, int64(9), result[0].ID)
		assert.Equal(t, []string{"tax"}, result[0].Tags)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no filters", func(t *testing.T) {
		mockSvc.On("Search", mock.Anything, service.SearchParams{}).Return([]model.Document{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []documentView
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Empty(t, result)
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents?limit=abc", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("negative offset rejected by service", func(t *testing.T) {
		mockSvc.On("Search", mock.Anything, mock.Anything).
			Return(nil, apperr.ConstraintViolation("catalog.search", "offset must not be negative")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents?offset=-1", nil))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "CONSTRAINT_VIOLATION", decodeError(t, resp).Error.Code)
	})
}

func TestUpsertDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Post("/documents", UpsertDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Upsert", mock.Anything, mock.MatchedBy(func(d *model.Document) bool {
			return d.FilePath == "/docs/a.pdf" && d.Tags == `["a","b"]`
		})).Return(int64(12), nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/documents", map[string]any{
			"title":     "A",
			"file_path": "/docs/a.pdf",
			"file_name": "a.pdf",
			"tags":      []string{"a", "b"},
		}))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]int64
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, int64(12), body["id"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/documents", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("duplicate path constraint", func(t *testing.T) {
		mockSvc.On("Upsert", mock.Anything, mock.Anything).
			Return(int64(0), apperr.ConstraintViolation("catalog.upsert", "file path must be absolute")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/documents", map[string]any{"title": "A", "file_path": "a.pdf", "file_name": "a.pdf"}))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestGetDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Get("/documents/:id", GetDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(5)).Return(&model.Document{ID: 5, FileName: "test.pdf", Tags: "[]"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/5", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result documentView
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, int64(5), result.ID)
		assert.Equal(t, []string{}, result.Tags)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(404)).Return(nil, apperr.NotFound("catalog.get", "document 404 not found")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/404", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		for _, id := range []string{"abc", "0", "-3"} {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+id, nil))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, id)
			assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
		}
	})

	t.Run("service error is not leaked", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(7)).Return(nil, errors.New("disk I/O error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/7", nil))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "disk")
	})
}

func TestUpdateDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Put("/documents/:id", UpdateDocument(mockSvc))

	body := map[string]any{"title": "B", "file_path": "/docs/b.pdf", "file_name": "b.pdf"}

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, int64(3), mock.Anything).Return(nil).Once()
		resp, _ := app.Test(jsonRequest(http.MethodPut, "/documents/3", body))
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("missing id", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, int64(99), mock.Anything).Return(apperr.NotFound("catalog.update", "document 99 not found")).Once()
		resp, _ := app.Test(jsonRequest(http.MethodPut, "/documents/99", body))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
	mockSvc.AssertExpectations(t)
}

func TestDeleteDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Delete("/documents/:id", DeleteDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/documents/1", nil))
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(2)).Return(apperr.NotFound("catalog.delete", "document 2 not found")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/documents/2", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestDocumentStatsAndArchive(t *testing.T) {
	mockSvc := new(serviceMocks.MockCatalogService)
	app := fiber.New()
	app.Get("/documents/stats", DocumentStats(mockSvc))
	app.Post("/documents/:id/archive", ArchiveDocument(mockSvc))

	mockSvc.On("Stats", mock.Anything).Return(model.Stats{TotalDocuments: 3, TotalSizeBytes: 300}, nil).Once()
	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/stats", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var st model.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, model.Stats{TotalDocuments: 3, TotalSizeBytes: 300}, st)

	mockSvc.On("Archive", mock.Anything, int64(4)).
		Return(nil, apperr.ToolUnavailable("catalog.archive", nil, "object storage is not configured")).Once()
	resp, _ = app.Test(httptest.NewRequest(http.MethodPost, "/documents/4/archive", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "TOOL_UNAVAILABLE", decodeError(t, resp).Error.Code)

	mockSvc.On("Archive", mock.Anything, int64(5)).
		Return(&service.ArchiveResult{Key: "Default/5/a.pdf", URL: "http://minio/a"}, nil).Once()
	resp, _ = app.Test(httptest.NewRequest(http.MethodPost, "/documents/5/archive", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	RegisterRoutes(app, Deps{
		Catalog:   new(serviceMocks.MockCatalogService),
		Gateway:   &fakeGateway{},
		Inspector: &fakeInspector{},
	})

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("health without database", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestRoutesAreDocumented(t *testing.T) {
	app := fiber.New()
	RegisterRoutes(app, Deps{
		Catalog:   new(serviceMocks.MockCatalogService),
		Gateway:   &fakeGateway{},
		Inspector: &fakeInspector{},
	})

	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)
	var spec struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &spec))

	param := regexp.MustCompile(`:(\w+)`)
	seen := 0
	for _, r := range app.GetRoutes(true) {
		switch r.Method {
		case fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete:
		default:
			continue
		}
		p := r.Path
		if len(p) > 1 {
			p = strings.TrimSuffix(p, "/")
		}
		p = param.ReplaceAllString(p, "{$1}")

		ops, ok := spec.Paths[p]
		if !assert.Truef(t, ok, "%s %s has no path entry", r.Method, p) {
			continue
		}
		_, ok = ops[strings.ToLower(r.Method)]
		assert.Truef(t, ok, "%s %s has no operation entry", r.Method, p)
		seen++
	}
	assert.GreaterOrEqual(t, seen, 30)
}

func TestErrorHandler_AppErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return apperr.InvalidFormat("inspect.validate", "missing PDF header")
	})

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "INVALID_FORMAT", decodeError(t, resp).Error.Code)
}

func TestWriteAppError_StatusMap(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{apperr.NotFound("op", "x"), http.StatusNotFound, "NOT_FOUND"},
		{apperr.InvalidFormat("op", "x"), http.StatusUnprocessableEntity, "INVALID_FORMAT"},
		{apperr.ToolUnavailable("op", nil, "x"), http.StatusServiceUnavailable, "TOOL_UNAVAILABLE"},
		{apperr.ExecutionFailure("op", 2, "stderr text", nil), http.StatusBadGateway, "EXECUTION_FAILURE"},
		{apperr.Serialization("op", errors.New("x")), http.StatusBadRequest, "SERIALIZATION_ERROR"},
		{apperr.ConstraintViolation("op", "x"), http.StatusConflict, "CONSTRAINT_VIOLATION"},
		{context.DeadlineExceeded, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return writeAppError(c, tt.err) })

			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.status, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, tt.code, body.Error.Code)
			if tt.code == "EXECUTION_FAILURE" {
				assert.Equal(t, "stderr text", body.Error.Detail)
				require.NotNil(t, body.Error.ExitCode)
				assert.Equal(t, 2, *body.Error.ExitCode)
			}
		})
	}
}
