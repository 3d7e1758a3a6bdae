// Package docs registers the OpenAPI description served under /swagger.
// Every route registered by handler.RegisterRoutes has a path entry here.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/documents": {
            "get": {
                "description": "Case-insensitive substring match on title, file name and tags, most recently updated first.",
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Search the catalog",
                "parameters": [
                    {"type": "string", "description": "Text to match", "name": "q", "in": "query"},
                    {"type": "string", "description": "Exact document type", "name": "type", "in": "query"},
                    {"type": "integer", "description": "Maximum results", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Results to skip", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.documentView"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "post": {
                "description": "Inserts a document or updates the one with the same file path.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Save a document",
                "parameters": [
                    {"description": "Document", "name": "document", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.documentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/documents/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Catalog totals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Stats"}}
                }
            }
        },
        "/documents/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Get a document",
                "parameters": [{"type": "integer", "description": "Document ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.documentView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "tags": ["documents"],
                "summary": "Update a document",
                "parameters": [
                    {"type": "integer", "description": "Document ID", "name": "id", "in": "path", "required": true},
                    {"description": "Document", "name": "document", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.documentRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "delete": {
                "tags": ["documents"],
                "summary": "Delete a document",
                "parameters": [{"type": "integer", "description": "Document ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/documents/{id}/archive": {
            "post": {
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Archive a document's file to object storage",
                "parameters": [{"type": "integer", "description": "Document ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ArchiveResult"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/compress": {
            "post": {
                "description": "Tries the native optimizer first and falls back to the script backend once.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pdf"],
                "summary": "Compress a PDF",
                "parameters": [
                    {"description": "Compression request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.compressRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/compress.Result"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/dispatch": {
            "post": {
                "description": "Runs one of the shipped scripts with raw arguments and returns its stdout untouched.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pdf"],
                "summary": "Run a processing script",
                "parameters": [
                    {"description": "Script and arguments", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.dispatchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/merge": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Merge PDFs into one",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.mergeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/split": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Split a PDF at page boundaries",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.splitRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/rotate": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Rotate pages",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.rotateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/delete-pages": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Delete pages",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.pagesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/reorder": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Reorder pages",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.pagesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/watermark": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Stamp a text watermark",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.watermarkRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/encrypt": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Password-protect a PDF",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.passwordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/decrypt": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Remove a PDF password",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.passwordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/thumbnails": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Render page thumbnails",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.inputRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/page-image": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Render one page as an image",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.pageImageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/to-word": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Convert a PDF to Word",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.convertRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/to-images": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Export pages as image files",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.toImagesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/from-images": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Build a PDF from images",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.fromImagesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/from-word": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Convert a Word document to PDF",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.convertRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/ocr": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Recognize text in a PDF",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ocrRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/ocr-image": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Recognize text in an image",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ocrImageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/replace-text": {
            "post": {
                "description": "Runs the processing backend and relays its result envelope.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["processing"],
                "summary": "Replace text in a PDF",
                "parameters": [
                    {"description": "Request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.replaceTextRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inspect"],
                "summary": "Page count and file name",
                "parameters": [{"type": "string", "description": "File path", "name": "path", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.PDFInfo"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/validate": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inspect"],
                "summary": "Check the PDF header",
                "parameters": [{"type": "string", "description": "File path", "name": "path", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/version": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inspect"],
                "summary": "Read the declared PDF version",
                "parameters": [{"type": "string", "description": "File path", "name": "path", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/pdf/security": {
            "get": {
                "description": "Heuristic over the first 8 KiB. Permissions are not decoded.",
                "produces": ["application/json"],
                "tags": ["inspect"],
                "summary": "Report encryption status",
                "parameters": [{"type": "string", "description": "File path", "name": "path", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SecurityInfo"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/files/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inspect"],
                "summary": "Size and kind of a path",
                "parameters": [{"type": "string", "description": "File path", "name": "path", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.FileStats"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Pings the catalog database.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "compress.Result": {
            "type": "object",
            "properties": {
                "backend": {"type": "string"},
                "compressed_size": {"type": "integer"},
                "message": {"type": "string"},
                "original_size": {"type": "integer"},
                "ratio": {"type": "number"}
            }
        },
        "handler.compressRequest": {
            "type": "object",
            "properties": {
                "input": {"type": "string"},
                "output": {"type": "string"},
                "quality": {"type": "string"}
            }
        },
        "handler.dispatchRequest": {
            "type": "object",
            "properties": {
                "args": {"type": "array", "items": {"type": "string"}},
                "script": {"type": "string"}
            }
        },
        "handler.convertRequest": {
            "type": "object",
            "properties": {
                "input": {"type": "string"},
                "output": {"type": "string"}
            }
        },
        "handler.fromImagesRequest": {
            "type": "object",
            "properties": {
                "images": {"type": "array", "items": {"type": "string"}},
                "output": {"type": "string"}
            }
        },
        "handler.inputRequest": {
            "type": "object",
            "properties": {
                "input": {"type": "string"}
            }
        },
        "handler.mergeRequest": {
            "type": "object",
            "properties": {
                "inputs": {"type": "array", "items": {"type": "string"}},
                "output": {"type": "string"}
            }
        },
        "handler.ocrImageRequest": {
            "type": "object",
            "properties": {
                "input": {"type": "string"},
                "languages": {"type": "string"}
            }
        },
        "handler.ocrRequest": {
            "type": "object",
            "properties": {
                "format": {"type": "string"},
                "input": {"type": "string"},
                "languages": {"type": "string"},
                "pages": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "handler.pageImageRequest": {
            "type": "object",
            "properties": {
                "input": {"type": "string"},
                "page": {"type": "integer"},
                "scale": {"type": "number"}
            }
        },
        "handler.pagesRequest": {
            "type": "object",
            "properties": {
                "input": {"type": "string"},
                "output": {"type": "string"},
                "pages": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "handler.passwordRequest": {
            "type": "object",
            "properties": {
                "input": {"type": "string"},
                "output": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.replaceTextRequest": {
            "type": "object",
            "properties": {
                "input": {"type": "string"},
                "new_text": {"type": "string"},
                "old_text": {"type": "string"},
                "output": {"type": "string"}
            }
        },
        "handler.rotateRequest": {
            "type": "object",
            "properties": {
                "input": {"type": "string"},
                "output": {"type": "string"},
                "rotations": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "handler.splitRequest": {
            "type": "object",
            "properties": {
                "input": {"type": "string"},
                "output_dir": {"type": "string"},
                "pages": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "handler.toImagesRequest": {
            "type": "object",
            "properties": {
                "dpi": {"type": "integer"},
                "format": {"type": "string"},
                "input": {"type": "string"},
                "output_dir": {"type": "string"}
            }
        },
        "handler.watermarkRequest": {
            "type": "object",
            "properties": {
                "input": {"type": "string"},
                "output": {"type": "string"},
                "position": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "handler.documentRequest": {
            "type": "object",
            "properties": {
                "archive_serial": {"type": "string"},
                "correspondent": {"type": "string"},
                "date_created": {"type": "string"},
                "document_type": {"type": "string"},
                "file_name": {"type": "string"},
                "file_path": {"type": "string"},
                "file_size": {"type": "integer"},
                "notes": {"type": "string"},
                "page_count": {"type": "integer"},
                "storage_path": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"}
            }
        },
        "handler.documentView": {
            "type": "object",
            "properties": {
                "archive_serial": {"type": "string"},
                "correspondent": {"type": "string"},
                "created_at": {"type": "string"},
                "date_created": {"type": "string"},
                "document_type": {"type": "string"},
                "file_name": {"type": "string"},
                "file_path": {"type": "string"},
                "file_size": {"type": "integer"},
                "id": {"type": "integer"},
                "notes": {"type": "string"},
                "page_count": {"type": "integer"},
                "storage_path": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "detail": {"type": "string"},
                "exit_code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.errorEnvelope"},
                "request_id": {"type": "string"}
            }
        },
        "model.FileStats": {
            "type": "object",
            "properties": {
                "is_dir": {"type": "boolean"},
                "is_file": {"type": "boolean"},
                "size": {"type": "integer"}
            }
        },
        "model.PDFInfo": {
            "type": "object",
            "properties": {
                "file_name": {"type": "string"},
                "page_count": {"type": "integer"}
            }
        },
        "model.Permissions": {
            "type": "object",
            "properties": {
                "can_annotate": {"type": "boolean"},
                "can_copy": {"type": "boolean"},
                "can_modify": {"type": "boolean"},
                "can_print": {"type": "boolean"}
            }
        },
        "model.SecurityInfo": {
            "type": "object",
            "properties": {
                "has_owner_password": {"type": "boolean"},
                "has_user_password": {"type": "boolean"},
                "is_encrypted": {"type": "boolean"},
                "permissions": {"$ref": "#/definitions/model.Permissions"}
            }
        },
        "model.Stats": {
            "type": "object",
            "properties": {
                "total_documents": {"type": "integer"},
                "total_size_bytes": {"type": "integer"}
            }
        },
        "service.ArchiveResult": {
            "type": "object",
            "properties": {
                "etag": {"type": "string"},
                "key": {"type": "string"},
                "size": {"type": "integer"},
                "url": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Document Desk API",
	Description:      "Local sidecar for the document catalog and PDF processing backends.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
