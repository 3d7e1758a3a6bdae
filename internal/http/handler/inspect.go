package handler

import (
	"github.com/gofiber/fiber/v2"

	"docdesk/internal/model"
)

// Inspector answers header-level questions about files.
type Inspector interface {
	Validate(path string) error
	Version(path string) (string, error)
	SecurityInfo(path string) (model.SecurityInfo, error)
	FileStats(path string) (model.FileStats, error)
	Info(path string) (model.PDFInfo, error)
}

func pathQuery(c *fiber.Ctx) (string, bool) {
	p := c.Query("path")
	return p, p != ""
}

// ValidatePDF godoc
// @Summary Check the PDF header
// @Tags inspect
// @Produce json
// @Param path query string true "File path"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /pdf/validate [get]
func ValidatePDF(in Inspector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := pathQuery(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "PATH_REQUIRED", "path is required")
		}
		if err := in.Validate(p); err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(fiber.Map{"valid": true})
	}
}

// PDFVersion godoc
// @Summary Read the declared PDF version
// @Tags inspect
// @Produce json
// @Param path query string true "File path"
// @Success 200 {object} map[string]string
// @Failure 422 {object} errorPayload
// @Router /pdf/version [get]
func PDFVersion(in Inspector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := pathQuery(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "PATH_REQUIRED", "path is required")
		}
		v, err := in.Version(p)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(fiber.Map{"version": v})
	}
}

// PDFSecurity godoc
// @Summary Report encryption status
// @Description Heuristic over the first 8 KiB. Permissions are not decoded.
// @Tags inspect
// @Produce json
// @Param path query string true "File path"
// @Success 200 {object} model.SecurityInfo
// @Failure 404 {object} errorPayload
// @Router /pdf/security [get]
func PDFSecurity(in Inspector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := pathQuery(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "PATH_REQUIRED", "path is required")
		}
		info, err := in.SecurityInfo(p)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(info)
	}
}

// PDFInfo godoc
// @Summary Page count and file name
// @Tags inspect
// @Produce json
// @Param path query string true "File path"
// @Success 200 {object} model.PDFInfo
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /pdf/info [get]
func PDFInfo(in Inspector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := pathQuery(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "PATH_REQUIRED", "path is required")
		}
		info, err := in.Info(p)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(info)
	}
}

// FileStats godoc
// @Summary Size and kind of a path
// @Tags inspect
// @Produce json
// @Param path query string true "File path"
// @Success 200 {object} model.FileStats
// @Failure 404 {object} errorPayload
// @Router /files/stats [get]
func FileStats(in Inspector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := pathQuery(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "PATH_REQUIRED", "path is required")
		}
		st, err := in.FileStats(p)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(st)
	}
}
