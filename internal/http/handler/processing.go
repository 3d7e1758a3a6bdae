package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"docdesk/internal/compress"
	"docdesk/internal/dispatch"
)

// Compressor is the compression orchestrator.
type Compressor interface {
	Compress(ctx context.Context, input, output, quality string) (*compress.Result, error)
}

var errMissingField = errors.New("missing required field")

type mergeRequest struct {
	Inputs []string `json:"inputs"`
	Output string   `json:"output"`
}

type splitRequest struct {
	Input     string `json:"input"`
	OutputDir string `json:"output_dir"`
	Pages     []int  `json:"pages"`
}

type rotateRequest struct {
	Input     string      `json:"input"`
	Output    string      `json:"output"`
	Rotations map[int]int `json:"rotations"`
}

type pagesRequest struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Pages  []int  `json:"pages"`
}

type watermarkRequest struct {
	Input    string `json:"input"`
	Output   string `json:"output"`
	Text     string `json:"text"`
	Position string `json:"position"`
}

type passwordRequest struct {
	Input    string `json:"input"`
	Output   string `json:"output"`
	Password string `json:"password"`
}

type inputRequest struct {
	Input string `json:"input"`
}

type pageImageRequest struct {
	Input string  `json:"input"`
	Page  int     `json:"page"`
	Scale float64 `json:"scale"`
}

type convertRequest struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type toImagesRequest struct {
	Input     string `json:"input"`
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`
	DPI       int    `json:"dpi"`
}

type fromImagesRequest struct {
	Images []string `json:"images"`
	Output string   `json:"output"`
}

type ocrRequest struct {
	Input     string `json:"input"`
	Languages string `json:"languages"`
	// Pages nil means every page.
	Pages  []int  `json:"pages"`
	Format string `json:"format"`
}

type ocrImageRequest struct {
	Input     string `json:"input"`
	Languages string `json:"languages"`
}

type replaceTextRequest struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	OldText string `json:"old_text"`
	NewText string `json:"new_text"`
}

type compressRequest struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Quality string `json:"quality"`
}

type dispatchRequest struct {
	Script string   `json:"script"`
	Args   []string `json:"args"`
}

func required(values ...string) error {
	for _, v := range values {
		if v == "" {
			return errMissingField
		}
	}
	return nil
}

// operation binds a JSON request type to a client call and relays the
// script's result envelope verbatim.
func operation[T any](client *dispatch.Client, validate func(*T) error, call func(context.Context, *dispatch.Client, *T) (*dispatch.Envelope, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req T
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := validate(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_REQUEST", err.Error())
		}
		env, err := call(c.UserContext(), client, &req)
		if err != nil {
			return writeAppError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(env.Payload)
	}
}

// RegisterProcessingRoutes mounts the operation vocabulary under /pdf.
//
// Every route accepts a JSON body and answers with the backend's result
// envelope. Backend failures map to 502, missing backends to 503.
func RegisterProcessingRoutes(r fiber.Router, runner dispatch.Runner, mw ...fiber.Handler) {
	cl := dispatch.NewClient(runner)
	post := func(path string, h fiber.Handler) {
		r.Post(path, append(append([]fiber.Handler{}, mw...), h)...)
	}

	post("/merge", operation(cl,
		func(q *mergeRequest) error {
			if len(q.Inputs) < 2 {
				return errors.New("at least two inputs are required")
			}
			return required(q.Output)
		},
		func(ctx context.Context, cl *dispatch.Client, q *mergeRequest) (*dispatch.Envelope, error) {
			return cl.Merge(ctx, q.Inputs, q.Output)
		}))

	post("/split", operation(cl,
		func(q *splitRequest) error { return required(q.Input, q.OutputDir) },
		func(ctx context.Context, cl *dispatch.Client, q *splitRequest) (*dispatch.Envelope, error) {
			return cl.Split(ctx, q.Input, q.OutputDir, q.Pages)
		}))

	post("/rotate", operation(cl,
		func(q *rotateRequest) error {
			if len(q.Rotations) == 0 {
				return errors.New("rotations are required")
			}
			return required(q.Input, q.Output)
		},
		func(ctx context.Context, cl *dispatch.Client, q *rotateRequest) (*dispatch.Envelope, error) {
			return cl.Rotate(ctx, q.Input, q.Output, q.Rotations)
		}))

	post("/delete-pages", operation(cl,
		func(q *pagesRequest) error {
			if len(q.Pages) == 0 {
				return errors.New("pages are required")
			}
			return required(q.Input, q.Output)
		},
		func(ctx context.Context, cl *dispatch.Client, q *pagesRequest) (*dispatch.Envelope, error) {
			return cl.DeletePages(ctx, q.Input, q.Output, q.Pages)
		}))

	post("/reorder", operation(cl,
		func(q *pagesRequest) error {
			if len(q.Pages) == 0 {
				return errors.New("page order is required")
			}
			return required(q.Input, q.Output)
		},
		func(ctx context.Context, cl *dispatch.Client, q *pagesRequest) (*dispatch.Envelope, error) {
			return cl.Reorder(ctx, q.Input, q.Output, q.Pages)
		}))

	post("/watermark", operation(cl,
		func(q *watermarkRequest) error { return required(q.Input, q.Output, q.Text) },
		func(ctx context.Context, cl *dispatch.Client, q *watermarkRequest) (*dispatch.Envelope, error) {
			return cl.Watermark(ctx, q.Input, q.Output, q.Text, q.Position)
		}))

	post("/encrypt", operation(cl,
		func(q *passwordRequest) error { return required(q.Input, q.Output, q.Password) },
		func(ctx context.Context, cl *dispatch.Client, q *passwordRequest) (*dispatch.Envelope, error) {
			return cl.Encrypt(ctx, q.Input, q.Output, q.Password)
		}))

	post("/decrypt", operation(cl,
		func(q *passwordRequest) error { return required(q.Input, q.Output, q.Password) },
		func(ctx context.Context, cl *dispatch.Client, q *passwordRequest) (*dispatch.Envelope, error) {
			return cl.Decrypt(ctx, q.Input, q.Output, q.Password)
		}))

	post("/thumbnails", operation(cl,
		func(q *inputRequest) error { return required(q.Input) },
		func(ctx context.Context, cl *dispatch.Client, q *inputRequest) (*dispatch.Envelope, error) {
			return cl.Thumbnails(ctx, q.Input)
		}))

	post("/page-image", operation(cl,
		func(q *pageImageRequest) error {
			if q.Page < 0 {
				return errors.New("page must not be negative")
			}
			return required(q.Input)
		},
		func(ctx context.Context, cl *dispatch.Client, q *pageImageRequest) (*dispatch.Envelope, error) {
			return cl.PageImage(ctx, q.Input, q.Page, q.Scale)
		}))

	post("/to-word", operation(cl,
		func(q *convertRequest) error { return required(q.Input, q.Output) },
		func(ctx context.Context, cl *dispatch.Client, q *convertRequest) (*dispatch.Envelope, error) {
			return cl.PDFToWord(ctx, q.Input, q.Output)
		}))

	post("/to-images", operation(cl,
		func(q *toImagesRequest) error { return required(q.Input, q.OutputDir) },
		func(ctx context.Context, cl *dispatch.Client, q *toImagesRequest) (*dispatch.Envelope, error) {
			return cl.PDFToImages(ctx, q.Input, q.OutputDir, q.Format, q.DPI)
		}))

	post("/from-images", operation(cl,
		func(q *fromImagesRequest) error {
			if len(q.Images) == 0 {
				return errors.New("images are required")
			}
			return required(q.Output)
		},
		func(ctx context.Context, cl *dispatch.Client, q *fromImagesRequest) (*dispatch.Envelope, error) {
			return cl.ImagesToPDF(ctx, q.Images, q.Output)
		}))

	post("/from-word", operation(cl,
		func(q *convertRequest) error { return required(q.Input, q.Output) },
		func(ctx context.Context, cl *dispatch.Client, q *convertRequest) (*dispatch.Envelope, error) {
			return cl.WordToPDF(ctx, q.Input, q.Output)
		}))

	post("/ocr", operation(cl,
		func(q *ocrRequest) error { return required(q.Input) },
		func(ctx context.Context, cl *dispatch.Client, q *ocrRequest) (*dispatch.Envelope, error) {
			return cl.OCRPDF(ctx, q.Input, q.Languages, q.Pages, q.Format)
		}))

	post("/ocr-image", operation(cl,
		func(q *ocrImageRequest) error { return required(q.Input) },
		func(ctx context.Context, cl *dispatch.Client, q *ocrImageRequest) (*dispatch.Envelope, error) {
			return cl.OCRImage(ctx, q.Input, q.Languages)
		}))

	post("/replace-text", operation(cl,
		func(q *replaceTextRequest) error { return required(q.Input, q.Output, q.OldText) },
		func(ctx context.Context, cl *dispatch.Client, q *replaceTextRequest) (*dispatch.Envelope, error) {
			return cl.ReplaceText(ctx, q.Input, q.Output, q.OldText, q.NewText)
		}))
}

// CompressPDF godoc
// @Summary Compress a PDF
// @Description Tries the native optimizer first and falls back to the script backend once.
// @Tags pdf
// @Accept json
// @Produce json
// @Param request body compressRequest true "Compression request"
// @Success 200 {object} compress.Result
// @Failure 404 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /pdf/compress [post]
func CompressPDF(cmp Compressor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req compressRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := required(req.Input, req.Output); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_REQUEST", err.Error())
		}
		if req.Quality == "" {
			req.Quality = "medium"
		}
		res, err := cmp.Compress(c.UserContext(), req.Input, req.Output, req.Quality)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(res)
	}
}

// Dispatch godoc
// @Summary Run a processing script
// @Description Runs one of the shipped scripts with raw arguments and returns its stdout untouched.
// @Tags pdf
// @Accept json
// @Produce json
// @Param request body dispatchRequest true "Script and arguments"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /dispatch [post]
func Dispatch(exec dispatch.Executor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dispatchRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if !dispatch.KnownScript(req.Script) {
			return writeError(c, fiber.StatusBadRequest, "UNKNOWN_SCRIPT", "unknown script")
		}
		out, err := exec.Exec(c.UserContext(), req.Script, req.Args)
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(fiber.Map{"output": out})
	}
}
