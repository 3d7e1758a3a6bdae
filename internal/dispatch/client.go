package dispatch

import (
	"context"
	"encoding/json"
	"os"
	"strconv"

	"docdesk/internal/apperr"
)

// Client exposes the operation vocabulary with typed parameters.
// Structured parameters are passed to the scripts as JSON arguments.
type Client struct {
	r Runner
}

func NewClient(r Runner) *Client {
	return &Client{r: r}
}

func jsonArg(op string, v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", apperr.Serialization(op, err)
	}
	return string(b), nil
}

func (c *Client) Merge(ctx context.Context, inputs []string, output string) (*Envelope, error) {
	paths, err := jsonArg("dispatch.merge", inputs)
	if err != nil {
		return nil, err
	}
	return c.r.Run(ctx, OpMerge, paths, output)
}

// Split writes one file per requested page into outputDir.
func (c *Client) Split(ctx context.Context, input, outputDir string, pages []int) (*Envelope, error) {
	p, err := jsonArg("dispatch.split", pages)
	if err != nil {
		return nil, err
	}
	return c.r.Run(ctx, OpSplit, input, outputDir, p)
}

// Rotate applies per-page rotations keyed by page number, in degrees.
func (c *Client) Rotate(ctx context.Context, input, output string, rotations map[int]int) (*Envelope, error) {
	r, err := jsonArg("dispatch.rotate", rotations)
	if err != nil {
		return nil, err
	}
	return c.r.Run(ctx, OpRotate, input, output, r)
}

func (c *Client) DeletePages(ctx context.Context, input, output string, pages []int) (*Envelope, error) {
	p, err := jsonArg("dispatch.delete_pages", pages)
	if err != nil {
		return nil, err
	}
	return c.r.Run(ctx, OpDeletePages, input, output, p)
}

func (c *Client) Reorder(ctx context.Context, input, output string, order []int) (*Envelope, error) {
	o, err := jsonArg("dispatch.reorder", order)
	if err != nil {
		return nil, err
	}
	return c.r.Run(ctx, OpReorder, input, output, o)
}

func (c *Client) Watermark(ctx context.Context, input, output, text, position string) (*Envelope, error) {
	if position == "" {
		position = "center"
	}
	return c.r.Run(ctx, OpWatermark, input, output, text, position)
}

// Compress runs the script based compressor with a semantic quality (low, medium, high).
func (c *Client) Compress(ctx context.Context, input, output, quality string) (*Envelope, error) {
	return c.r.Run(ctx, OpCompress, input, output, quality)
}

func (c *Client) Encrypt(ctx context.Context, input, output, password string) (*Envelope, error) {
	return c.r.Run(ctx, OpEncrypt, input, output, password)
}

func (c *Client) Decrypt(ctx context.Context, input, output, password string) (*Envelope, error) {
	return c.r.Run(ctx, OpDecrypt, input, output, password)
}

func (c *Client) Thumbnails(ctx context.Context, input string) (*Envelope, error) {
	return c.r.Run(ctx, OpThumbnails, input)
}

func (c *Client) PageImage(ctx context.Context, input string, page int, scale float64) (*Envelope, error) {
	if scale <= 0 {
		scale = 1
	}
	return c.r.Run(ctx, OpPageImage, input, strconv.Itoa(page), strconv.FormatFloat(scale, 'f', -1, 64))
}

func (c *Client) PDFToWord(ctx context.Context, input, output string) (*Envelope, error) {
	return c.r.Run(ctx, OpPDFToWord, input, output)
}

func (c *Client) PDFToImages(ctx context.Context, input, outputDir, format string, dpi int) (*Envelope, error) {
	if format == "" {
		format = "png"
	}
	if dpi <= 0 {
		dpi = 200
	}
	return c.r.Run(ctx, OpPDFToImages, input, outputDir, format, strconv.Itoa(dpi))
}

func (c *Client) ImagesToPDF(ctx context.Context, images []string, output string) (*Envelope, error) {
	paths, err := jsonArg("dispatch.images_to_pdf", images)
	if err != nil {
		return nil, err
	}
	return c.r.Run(ctx, OpImagesToPDF, paths, output)
}

func (c *Client) WordToPDF(ctx context.Context, input, output string) (*Envelope, error) {
	return c.r.Run(ctx, OpWordToPDF, input, output)
}

// OCRPDF recognizes text in the given pages, or in every page when pages is nil.
func (c *Client) OCRPDF(ctx context.Context, input, languages string, pages []int, format string) (*Envelope, error) {
	if languages == "" {
		languages = "eng+ind"
	}
	if format == "" {
		format = "txt"
	}
	p := "null"
	if pages != nil {
		var err error
		if p, err = jsonArg("dispatch.ocr_pdf", pages); err != nil {
			return nil, err
		}
	}
	return c.r.Run(ctx, OpOCRPDF, input, languages, p, format)
}

func (c *Client) OCRImage(ctx context.Context, input, languages string) (*Envelope, error) {
	if languages == "" {
		languages = "eng+ind"
	}
	return c.r.Run(ctx, OpOCRImage, input, languages)
}

// ReplaceText swaps oldText for newText. The texts travel through temporary
// files because they can exceed command line limits; the script removes them.
func (c *Client) ReplaceText(ctx context.Context, input, output, oldText, newText string) (*Envelope, error) {
	oldPath, err := writeTemp("docdesk-old-*.txt", oldText)
	if err != nil {
		return nil, err
	}
	defer os.Remove(oldPath)

	newPath, err := writeTemp("docdesk-new-*.txt", newText)
	if err != nil {
		return nil, err
	}
	defer os.Remove(newPath)

	return c.r.Run(ctx, OpReplaceText, input, output, oldPath, newPath)
}

func writeTemp(pattern, content string) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
