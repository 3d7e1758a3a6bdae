package dispatch

import (
	"context"
	"errors"
	"sort"

	"docdesk/internal/apperr"
)

// Script identities shipped with the application.
const (
	ScriptEditor     = "pdf_editor.py"
	ScriptConverter  = "pdf_converter.py"
	ScriptOCR        = "ocr_processor.py"
	ScriptTextEditor = "pdf_text_editor.py"
)

// Operation binds a logical operation to the script and sub-command that implement it.
type Operation struct {
	Name    string
	Script  string
	Command string
}

var (
	OpMerge       = Operation{Name: "merge", Script: ScriptEditor, Command: "merge"}
	OpSplit       = Operation{Name: "split", Script: ScriptEditor, Command: "split"}
	OpRotate      = Operation{Name: "rotate", Script: ScriptEditor, Command: "rotate"}
	OpDeletePages = Operation{Name: "delete_pages", Script: ScriptEditor, Command: "delete"}
	OpReorder     = Operation{Name: "reorder", Script: ScriptEditor, Command: "reorder"}
	OpWatermark   = Operation{Name: "watermark", Script: ScriptEditor, Command: "watermark"}
	OpCompress    = Operation{Name: "compress", Script: ScriptEditor, Command: "compress"}
	OpEncrypt     = Operation{Name: "encrypt", Script: ScriptEditor, Command: "encrypt"}
	OpDecrypt     = Operation{Name: "decrypt", Script: ScriptEditor, Command: "decrypt"}

	OpThumbnails  = Operation{Name: "thumbnails", Script: ScriptConverter, Command: "get_thumbnails"}
	OpPageImage   = Operation{Name: "page_image", Script: ScriptConverter, Command: "get_page_image"}
	OpPDFToWord   = Operation{Name: "pdf_to_word", Script: ScriptConverter, Command: "pdf_to_word"}
	OpPDFToImages = Operation{Name: "pdf_to_images", Script: ScriptConverter, Command: "pdf_to_images"}
	OpImagesToPDF = Operation{Name: "images_to_pdf", Script: ScriptConverter, Command: "images_to_pdf"}
	OpWordToPDF   = Operation{Name: "word_to_pdf", Script: ScriptConverter, Command: "word_to_pdf"}

	OpOCRPDF   = Operation{Name: "ocr_pdf", Script: ScriptOCR, Command: "ocr_pdf"}
	OpOCRImage = Operation{Name: "ocr_image", Script: ScriptOCR, Command: "ocr_image"}

	OpReplaceText = Operation{Name: "replace_text", Script: ScriptTextEditor, Command: "smart_replace"}
)

var vocabulary = []Operation{
	OpMerge, OpSplit, OpRotate, OpDeletePages, OpReorder, OpWatermark, OpCompress, OpEncrypt, OpDecrypt,
	OpThumbnails, OpPageImage, OpPDFToWord, OpPDFToImages, OpImagesToPDF, OpWordToPDF,
	OpOCRPDF, OpOCRImage,
	OpReplaceText,
}

// Operations returns the fixed operation vocabulary.
func Operations() []Operation {
	return append([]Operation(nil), vocabulary...)
}

// Scripts returns the distinct script identities, sorted.
func Scripts() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, op := range vocabulary {
		if _, ok := seen[op.Script]; !ok {
			seen[op.Script] = struct{}{}
			out = append(out, op.Script)
		}
	}
	sort.Strings(out)
	return out
}

// KnownScript reports whether name is one of the shipped scripts.
func KnownScript(name string) bool {
	for _, op := range vocabulary {
		if op.Script == name {
			return true
		}
	}
	return false
}

// Runner executes vocabulary operations and decodes their envelopes.
type Runner interface {
	Run(ctx context.Context, op Operation, args ...string) (*Envelope, error)
}

// Run executes op and parses its result envelope. Scripts that exit nonzero
// after printing an error envelope report the envelope message instead of
// their (usually empty) stderr.
func (g *Gateway) Run(ctx context.Context, op Operation, args ...string) (*Envelope, error) {
	if op.Script == "" || op.Command == "" {
		return nil, errors.New("dispatch: incomplete operation")
	}
	name := "dispatch." + op.Name

	h, err := g.Prepare(ctx, op.Script, append([]string{op.Command}, args...))
	if err != nil {
		return nil, err
	}
	if err := h.Start(); err != nil {
		return nil, err
	}
	out, err := h.Wait()
	if err != nil {
		var ae *apperr.Error
		if h.State() == StateFailedExit && errors.As(err, &ae) && ae.Detail == "" {
			if _, envErr := ParseEnvelope(name, h.Stdout()); apperr.KindOf(envErr) == apperr.KindExecutionFailure {
				var ee *apperr.Error
				errors.As(envErr, &ee)
				ee.ExitCode = ae.ExitCode
				return nil, ee
			}
		}
		return nil, err
	}
	return ParseEnvelope(name, out)
}
