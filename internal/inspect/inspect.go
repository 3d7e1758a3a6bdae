// Package inspect answers cheap questions about a PDF by scanning its bytes.
// It never builds an object model of the document.
package inspect

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"docdesk/internal/apperr"
	"docdesk/internal/model"
)

const (
	headerSize = 8
	scanSize   = 8192
	magic      = "%PDF-"
)

var encryptMarker = []byte("/Encrypt")

// Page objects are "/Type /Page" followed by a delimiter, which rules out
// "/Type /Pages". Both patterns stay well under pageCarry bytes long.
var (
	pageMarker  = regexp.MustCompile(`/Type\s{0,8}/Page[\s/>\[\]<(%]`)
	countMarker = regexp.MustCompile(`/Count\s{0,8}(\d{1,9})[\s/>\]]`)
)

const (
	pageChunk = 64 << 10
	pageCarry = 64
)

// Inspector reads bounded prefixes of files.
type Inspector struct{}

func New() *Inspector { return &Inspector{} }

func open(op, path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.NotFound(op, "file not found: %s", path)
		}
		return nil, fmt.Errorf("%s: open: %w", op, err)
	}
	return f, nil
}

func header(op, path string) ([]byte, error) {
	f, err := open(op, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(f, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, apperr.InvalidFormat(op, "file shorter than PDF header")
		}
		return nil, fmt.Errorf("%s: read header: %w", op, err)
	}
	return buf, nil
}

// Validate checks the PDF magic in the first eight bytes.
func (i *Inspector) Validate(path string) error {
	h, err := header("inspect.validate", path)
	if err != nil {
		return err
	}
	if !bytes.HasPrefix(h, []byte(magic)) {
		return apperr.InvalidFormat("inspect.validate", "missing PDF header")
	}
	return nil
}

// Version returns the version declared in the header, e.g. "1.7".
func (i *Inspector) Version(path string) (string, error) {
	h, err := header("inspect.version", path)
	if err != nil {
		return "", err
	}
	v, ok := bytes.CutPrefix(h, []byte(magic))
	if !ok {
		return "", apperr.InvalidFormat("inspect.version", "could not determine PDF version")
	}
	return string(bytes.TrimSpace(v)), nil
}

// SecurityInfo looks for an /Encrypt entry in the first 8 KiB. Documents whose
// trailer sits further in are reported as unencrypted. Permissions are not
// decoded and always come back open.
func (i *Inspector) SecurityInfo(path string) (model.SecurityInfo, error) {
	const op = "inspect.security"

	f, err := open(op, path)
	if err != nil {
		return model.SecurityInfo{}, err
	}
	defer f.Close()

	buf := make([]byte, scanSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return model.SecurityInfo{}, fmt.Errorf("%s: read: %w", op, err)
	}

	enc := bytes.Contains(buf[:n], encryptMarker)
	return model.SecurityInfo{
		IsEncrypted:      enc,
		HasUserPassword:  enc,
		HasOwnerPassword: enc,
		Permissions:      model.OpenPermissions(),
	}, nil
}

// FileStats reports size and kind of path.
func (i *Inspector) FileStats(path string) (model.FileStats, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.FileStats{}, apperr.NotFound("inspect.stats", "path not found: %s", path)
		}
		return model.FileStats{}, fmt.Errorf("inspect.stats: %w", err)
	}
	return model.FileStats{
		Size:   fi.Size(),
		IsFile: fi.Mode().IsRegular(),
		IsDir:  fi.IsDir(),
	}, nil
}

// Info counts page objects in the file. When every page sits in a compressed
// object stream no marker is visible and the largest /Count wins instead.
func (i *Inspector) Info(path string) (model.PDFInfo, error) {
	const op = "inspect.info"

	if err := i.Validate(path); err != nil {
		return model.PDFInfo{}, err
	}
	f, err := open(op, path)
	if err != nil {
		return model.PDFInfo{}, err
	}
	defer f.Close()

	pages, maxCount, err := scanPages(f)
	if err != nil {
		return model.PDFInfo{}, fmt.Errorf("%s: read: %w", op, err)
	}
	if pages == 0 {
		pages = maxCount
	}
	return model.PDFInfo{FileName: filepath.Base(path), PageCount: pages}, nil
}

// scanPages reads r in chunks, carrying a short tail over so markers split
// across a chunk boundary are still seen. A match ending inside the carried
// tail was already counted with the previous chunk.
func scanPages(r io.Reader) (pages, maxCount int, err error) {
	buf := make([]byte, 0, pageCarry+pageChunk)
	chunk := make([]byte, pageChunk)
	carried := 0

	for {
		n, rerr := io.ReadFull(r, chunk)
		buf = append(buf, chunk[:n]...)

		for _, m := range pageMarker.FindAllIndex(buf, -1) {
			if m[1] > carried {
				pages++
			}
		}
		for _, m := range countMarker.FindAllSubmatchIndex(buf, -1) {
			if m[1] <= carried {
				continue
			}
			if c, cerr := strconv.Atoi(string(buf[m[2]:m[3]])); cerr == nil && c > maxCount {
				maxCount = c
			}
		}

		if rerr != nil {
			if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
				return pages, maxCount, nil
			}
			return 0, 0, rerr
		}

		tail := buf[max(0, len(buf)-pageCarry):]
		carried = copy(buf[:cap(buf)], tail)
		buf = buf[:carried]
	}
}
