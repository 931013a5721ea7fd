package resume

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	pdf "github.com/ledongthuc/pdf"
)

// Format is the document type, decided by file extension.
type Format string

const (
	FormatUnknown Format = ""
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
)

var (
	// ErrEmptyPage marks a PDF page with no extractable text (strict mode only).
	ErrEmptyPage = errors.New("page has no extractable text")
	// ErrUnsupportedFormat is returned by upload validation for anything but PDF/DOCX.
	ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")
)

// ExtractionError reports a document (and, for PDFs, a page) that could not be read.
type ExtractionError struct {
	File string
	Page int
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("extract %s: page %d: %v", e.File, e.Page, e.Err)
	}
	return fmt.Sprintf("extract %s: %v", e.File, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ExtractOptions tunes text extraction.
type ExtractOptions struct {
	// StrictPages fails a PDF whose page yields no text instead of treating it as empty.
	StrictPages bool
}

// FormatOf detects the format from the file extension.
func FormatOf(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	default:
		return FormatUnknown
	}
}

// ExtractText extracts plain text from supported resume formats.
// Unsupported formats yield an empty string and no error.
func ExtractText(filename string, data []byte, opts ExtractOptions) (string, error) {
	switch FormatOf(filename) {
	case FormatPDF:
		return extractTextFromPDF(filename, data, opts)
	case FormatDOCX:
		return extractTextFromDocx(filename, data)
	default:
		return "", nil
	}
}

func extractTextFromPDF(filename string, data []byte, opts ExtractOptions) (text string, err error) {
	page := 0
	// the pdf package panics on some malformed content streams
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{File: filename, Page: page, Err: fmt.Errorf("malformed pdf: %v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{File: filename, Err: err}
	}
	var buf strings.Builder
	for page = 1; page <= r.NumPage(); page++ {
		p := r.Page(page)
		pageText := ""
		if !p.V.IsNull() {
			pageText, err = p.GetPlainText(nil)
			if err != nil {
				return "", &ExtractionError{File: filename, Page: page, Err: err}
			}
		}
		if opts.StrictPages && strings.TrimSpace(pageText) == "" {
			return "", &ExtractionError{File: filename, Page: page, Err: ErrEmptyPage}
		}
		buf.WriteString(pageText)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

func extractTextFromDocx(filename string, data []byte) (string, error) {
	body, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{File: filename, Err: err}
	}
	return body, nil
}
