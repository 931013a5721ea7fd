package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeparser/pkg/resume"
)

var errNoFiles = errors.New("at least one file is required (pdf or docx)")

// readUploads collects the multipart "files" (or single "file") field into documents.
// Anything but PDF/DOCX rejects the whole request.
func readUploads(c *fiber.Ctx, maxBytes int64) ([]resume.Document, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errNoFiles
	}
	headers := append(form.File["files"], form.File["file"]...)
	if len(headers) == 0 {
		return nil, errNoFiles
	}
	docs := make([]resume.Document, 0, len(headers))
	for _, fh := range headers {
		if resume.FormatOf(fh.Filename) == resume.FormatUnknown {
			return nil, fmt.Errorf("%s: %w", fh.Filename, resume.ErrUnsupportedFormat)
		}
		data, err := readFileHeader(fh, maxBytes)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fh.Filename, err)
		}
		docs = append(docs, resume.Document{Filename: fh.Filename, Data: data})
	}
	return docs, nil
}

func readFileHeader(fh *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, errors.New("failed to open uploaded file")
	}
	defer file.Close()
	return readAtMost(file, maxBytes)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
