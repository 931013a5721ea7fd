package resume

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const documentXMLTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>%s</w:body>
</w:document>`

// buildDocx assembles a minimal .docx with one paragraph per line.
func buildDocx(t *testing.T, lines ...string) []byte {
	t.Helper()
	var body bytes.Buffer
	for _, l := range lines {
		body.WriteString("<w:p><w:r><w:t>" + l + "</w:t></w:r></w:p>")
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"word/document.xml":   fmt.Sprintf(documentXMLTemplate, body.String()),
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"cv.pdf":         FormatPDF,
		"CV.PDF":         FormatPDF,
		"resume.docx":    FormatDOCX,
		"resume.doc":     FormatUnknown,
		"notes.txt":      FormatUnknown,
		"no-extension":   FormatUnknown,
		"archive.pdf.7z": FormatUnknown,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, FormatOf(name))
		})
	}
}

func TestExtractText_UnsupportedIsEmpty(t *testing.T) {
	text, err := ExtractText("notes.txt", []byte("Python, SQL"), ExtractOptions{})

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText("broken.pdf", []byte("definitely not a pdf"), ExtractOptions{})

	require.Error(t, err)
	var xerr *ExtractionError
	require.True(t, errors.As(err, &xerr))
	assert.Equal(t, "broken.pdf", xerr.File)
}

func TestExtractText_CorruptDocx(t *testing.T) {
	_, err := ExtractText("broken.docx", []byte("PK but not really"), ExtractOptions{})

	var xerr *ExtractionError
	require.ErrorAs(t, err, &xerr)
	assert.Contains(t, xerr.Error(), "extract broken.docx")
}

func TestExtractText_Docx(t *testing.T) {
	data := buildDocx(t, "Jane Doe", "jane@doe.dev", "Skills: Go, SQL")

	text, err := ExtractText("jane.docx", data, ExtractOptions{})

	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "jane@doe.dev")
	assert.Contains(t, text, "Skills: Go, SQL")
}

func TestExtractionError(t *testing.T) {
	err := &ExtractionError{File: "cv.pdf", Page: 3, Err: ErrEmptyPage}

	assert.Equal(t, "extract cv.pdf: page 3: page has no extractable text", err.Error())
	assert.ErrorIs(t, err, ErrEmptyPage)
	assert.Equal(t, "extract cv.pdf: boom", (&ExtractionError{File: "cv.pdf", Err: errors.New("boom")}).Error())
}

// buildPDF writes a minimal PDF with one page per entry. A page whose text is
// empty gets no content stream at all.
func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()
	var objs []string
	add := func(body string) int {
		objs = append(objs, body)
		return len(objs)
	}

	catalog := add("") // filled once the page tree exists
	pagesObj := add("")
	font := add("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	var kids []string
	for _, text := range pages {
		contents := ""
		if text != "" {
			stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
			id := add(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
			contents = fmt.Sprintf(" /Contents %d 0 R", id)
		}
		page := add(fmt.Sprintf("<< /Type /Page /Parent %d 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >>%s >>",
			pagesObj, font, contents))
		kids = append(kids, fmt.Sprintf("%d 0 R", page))
	}
	objs[catalog-1] = fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesObj)
	objs[pagesObj-1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(kids))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, body := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, catalog, xref)
	return buf.Bytes()
}

func TestExtractText_PDFPages(t *testing.T) {
	withGap := buildPDF(t, "Jane Doe jane@doe.dev Python", "", "SQL 555-123-4567")
	full := buildPDF(t, "Jane Doe", "SQL")

	tests := []struct {
		name     string
		data     []byte
		strict   bool
		want     string
		wantPage int
	}{
		{"empty page counts as blank", withGap, false, "\nJane Doe jane@doe.dev Python\n\n\nSQL 555-123-4567\n", 0},
		{"strict mode rejects empty page", withGap, true, "", 2},
		{"strict mode accepts full pages", full, true, "\nJane Doe\n\nSQL\n", 0},
		{"single page", buildPDF(t, "Ann Lee"), false, "\nAnn Lee\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := ExtractText("cv.pdf", tt.data, ExtractOptions{StrictPages: tt.strict})
			if tt.wantPage == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.want, text)
				return
			}
			require.Error(t, err)
			assert.Empty(t, text)
			assert.ErrorIs(t, err, ErrEmptyPage)
			var ee *ExtractionError
			require.True(t, errors.As(err, &ee))
			assert.Equal(t, "cv.pdf", ee.File)
			assert.Equal(t, tt.wantPage, ee.Page)
			assert.Equal(t, "extract cv.pdf: page 2: page has no extractable text", err.Error())
		})
	}
}

func TestExtractText_PDFFeedsExtractor(t *testing.T) {
	text, err := ExtractText("cv.pdf", buildPDF(t, "Jane Doe jane@doe.dev Python", "", "SQL 555-123-4567"), ExtractOptions{})
	require.NoError(t, err)

	f := NewExtractor(&capitalizedPairs{}, nil).Parse(context.Background(), text)

	assert.Equal(t, "Jane Doe", f.Name)
	assert.Equal(t, "jane@doe.dev", f.Email)
	assert.Equal(t, "555-123-4567", f.Phone)
	assert.Equal(t, []string{"Python", "SQL"}, f.Skills)
}
