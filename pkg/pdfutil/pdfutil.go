// Package pdfutil extracts plain text from PDF documents so researchers can
// upload essays and candidate profiles as files. Output is page-joined and
// whitespace-normalised; a size cap keeps a malformed or enormous upload from
// ballooning session configs and prompts.
package pdfutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxTextBytes caps extracted text. Session config columns and prompt
// windows both budget for documents well under this.
const MaxTextBytes = 256 << 10

// Extract reads a PDF from r (size bytes long) and returns its text. Pages
// that fail text extraction are skipped rather than failing the document;
// an error is returned only when the file is not a readable PDF or no page
// yielded any text.
func Extract(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("parsing pdf: %w", err)
	}

	var pages []string
	total := 0
	for n := 1; n <= reader.NumPage(); n++ {
		page := reader.Page(n)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = normalize(text)
		if text == "" {
			continue
		}
		if total+len(text) > MaxTextBytes {
			text = truncate(text, MaxTextBytes-total)
			if text != "" {
				pages = append(pages, text)
			}
			break
		}
		pages = append(pages, text)
		total += len(text)
	}

	if len(pages) == 0 {
		return "", fmt.Errorf("pdf contains no extractable text")
	}
	return strings.Join(pages, "\n\n"), nil
}

// ExtractBytes extracts text from an in-memory PDF, the shape file uploads
// arrive in.
func ExtractBytes(data []byte) (string, error) {
	return Extract(bytes.NewReader(data), int64(len(data)))
}

// ExtractFile extracts text from a PDF on disk.
func ExtractFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("reading pdf size: %w", err)
	}
	return Extract(f, info.Size())
}

// normalize collapses runs of whitespace into single spaces. PDF text
// extraction scatters layout artifacts (column gaps, soft line breaks) that
// would otherwise leak into prompts.
func normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// truncate cuts text to at most max bytes without splitting a word.
func truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(text) <= max {
		return text
	}
	cut := text[:max]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ")
}
