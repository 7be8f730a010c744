// Package resume turns an uploaded resume document into a structured
// portfolio record. Extraction is heuristic: regex section detection over
// noisy natural-language text, per-field best effort, never a hard failure
// below the document-loading step.
package resume

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtractionEmpty   = errors.New("could not extract text from file")
)

// Format identifies a supported document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
	FormatTXT  Format = "txt"
)

// Detect returns the document format based on the file extension.
func Detect(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDocx, nil
	case ".txt":
		return FormatTXT, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadLines extracts text from a PDF, DOCX or TXT file and returns both the
// raw text (layout preserved, needed for section matching) and the cleaned
// non-empty lines in document order.
func LoadLines(path string) (string, []string, error) {
	format, err := Detect(path)
	if err != nil {
		return "", nil, err
	}

	var text string
	switch format {
	case FormatPDF:
		text = extractPDFText(path)
		if strings.TrimSpace(text) == "" {
			// Content-stream fallback for files the page reader chokes on.
			text = extractPDFContentStreams(path)
		}
	case FormatDocx:
		text, err = extractDocxText(path)
		if err != nil {
			return "", nil, err
		}
	case FormatTXT:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", nil, fmt.Errorf("read %s: %w", path, err)
		}
		text = string(data)
	}

	lines := cleanLines(text)
	if len(lines) == 0 {
		return "", nil, ErrExtractionEmpty
	}
	return text, lines, nil
}

// extractPDFText reads a PDF page by page. Pages that fail to yield text are
// skipped, not fatal; a completely unreadable file yields "".
func extractPDFText(path string) string {
	f, r, err := pdf.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	var sb strings.Builder
	for pageNr := 1; pageNr <= r.NumPage(); pageNr++ {
		text := pdfPageText(r, pageNr)
		if text == "" {
			continue
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// pdfPageText extracts one page, recovering from parser panics on malformed
// font tables.
func pdfPageText(r *pdf.Reader, pageNr int) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	page := r.Page(pageNr)
	if page.V.IsNull() {
		return ""
	}
	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}

var (
	docxParaRe = regexp.MustCompile(`(?s)<w:p[^>]*>(.*?)</w:p>`)
	docxRunRe  = regexp.MustCompile(`(?s)<w:t[^>]*>(.*?)</w:t>`)
)

// extractDocxText returns paragraph text only, skipping blank paragraphs.
// Tables, headers and footers are ignored.
func extractDocxText(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("open docx %s: %w", path, err)
	}
	defer r.Close()

	return docxParagraphs(r.Editable().GetContent()), nil
}

// docxParagraphs flattens <w:p> paragraphs to one text line each, joining
// the <w:t> runs inside and decoding XML entities.
func docxParagraphs(content string) string {
	var sb strings.Builder
	for _, para := range docxParaRe.FindAllStringSubmatch(content, -1) {
		var pb strings.Builder
		for _, run := range docxRunRe.FindAllStringSubmatch(para[1], -1) {
			pb.WriteString(run[1])
		}
		text := strings.TrimSpace(html.UnescapeString(pb.String()))
		if text == "" {
			continue
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// cleanLines splits text on newlines, collapses internal whitespace runs and
// drops empty lines. Document order is preserved.
func cleanLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(whitespaceRe.ReplaceAllString(line, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
