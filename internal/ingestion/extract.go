// Package ingestion extracts plain text from uploaded resume documents.
package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText pulls plain text from an uploaded document, dispatching on
// the declared content type.
func ExtractText(data []byte, contentType string) (string, error) {
	mime := contentType
	if idx := strings.Index(mime, ";"); idx >= 0 {
		mime = mime[:idx]
	}
	mime = strings.TrimSpace(strings.ToLower(mime))

	// Browsers and form writers often fall back to octet-stream; sniff
	// the payload instead of rejecting it.
	if mime == "application/octet-stream" || mime == "" {
		if bytes.HasPrefix(data, []byte("%PDF")) {
			mime = "application/pdf"
		} else {
			mime = "text/plain"
		}
	}

	switch mime {
	case "text/plain":
		return CleanText(string(data)), nil
	case "application/pdf":
		text, err := ExtractPDFText(data)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", mime)
	}
}

// ExtractPDFText concatenates the plain text of every page in the PDF.
// Pages that fail to decode are skipped rather than failing the document.
func ExtractPDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

// CleanText normalizes whitespace in extracted text: runs of blank lines
// collapse to one, and each line is trimmed.
func CleanText(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	// Drop a trailing blank line left by the collapse.
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
