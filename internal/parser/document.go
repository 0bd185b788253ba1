package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog/log"
)

// MIME types the upload pipeline recognizes as binary document formats.
const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// FallbackText is stored as the raw text when a document cannot be decoded.
// The profile built from it is mostly empty, which downstream consumers
// accept; extraction failure never aborts an upload.
const FallbackText = "Parsing failed"

// ExtractText decodes a document into plain text. Unknown text-like types
// pass through as-is; decode failures and unrecognized binary formats
// degrade to FallbackText so BuildProfile can still run.
func ExtractText(data []byte, mimeType string) string {
	text, err := decode(data, mimeType)
	if err != nil {
		log.Warn().Err(err).Str("mimeType", mimeType).Msg("Document text extraction failed, using fallback text")
		return FallbackText
	}
	return text
}

func decode(data []byte, mimeType string) (string, error) {
	switch {
	case mimeType == MimePDF:
		return extractPDFText(data)
	case mimeType == MimeDocx:
		return extractDocxText(data)
	case mimeType == "" || strings.HasPrefix(mimeType, "text/"):
		return string(data), nil
	default:
		return "", fmt.Errorf("unrecognized document type %q", mimeType)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn().Int("page", i).Err(err).Msg("Failed to extract text from PDF page")
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening DOCX: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
