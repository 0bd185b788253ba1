package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, "hello resume", ExtractText([]byte("hello resume"), "text/plain"))
	})

	t.Run("missing mime type treated as text", func(t *testing.T) {
		assert.Equal(t, "raw bytes", ExtractText([]byte("raw bytes"), ""))
	})

	t.Run("corrupt pdf degrades to fallback", func(t *testing.T) {
		assert.Equal(t, FallbackText, ExtractText([]byte("not a pdf at all"), MimePDF))
	})

	t.Run("corrupt docx degrades to fallback", func(t *testing.T) {
		assert.Equal(t, FallbackText, ExtractText([]byte("not a zip archive"), MimeDocx))
	})

	t.Run("unrecognized binary format degrades to fallback", func(t *testing.T) {
		assert.Equal(t, FallbackText, ExtractText([]byte{0x00, 0x01}, "image/png"))
	})
}
