package eligibility

import (
	"context"
	"strings"
	"unicode"
)

// TextExtractor turns an uploaded document into plain text for the
// classifier. PDF extraction is delegated to an external utility behind this
// interface; the bundled implementation handles plain-text uploads.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, data []byte) (string, error)
}

// PlainTextExtractor treats the upload as UTF-8 text, dropping control bytes
type PlainTextExtractor struct{}

// NewPlainTextExtractor creates a plain-text extractor
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// Extract returns the printable text content of the upload
func (e *PlainTextExtractor) Extract(_ context.Context, _ string, data []byte) (string, error) {
	var b strings.Builder
	b.Grow(len(data))
	for _, r := range string(data) {
		if r == '\n' || r == '\t' || unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}
