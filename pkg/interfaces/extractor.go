package interfaces

import (
	"context"
)

// Extractor defines the interface for text extraction
type Extractor interface {
	// Extract extracts plain text from the given file
	Extract(ctx context.Context, inputFile string) (string, error)

	// Name returns the name of the extraction method
	Name() string
}

// LineFilter removes unwanted lines from extracted text
type LineFilter interface {
	// Filter returns the surviving lines, newline-terminated, in original order
	Filter(text string) string
}
