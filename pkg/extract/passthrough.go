package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"golang.org/x/net/html"

	"tree-to-text/pkg/interfaces"
	"tree-to-text/pkg/logger"
	"tree-to-text/pkg/utils"
)

// markupProbeSize limits how much of a file is inspected for markup tags
const markupProbeSize = 4096

// PassthroughExtractor returns file contents unchanged. It is the method
// of last resort and is always available since it needs no external tool.
type PassthroughExtractor struct {
	name   string
	logger *logger.Logger
}

// NewPassthroughExtractor creates a new passthrough extractor
func NewPassthroughExtractor(log *logger.Logger) interfaces.Extractor {
	return &PassthroughExtractor{
		name:   "passthrough",
		logger: log,
	}
}

// Extract returns the file's raw bytes as text. Files that appear to
// contain markup trigger a non-fatal advisory, since the output will
// retain raw tags.
func (e *PassthroughExtractor) Extract(ctx context.Context, inputFile string) (string, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	content, err := os.ReadFile(inputFile)
	if err != nil {
		return "", utils.NewExtractionError(
			fmt.Sprintf("error reading file %s", inputFile), err)
	}

	if ContainsMarkup(content) {
		e.logger.Warn("no extraction tool available for %s: output will retain raw markup", inputFile)
	}

	return string(content), nil
}

// Name returns the name of the extraction method
func (e *PassthroughExtractor) Name() string {
	return e.name
}

// ContainsMarkup reports whether content appears to contain markup tags.
// Only the leading chunk of the content is tokenized.
func ContainsMarkup(content []byte) bool {
	if len(content) > markupProbeSize {
		content = content[:markupProbeSize]
	}

	tokenizer := html.NewTokenizer(bytes.NewReader(content))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			return true
		}
	}
}
