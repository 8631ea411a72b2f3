package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tree-to-text/pkg/logger"
	"tree-to-text/pkg/utils"
)

// TestPassthrough_ReturnsRawBytes verifies the file content comes back
// unchanged.
func TestPassthrough_ReturnsRawBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.md")
	content := "# title\n\nbody text, no trailing newline"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	e := NewPassthroughExtractor(logger.DefaultLogger())
	got, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

// TestPassthrough_MissingFile verifies a read failure surfaces as a
// recoverable extraction error.
func TestPassthrough_MissingFile(t *testing.T) {
	e := NewPassthroughExtractor(logger.DefaultLogger())

	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "gone.md"))
	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeExtraction, utils.GetErrorType(err))
	assert.True(t, utils.IsRecoverable(err))
}

// TestPassthrough_CancelledContext verifies cancellation is honored
// before the file is read.
func TestPassthrough_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewPassthroughExtractor(logger.DefaultLogger())
	_, err := e.Extract(ctx, "irrelevant.md")
	assert.ErrorIs(t, err, context.Canceled)
}

// TestContainsMarkup distinguishes marked-up content from plain text
func TestContainsMarkup(t *testing.T) {
	tests := []struct {
		name    string
		content string
		markup  bool
	}{
		{"html document", "<html><body><p>hi</p></body></html>", true},
		{"fragment", "before <div class=\"x\">inside</div> after", true},
		{"self-closing tag", "a line with <br/> in it", true},
		{"plain text", "just words here\nand more words\n", false},
		{"markdown", "# heading\n\n- item one\n- item two\n", false},
		{"bare less-than", "when a < b then proceed", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.markup, ContainsMarkup([]byte(tt.content)))
		})
	}
}
