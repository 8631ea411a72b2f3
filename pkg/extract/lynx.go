package extract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"tree-to-text/pkg/constants"
	"tree-to-text/pkg/interfaces"
	"tree-to-text/pkg/logger"
	"tree-to-text/pkg/utils"
)

// LynxExtractor dumps a rendered plain-text view of a document via lynx.
// The link list is suppressed so the dump stays plain prose.
type LynxExtractor struct {
	name     string
	toolPath string
	logger   *logger.Logger
}

// NewLynxExtractor creates a new lynx extractor
func NewLynxExtractor(toolPath string, log *logger.Logger) interfaces.Extractor {
	return &LynxExtractor{
		name:     "lynx",
		toolPath: toolPath,
		logger:   log,
	}
}

// Extract dumps the rendered plain-text view of the file using lynx
func (e *LynxExtractor) Extract(ctx context.Context, inputFile string) (string, error) {
	cmd := exec.CommandContext(ctx, e.toolPath,
		constants.LynxDumpFlag, constants.LynxNoListFlag, inputFile)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			e.logger.Debug("lynx stderr for %s: %s", inputFile, detail)
		}
		return "", utils.NewExtractionError(
			fmt.Sprintf("lynx failed for %s", inputFile), err)
	}

	return stdout.String(), nil
}

// Name returns the name of the extraction method
func (e *LynxExtractor) Name() string {
	return e.name
}
