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

// PandocExtractor converts structured documents to plain text via pandoc
type PandocExtractor struct {
	name     string
	toolPath string
	logger   *logger.Logger
}

// NewPandocExtractor creates a new pandoc extractor
func NewPandocExtractor(toolPath string, log *logger.Logger) interfaces.Extractor {
	return &PandocExtractor{
		name:     "pandoc",
		toolPath: toolPath,
		logger:   log,
	}
}

// Extract converts the file to plain text format using pandoc
func (e *PandocExtractor) Extract(ctx context.Context, inputFile string) (string, error) {
	cmd := exec.CommandContext(ctx, e.toolPath, "-t", constants.PandocOutputFormat, inputFile)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			e.logger.Debug("pandoc stderr for %s: %s", inputFile, detail)
		}
		return "", utils.NewExtractionError(
			fmt.Sprintf("pandoc failed for %s", inputFile), err)
	}

	return stdout.String(), nil
}

// Name returns the name of the extraction method
func (e *PandocExtractor) Name() string {
	return e.name
}
