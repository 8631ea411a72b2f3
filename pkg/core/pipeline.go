package core

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tree-to-text/pkg/config"
	"tree-to-text/pkg/constants"
	"tree-to-text/pkg/interfaces"
	"tree-to-text/pkg/logger"
	"tree-to-text/pkg/scanner"
	"tree-to-text/pkg/utils"
)

// Pipeline runs the whole flattening pass: guard, truncate output, scan,
// extract, filter, append. Files are processed strictly in sorted-path
// order; a per-file extraction failure is logged and skipped, never fatal.
type Pipeline struct {
	config    *config.Config
	logger    *logger.Logger
	extractor interfaces.Extractor
	filter    interfaces.LineFilter
}

// RunSummary reports what one pipeline run did
type RunSummary struct {
	Candidates int
	Processed  int
	Skipped    int
}

// NewPipeline creates a pipeline for one run
func NewPipeline(cfg *config.Config, log *logger.Logger, extractor interfaces.Extractor, lineFilter interfaces.LineFilter) *Pipeline {
	return &Pipeline{
		config:    cfg,
		logger:    log,
		extractor: extractor,
		filter:    lineFilter,
	}
}

// Run executes the pipeline once
func (p *Pipeline) Run(ctx context.Context) (*RunSummary, error) {
	if err := p.guardSelfOverwrite(); err != nil {
		return nil, err
	}

	// The output file is created and truncated before any scanning, so it
	// exists and is empty even when zero candidates are found.
	out, err := os.OpenFile(p.config.OutputFile,
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.DefaultFilePermission)
	if err != nil {
		return nil, utils.NewIOError(
			fmt.Sprintf("cannot create output file: %s", p.config.OutputFile), err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	candidates, err := p.collectCandidates()
	if err != nil {
		return nil, err
	}

	summary := &RunSummary{Candidates: len(candidates)}
	for _, path := range candidates {
		p.logger.Progress("📄", "Processing: %s", path)

		text, err := p.extractor.Extract(ctx, path)
		if err != nil {
			// Skip this file, continue with the rest
			p.logger.Warn("skipping %s: %v", path, err)
			summary.Skipped++
			continue
		}

		if err := p.appendFile(w, path, p.filter.Filter(text)); err != nil {
			return nil, err
		}
		summary.Processed++
	}

	if err := w.Flush(); err != nil {
		return nil, utils.NewIOError(
			fmt.Sprintf("failed to flush output file: %s", p.config.OutputFile), err)
	}

	p.logger.ProgressAlways("✅", "Wrote %s (%d of %d candidates, %d skipped)",
		p.config.OutputFile, summary.Processed, summary.Candidates, summary.Skipped)

	return summary, nil
}

// guardSelfOverwrite refuses to truncate the running program. The guard
// trips only when the output basename matches the program name and both
// resolve to the same path.
func (p *Pipeline) guardSelfOverwrite() error {
	if p.config.OutputBasename() != p.config.ProgramName {
		return nil
	}

	outPath, err := filepath.Abs(p.config.OutputFile)
	if err != nil {
		return utils.NewIOError(
			fmt.Sprintf("cannot resolve output path: %s", p.config.OutputFile), err)
	}
	if outPath == p.config.ProgramPath {
		return utils.NewSelfOverwriteError(constants.ErrSelfOverwrite, nil)
	}
	return nil
}

// collectCandidates produces the sorted candidate file list
func (p *Pipeline) collectCandidates() ([]string, error) {
	result, err := scanner.ScanDirectory(p.config.InputDir, scanner.ScanOptions{
		Extension:    p.config.Extension,
		ExcludeDirs:  p.config.ExcludeDirs,
		ExcludeNames: []string{p.config.ProgramName, p.config.OutputBasename()},
	})
	if err != nil {
		return nil, err
	}

	for _, scanErr := range result.Errors {
		p.logger.Warn("%v", scanErr)
	}

	p.logger.Info("Found %d candidate files under %s", len(result.Files), p.config.InputDir)
	return result.Files, nil
}

// appendFile writes one file's filtered text to the output, ensuring
// newline termination, followed by the separator block when enabled
func (p *Pipeline) appendFile(w *bufio.Writer, path, text string) error {
	if text != "" {
		if _, err := w.WriteString(text); err != nil {
			return utils.NewIOError("failed writing output", err)
		}
		if !strings.HasSuffix(text, "\n") {
			if err := w.WriteByte('\n'); err != nil {
				return utils.NewIOError("failed writing output", err)
			}
		}
	}

	if p.config.Separator {
		if _, err := fmt.Fprintf(w, constants.SeparatorFormat, path); err != nil {
			return utils.NewIOError("failed writing separator", err)
		}
	}
	return nil
}
