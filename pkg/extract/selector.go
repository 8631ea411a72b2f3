package extract

import (
	"tree-to-text/pkg/config"
	"tree-to-text/pkg/constants"
	"tree-to-text/pkg/interfaces"
	"tree-to-text/pkg/logger"
	"tree-to-text/pkg/utils"
)

// MethodSelector probes the host environment for available extraction
// tools and picks the first usable method.
type MethodSelector struct {
	config *config.Config
	logger *logger.Logger

	// findTool resolves the first usable tool path from a candidate list;
	// replaceable in tests
	findTool func(candidates []string) string
}

// NewMethodSelector creates a new method selector
func NewMethodSelector(cfg *config.Config, log *logger.Logger) *MethodSelector {
	return &MethodSelector{
		config:   cfg,
		logger:   log,
		findTool: utils.FindToolPath,
	}
}

// SelectMethod probes tools in fixed priority order (pandoc, then lynx,
// then passthrough) and returns the extractor for the first available
// method. Passthrough requires no external tool, so selection only fails
// if the probe order itself were emptied.
func (s *MethodSelector) SelectMethod() (interfaces.Extractor, Method, error) {
	platform := constants.GetPlatformConfig()

	for _, method := range probeOrder {
		switch method {
		case MethodPandoc:
			if path := s.resolveTool(s.config.PandocPath, platform.PandocPaths); path != "" {
				s.logger.Info("Selected extraction method: pandoc (%s)", path)
				return NewPandocExtractor(path, s.logger), MethodPandoc, nil
			}
			s.logger.Debug("pandoc not found, trying next method")
		case MethodLynx:
			if path := s.resolveTool(s.config.LynxPath, platform.LynxPaths); path != "" {
				s.logger.Info("Selected extraction method: lynx (%s)", path)
				return NewLynxExtractor(path, s.logger), MethodLynx, nil
			}
			s.logger.Debug("lynx not found, trying next method")
		case MethodPassthrough:
			s.logger.Info("Selected extraction method: passthrough")
			return NewPassthroughExtractor(s.logger), MethodPassthrough, nil
		}
	}

	return nil, "", utils.NewSystemError(constants.ErrNoExtractionMethod, nil)
}

// resolveTool resolves a tool path, preferring an explicit override over
// the platform candidate list
func (s *MethodSelector) resolveTool(override string, candidates []string) string {
	if override != "" {
		return s.findTool([]string{override})
	}
	return s.findTool(candidates)
}
