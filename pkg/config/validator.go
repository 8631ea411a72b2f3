package config

import (
	"fmt"
	"strings"

	"tree-to-text/pkg/constants"
	"tree-to-text/pkg/utils"
)

// ConfigValidator validates run configuration
type ConfigValidator struct{}

// NewConfigValidator creates a configuration validator
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// Validate checks the configuration and returns the first hard failure.
// The extension must be non-empty after normalization and the input
// directory must exist as a directory.
func (v *ConfigValidator) Validate(c *Config) error {
	if err := v.validateExtension(c.Extension); err != nil {
		return err
	}
	if err := v.validateInputDir(c.InputDir); err != nil {
		return err
	}
	if err := v.validateLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (v *ConfigValidator) validateExtension(ext string) error {
	if strings.TrimSpace(ext) == "" {
		return utils.NewValidationError(constants.ErrEmptyExtension, nil)
	}
	return nil
}

func (v *ConfigValidator) validateInputDir(dir string) error {
	if !utils.IsDirectory(dir) {
		return utils.NewNotFoundError(
			fmt.Sprintf("%s: %s", constants.ErrInputDirMissing, dir), nil)
	}
	return nil
}

func (v *ConfigValidator) validateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return utils.NewValidationError(
			fmt.Sprintf("invalid log level: %s (valid: debug, info, warn, error)", level), nil)
	}
}
