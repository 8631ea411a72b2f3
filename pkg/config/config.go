package config

import (
	"fmt"
	"os"
	"path/filepath"

	"tree-to-text/pkg/constants"
)

// Default values and constants
const (
	DefaultLogLevel      = "info"
	DefaultEnableVerbose = false
	DefaultInputDir      = "."
)

// Config holds the configuration for one run. It is built once from flags
// and environment, then read-only for the rest of the run.
type Config struct {
	// Pipeline inputs
	InputDir     string
	OutputFile   string
	Extension    string
	ExcludeWords []string
	ExcludeDirs  []string
	Separator    bool

	// Identity of the running program, used for traversal self-exclusion
	// and the self-overwrite guard
	ProgramName string
	ProgramPath string

	// External tool path overrides
	PandocPath string
	LynxPath   string

	// Runtime settings
	LogLevel      string
	EnableVerbose bool
}

// DefaultConfig returns a configuration populated with defaults
func DefaultConfig() *Config {
	programPath, err := filepath.Abs(os.Args[0])
	if err != nil {
		programPath = os.Args[0]
	}

	return &Config{
		InputDir:      DefaultInputDir,
		OutputFile:    constants.DefaultOutputFile,
		Extension:     constants.DefaultExtension,
		ExcludeDirs:   []string{constants.DefaultVCSDirName},
		ProgramName:   filepath.Base(os.Args[0]),
		ProgramPath:   programPath,
		PandocPath:    "",
		LynxPath:      "",
		LogLevel:      DefaultLogLevel,
		EnableVerbose: DefaultEnableVerbose,
	}
}

// ApplyEnvOverrides applies environment variable overrides
func (c *Config) ApplyEnvOverrides() {
	if value := os.Getenv("PANDOC_PATH"); value != "" {
		c.PandocPath = value
	}
	if value := os.Getenv("LYNX_PATH"); value != "" {
		c.LynxPath = value
	}
	if value := os.Getenv("TREE_TO_TEXT_LOG_LEVEL"); value != "" {
		c.LogLevel = value
	}
	if value := os.Getenv("TREE_TO_TEXT_VERBOSE"); value != "" {
		c.EnableVerbose = value == "true" || value == "1" || value == "yes"
	}
}

// MergeExcludeDirs merges user-supplied excluded directory names with the
// default set, dropping duplicates. The VCS metadata directory is always
// excluded.
func (c *Config) MergeExcludeDirs(names []string) {
	seen := make(map[string]bool, len(c.ExcludeDirs)+len(names))
	for _, name := range c.ExcludeDirs {
		seen[name] = true
	}
	for _, name := range names {
		if !seen[name] {
			c.ExcludeDirs = append(c.ExcludeDirs, name)
			seen[name] = true
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validator := NewConfigValidator()
	return validator.Validate(c)
}

// OutputBasename returns the final path component of the output file
func (c *Config) OutputBasename() string {
	return filepath.Base(c.OutputFile)
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{InputDir: %s, OutputFile: %s, Extension: %s, Separator: %v}",
		c.InputDir, c.OutputFile, c.Extension, c.Separator)
}
