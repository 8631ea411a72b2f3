package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tree-to-text/pkg/utils"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.InputDir)
	assert.Equal(t, "combined.txt", cfg.OutputFile)
	assert.Equal(t, "html", cfg.Extension)
	assert.Equal(t, []string{".git"}, cfg.ExcludeDirs)
	assert.Empty(t, cfg.ExcludeWords)
	assert.False(t, cfg.Separator)
	assert.NotEmpty(t, cfg.ProgramName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.EnableVerbose)
}

// TestMergeExcludeDirs verifies user names merge with the default VCS
// exclusion without duplicates.
func TestMergeExcludeDirs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MergeExcludeDirs([]string{"node_modules", ".git", "dist", "node_modules"})

	assert.Equal(t, []string{".git", "node_modules", "dist"}, cfg.ExcludeDirs)
}

// TestValidate_EmptyExtension verifies an empty extension after
// normalization is rejected as a validation error.
func TestValidate_EmptyExtension(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = t.TempDir()
	cfg.Extension = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeValidation, utils.GetErrorType(err))
}

// TestValidate_MissingInputDir verifies a missing input directory is
// rejected before any work happens.
func TestValidate_MissingInputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = "/nonexistent/path/for/sure"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, utils.ErrorTypeNotFound, utils.GetErrorType(err))
}

// TestValidate_OK verifies a well-formed config passes
func TestValidate_OK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = t.TempDir()
	cfg.Extension = "md"

	assert.NoError(t, cfg.Validate())
}

// TestApplyEnvOverrides verifies environment variables override tool
// paths and runtime settings.
func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PANDOC_PATH", "/opt/pandoc/bin/pandoc")
	t.Setenv("LYNX_PATH", "/opt/lynx/bin/lynx")
	t.Setenv("TREE_TO_TEXT_LOG_LEVEL", "debug")
	t.Setenv("TREE_TO_TEXT_VERBOSE", "1")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "/opt/pandoc/bin/pandoc", cfg.PandocPath)
	assert.Equal(t, "/opt/lynx/bin/lynx", cfg.LynxPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.EnableVerbose)
}

// TestOutputBasename verifies basename extraction for the exclusion and
// guard comparisons.
func TestOutputBasename(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputFile = "/tmp/out/corpus.txt"

	assert.Equal(t, "corpus.txt", cfg.OutputBasename())
}
