package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeExtension verifies leading-dot stripping
func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{".txt", "txt"},
		{"txt", "txt"},
		{" .md ", "md"},
		{".", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeExtension(tt.in), "input %q", tt.in)
	}
}

// TestSplitCSV verifies trimming and empty-item dropping
func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"foo", "bar"}, SplitCSV("foo,bar"))
	assert.Equal(t, []string{"foo", "bar"}, SplitCSV(" foo , bar "))
	assert.Equal(t, []string{"foo"}, SplitCSV("foo,,"))
	assert.Nil(t, SplitCSV(""))
	assert.Nil(t, SplitCSV("   "))
}

// TestFindToolPath_AbsoluteCandidate verifies absolute candidates are
// checked on disk and directories are rejected.
func TestFindToolPath_AbsoluteCandidate(t *testing.T) {
	dir := t.TempDir()
	tool := filepath.Join(dir, "sometool")
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\n"), 0755))

	assert.Equal(t, tool, FindToolPath([]string{tool}))
	assert.Equal(t, "", FindToolPath([]string{filepath.Join(dir, "missing")}))
	assert.Equal(t, "", FindToolPath([]string{dir}))
	assert.Equal(t, "", FindToolPath(nil))
}

// TestIsDirectory covers the input directory validation helper
func TestIsDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, IsDirectory(dir))
	assert.False(t, IsDirectory(file))
	assert.False(t, IsDirectory(filepath.Join(dir, "missing")))
}
