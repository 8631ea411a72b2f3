package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsDirectory reports whether path exists and is a directory
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FindToolPath resolves the first usable tool path from the candidate list.
// Absolute candidates are checked on disk; bare names are resolved via PATH.
// Returns an empty string when no candidate is usable.
func FindToolPath(candidates []string) string {
	for _, candidate := range candidates {
		if filepath.IsAbs(candidate) {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
			continue
		}
		if resolved, err := exec.LookPath(candidate); err == nil {
			return resolved
		}
	}
	return ""
}

// NormalizeExtension strips a leading dot from a file extension.
// ".html" and "html" both normalize to "html".
func NormalizeExtension(ext string) string {
	return strings.TrimPrefix(strings.TrimSpace(ext), ".")
}

// SplitCSV splits a comma-separated flag value into trimmed, non-empty items
func SplitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
