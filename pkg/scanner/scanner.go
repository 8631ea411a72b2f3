package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tree-to-text/pkg/utils"
)

// ScanOptions configures candidate file collection
type ScanOptions struct {
	// Extension is the target extension, without leading dot
	Extension string
	// ExcludeDirs lists bare directory names that are pruned wherever
	// they occur in the tree, nested occurrences included
	ExcludeDirs []string
	// ExcludeNames lists basenames that are never candidates: the running
	// program's own name and the output file's basename. The comparison is
	// basename-only, so a same-named file in another directory is also
	// excluded.
	ExcludeNames []string
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the candidate paths, sorted ascending by full path
	// string in byte order
	Files []string
	// Errors contains non-fatal errors encountered during scanning
	Errors []error
}

// ScanDirectory walks dir and collects candidate files matching the
// options. Unreadable entries are recorded as non-fatal errors and the
// walk continues. Directory symlinks are not followed, which also guards
// against symlink cycles.
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, utils.NewNotFoundError(fmt.Sprintf("failed to access directory: %s", dir), err)
	}
	if !info.IsDir() {
		return nil, utils.NewValidationError(fmt.Sprintf("path is not a directory: %s", dir), nil)
	}

	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	suffix := "." + opts.Extension

	excludeDirs := make(map[string]bool, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		excludeDirs[name] = true
	}
	excludeNames := make(map[string]bool, len(opts.ExcludeNames))
	for _, name := range opts.ExcludeNames {
		excludeNames[name] = true
	}

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil // Continue walking
		}

		// Skip the root directory itself
		if path == dir {
			return nil
		}

		if d.IsDir() {
			if excludeDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		filename := d.Name()
		if !strings.HasSuffix(filename, suffix) {
			return nil
		}
		if excludeNames[filename] {
			return nil
		}

		result.Files = append(result.Files, path)
		return nil
	})

	if err != nil {
		return nil, utils.NewIOError(fmt.Sprintf("failed to walk directory: %s", dir), err)
	}

	// Sort for deterministic processing order
	sort.Strings(result.Files)

	return result, nil
}
