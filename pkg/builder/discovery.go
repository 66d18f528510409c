package builder

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover finds document sources under the configured source directory.
// It returns a deterministically sorted list of paths relative to the
// source directory, using forward slashes.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	cfg := opts.effectiveConfig()

	sourceDir, err := resolveSourceDir(opts.WorkingDir, cfg.SourceDir)
	if err != nil {
		return nil, err
	}

	extensions := DefaultExtensions()
	var files []string

	err = filepath.WalkDir(sourceDir, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(sourceDir, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if entry.IsDir() {
			// Skip hidden directories (except the root itself).
			if path != sourceDir && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if matchesExcludePattern(relPath, cfg.Exclude) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if !hasMatchingExtension(path, extensions) {
			return nil
		}
		if matchesExcludePattern(relPath, cfg.Exclude) {
			return nil
		}

		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk source directory %s: %w", sourceDir, err)
	}

	// Sort for deterministic ordering.
	sort.Strings(files)

	return files, nil
}

// resolveSourceDir resolves the source directory against the working
// directory and verifies it exists.
func resolveSourceDir(workDir, sourceDir string) (string, error) {
	dir := sourceDir
	if !filepath.IsAbs(dir) {
		if workDir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf("get working directory: %w", err)
			}
			workDir = wd
		}
		dir = filepath.Join(workDir, dir)
	}
	dir = filepath.Clean(dir)

	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("stat source directory %s: %w", sourceDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("source directory %s is not a directory", sourceDir)
	}
	return dir, nil
}

// hasMatchingExtension checks if the file has a matching extension.
func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// matchesExcludePattern checks if the path matches any exclude pattern.
func matchesExcludePattern(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated path against a glob pattern.
// It supports patterns like "*.rst", "drafts/**" and "**/attic".
func matchGlob(path, pattern string) bool {
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStarPattern(path, pattern)
	}

	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}

	// Also try matching against just the filename.
	matched, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && matched
}

// matchDoubleStarPattern handles ** glob patterns. Only the common
// forms are supported: a "**/" prefix matches the component anywhere,
// a "/**" suffix matches the whole subtree.
func matchDoubleStarPattern(path, pattern string) bool {
	prefix, suffix, _ := strings.Cut(pattern, "**")
	prefix = strings.TrimSuffix(prefix, "/")
	suffix = strings.TrimPrefix(suffix, "/")

	if prefix == "" && suffix == "" {
		return true
	}

	if prefix == "" {
		// "**/name": match as a suffix or as any path component.
		if strings.HasSuffix(path, suffix) || strings.Contains(path, suffix) {
			return true
		}
		for _, part := range strings.Split(path, "/") {
			if matched, err := filepath.Match(suffix, part); err == nil && matched {
				return true
			}
		}
		return false
	}

	if suffix == "" {
		// "dir/**": match the directory and everything under it.
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	if !strings.HasPrefix(path, prefix) {
		return false
	}
	if strings.HasSuffix(path, suffix) {
		return true
	}
	matched, err := filepath.Match(suffix, filepath.Base(path))
	return err == nil && matched
}
