package domain

import (
	"os"
	"path/filepath"
)

// NormalizePath converts path into the canonical form used as an identity key:
// relative to the process working directory and separated by forward slashes.
// Paths outside the working tree keep a ".." prefix.
func NormalizePath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return filepath.ToSlash(filepath.Clean(path))
	}
	return NormalizePathFrom(wd, path)
}

// NormalizePathFrom is NormalizePath with an explicit base directory.
func NormalizePathFrom(base, path string) string {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(base, path)
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		// No relative form exists, e.g. a different volume on Windows.
		return filepath.ToSlash(filepath.Clean(abs))
	}
	return filepath.ToSlash(rel)
}
