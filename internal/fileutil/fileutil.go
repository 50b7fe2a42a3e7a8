// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath    = errors.New("path cannot be empty")
	ErrAbsolutePath = errors.New("absolute path not allowed")
	ErrOutsideRoot  = errors.New("path escapes root directory")
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// PathExists returns true if anything exists at path.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// HasExtension reports whether path ends with one of exts, ignoring case.
// Extensions include the leading dot (".md").
func HasExtension(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// ResolveWithin joins rel onto root and verifies the result stays inside root.
// Symlinks are resolved on both sides when the target exists, so a link
// pointing outside root is rejected even if its lexical path looks contained.
// The returned path is absolute.
func ResolveWithin(root, rel string) (string, error) {
	if rel == "" {
		return "", ErrEmptyPath
	}
	if filepath.IsAbs(rel) || strings.HasPrefix(rel, "/") || strings.HasPrefix(rel, `\`) {
		return "", fmt.Errorf("%w: %s", ErrAbsolutePath, rel)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving root: %w", err)
	}
	if real, err := filepath.EvalSymlinks(absRoot); err == nil {
		absRoot = real
	}

	target := filepath.Join(absRoot, filepath.FromSlash(rel))
	if real, err := filepath.EvalSymlinks(target); err == nil {
		target = real
	}

	if !within(absRoot, target) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, rel)
	}
	return target, nil
}

// within reports whether target is root or below it.
func within(root, target string) bool {
	relPath, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}
	if relPath == "." {
		return true
	}
	return relPath != ".." && !strings.HasPrefix(relPath, ".."+string(filepath.Separator))
}

// ReadFileIfExists returns the file content and true, or "" and false when
// the file does not exist. Other read errors are returned.
func ReadFileIfExists(path string) (string, bool, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

// WriteFile writes content to path, creating parent directories as needed.
// Safe to repeat: existing directories are left as they are.
func WriteFile(path, content string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), FilePermissions); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}
