package dirgroup

import (
	"path/filepath"
	"strings"
	"time"
)

// Request describes a single scan. Optional fields are pointers so that
// "not set" and "zero" stay distinct.
type Request struct {
	// Path is the root directory to scan.
	Path string
	// MinSize is the minimum file size in bytes (inclusive).
	MinSize *int64
	// MaxSize is the maximum file size in bytes (inclusive).
	MaxSize *int64
	// ModifiedSince drops files last modified before this instant.
	// A file modified exactly at the instant is retained.
	ModifiedSince *time.Time
	// SkipExtensions lists extensions to exclude.
	SkipExtensions []string
	// PassExtensions lists the only extensions to include.
	// When set, SkipExtensions is ignored.
	PassExtensions []string
}

// FileRecord is the per-file metadata the filter chain evaluates.
type FileRecord struct {
	// Path is the full path of the file.
	Path string
	// Ext is the normalized extension ("" for none).
	Ext string
	// Size is the file size in bytes.
	Size int64
	// ModTime is the last modification time.
	ModTime time.Time
}

// Result maps normalized extensions to file paths in traversal order.
// A key exists only if at least one file survived filtering for it.
type Result map[string][]string

// NormalizeExt lowercases an extension and enforces the leading dot.
// The empty string stays empty (files without an extension).
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}

// extOf returns the normalized extension of a file name.
func extOf(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// normalizeSet normalizes a list of extensions into a lookup set.
// Returns nil for an empty list so callers can treat it as "no filter".
func normalizeSet(exts []string) map[string]struct{} {
	if len(exts) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(exts))

	for _, ext := range exts {
		set[NormalizeExt(ext)] = struct{}{}
	}

	return set
}
