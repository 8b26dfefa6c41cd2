package controller

import (
	"path/filepath"
	"strings"
)

var mediaExtensions = []string{"mp4", "mkv", "webm", "mov", "avi", "m4v", "ts"}

// MediaExtensions returns the accepted video file extensions, without dots.
func MediaExtensions() []string {
	out := make([]string, len(mediaExtensions))
	copy(out, mediaExtensions)
	return out
}

// IsMedia reports whether path has a whitelisted extension. The comparison
// is case-insensitive and nothing is read from disk.
func IsMedia(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return false
	}
	ext = strings.ToLower(ext)
	for _, e := range mediaExtensions {
		if e == ext {
			return true
		}
	}
	return false
}
