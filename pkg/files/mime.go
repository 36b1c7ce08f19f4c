package files

import (
	"mime"
	"path/filepath"
	"strings"
)

// extensionTypes takes precedence over the system mime table, which varies by
// platform and misses several text formats.
var extensionTypes = map[string]string{
	".html": "text/html",
	".htm":  "text/html",
	".css":  "text/css",
	".js":   "text/javascript",
	".mjs":  "text/javascript",
	".json": "application/json",
	".txt":  "text/plain",
	".md":   "text/markdown",
	".csv":  "text/csv",
	".xml":  "application/xml",
	".yaml": "text/yaml",
	".yml":  "text/yaml",
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".ico":  "image/x-icon",
	".pdf":  "application/pdf",
}

var charsetTypes = map[string]bool{
	"text/html":        true,
	"application/json": true,
	"text/javascript":  true,
	"text/css":         true,
}

// MimeType returns the bare media type for name's extension, or "" when unknown.
func MimeType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	t := mime.TypeByExtension(ext)
	if t == "" {
		return ""
	}
	media, _, err := mime.ParseMediaType(t)
	if err != nil {
		return ""
	}
	return media
}

// GetMimeType is MimeType with ";charset=utf-8" appended for HTML, JSON,
// JavaScript and CSS.
func GetMimeType(name string) string {
	t := MimeType(name)
	if charsetTypes[t] {
		return t + ";charset=utf-8"
	}
	return t
}
