// Package format provides input format detection for cause-list files.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a supported cause-list input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// StextJSON indicates MuPDF structured-text JSON
	// (mutool convert -F stext.json).
	StextJSON
	// HTML indicates an HTML cause list.
	HTML
	// PDF indicates a PDF document. PDFs are recognized so callers can report
	// that the file needs converting to structured text first.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case StextJSON:
		return "StextJSON"
	case HTML:
		return "HTML"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case StextJSON:
		return ".json"
	case HTML:
		return ".html"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json", ".stext":
		return StextJSON
	case ".html", ".htm":
		return HTML
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading content bytes to determine format. This
// covers files with missing or misleading extensions. Returns Unknown if the
// content is not recognizable.
func DetectFromMagic(data []byte) Format {
	data = trimLeadingSpace(data)
	if len(data) == 0 {
		return Unknown
	}

	// PDF magic: %PDF
	if len(data) >= 4 && data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}

	// Structured-text output is a JSON object (or an array of pages).
	if data[0] == '{' || data[0] == '[' {
		return StextJSON
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	upper := strings.ToUpper(string(data[:min(512, len(data))]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}

	return false
}

func trimLeadingSpace(data []byte) []byte {
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	return data[start:]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
