package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateStationName validates a station name for safety and correctness.
// It rejects names that could be used for path traversal or injection when
// the name ends up in filenames or CSV rows.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 128 characters
func ValidateStationName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidStation, "station name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidStation, "station name too long (max 128 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidStation, "station name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidStation, "station name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// lineNameRegex matches valid line identifiers: lowercase words joined by
// single hyphens, e.g. "western" or "trans-harbour".
var lineNameRegex = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

// ValidateLineName validates a railway line identifier.
func ValidateLineName(line string) error {
	if line == "" {
		return New(ErrCodeInvalidLine, "line name cannot be empty")
	}

	if !lineNameRegex.MatchString(line) {
		return New(ErrCodeInvalidLine, "invalid line name: %q", line)
	}

	return nil
}

// ValidateDataFilename validates a CSV data filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateDataFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidInput, "data filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidInput, "data filename cannot contain path separators")
	}

	// No hidden files (starting with .)
	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidInput, "data filename cannot be a hidden file")
	}

	return nil
}
