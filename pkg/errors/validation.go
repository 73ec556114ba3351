package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxBlockIDLength bounds block identifiers; UUIDs use 36.
const maxBlockIDLength = 128

// ValidateBlockID validates a block identifier.
//
// Rules:
//   - No empty IDs
//   - Maximum length of 128 characters
//   - No control characters or whitespace
func ValidateBlockID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidBlock, "block id cannot be empty")
	}

	if len(id) > maxBlockIDLength {
		return New(ErrCodeInvalidBlock, "block id too long (max %d characters)", maxBlockIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidBlock, "block id %q contains whitespace or control characters", id)
		}
	}

	return nil
}

// ValidatePath validates a board, script or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// Supported file formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatSVG  = "svg"
)

// ValidateFormat checks that format is one of allowed (case-insensitive).
func ValidateFormat(format string, allowed ...string) error {
	f := strings.ToLower(strings.TrimSpace(format))
	for _, a := range allowed {
		if f == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of: %s)", format, strings.Join(allowed, ", "))
}

// ValidateFinite rejects NaN and infinite numeric input.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number, got %v", name, v)
	}
	return nil
}
