package errors

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// hexColorRegex matches "#RRGGBB", case-insensitive.
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateHexColor checks that s is "#" followed by exactly 6 hex digits.
func ValidateHexColor(s string) error {
	if !hexColorRegex.MatchString(s) {
		return Format("invalid hex color %q: want #RRGGBB", s)
	}
	return nil
}

// ValidateChoice checks that value is one of allowed.
// The code of the returned error is supplied by the caller so the same helper
// serves formats, layout engines and renderer names.
func ValidateChoice(code Code, kind, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return New(code, "unknown %s %q (want one of: %s)", kind, value, strings.Join(allowed, ", "))
}

// ValidateOutputPath validates a file path the CLI is about to write.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not name a directory ("out/")
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q is a directory", path)
	}

	return nil
}

// ValidateRedisURL validates a cache URL for the Redis backend.
func ValidateRedisURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "cache URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "redis://") && !strings.HasPrefix(rawURL, "rediss://") {
		return New(ErrCodeInvalidInput, "cache URL must use redis or rediss scheme")
	}

	return nil
}
