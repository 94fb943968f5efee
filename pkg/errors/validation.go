package errors

import (
	"strings"
	"unicode"
)

// ValidateID validates a column or grid identifier from a workspace definition.
// Identifiers end up in cache keys, DOT node names and HTTP paths, so the
// rules are conservative:
//   - No empty identifiers
//   - No whitespace or control characters
//   - No path separators
//   - Maximum length of 128 characters
func ValidateID(kind, id string) error {
	if id == "" {
		return New(ErrCodeInvalidConfig, "%s id cannot be empty", kind)
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidConfig, "%s id %q too long (max 128 characters)", kind, id)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidConfig, "%s id %q contains whitespace or control characters", kind, id)
		}
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidConfig, "%s id %q cannot contain path separators", kind, id)
	}

	return nil
}

// ValidatePositive rejects zero, negative and NaN dimensions.
func ValidatePositive(code Code, what string, v float64) error {
	if !(v > 0) {
		return New(code, "%s must be positive, got %v", what, v)
	}
	return nil
}
