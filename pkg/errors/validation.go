package errors

import (
	"fmt"
	"strings"
	"unicode"
)

// Warning is a tolerated-input finding. Warnings report values the
// normalizer dropped or coerced without aborting the run, so callers can
// surface them next to the rendered output.
type Warning struct {
	Code    Code   // UNKNOWN_STATUS, UNKNOWN_RELATIONSHIP, ...
	Subject string // ID of the individual or relationship concerned
	Message string // Human-readable description of what was dropped
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	if w.Subject != "" {
		return fmt.Sprintf("%s: %s [%s]", w.Code, w.Message, w.Subject)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// Warningf creates a Warning with a formatted message.
func Warningf(code Code, subject, format string, args ...any) Warning {
	return Warning{
		Code:    code,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	}
}

// ValidateIdentifier validates an individual or relationship identifier.
// Identifiers end up in SVG element IDs and log output, so the rules are
// intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - Maximum length of 64 characters
func ValidateIdentifier(id string) error {
	if id == "" {
		return New(ErrCodeMissingField, "identifier cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidRecord, "identifier too long (max 64 characters): %q", id).WithSubject(id)
	}

	for _, r := range id {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidRecord, "identifier contains control characters").WithSubject(id)
		}
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output path.
// It rejects empty paths and paths with embedded null bytes; everything else
// is left to the operating system.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "output path contains invalid characters")
	}

	return nil
}
