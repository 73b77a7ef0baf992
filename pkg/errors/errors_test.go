package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidRecord, "test message: %s", "value")

	if err.Code != ErrCodeInvalidRecord {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidRecord)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_RECORD: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWithSubject(t *testing.T) {
	err := New(ErrCodeDuplicateID, "duplicate individual id").WithSubject("p3")

	if err.Subject != "p3" {
		t.Errorf("Subject = %v, want %v", err.Subject, "p3")
	}

	expected := "DUPLICATE_ID: duplicate individual id [p3]"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}

	if got := Subject(err); got != "p3" {
		t.Errorf("Subject() = %v, want %v", got, "p3")
	}

	if got := Subject(errors.New("plain")); got != "" {
		t.Errorf("Subject() = %v, want empty", got)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeConvertFailed, cause, "failed to convert")

	if err.Code != ErrCodeConvertFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeConvertFailed)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidRecord, "test"),
			code:     ErrCodeInvalidRecord,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidRecord, "test"),
			code:     ErrCodeRenderFailed,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeRenderFailed, New(ErrCodeInvalidRecord, "inner"), "outer"),
			code:     ErrCodeRenderFailed,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidRecord,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidRecord,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeUnknownReference, "test"),
			expected: ErrCodeUnknownReference,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidRecord, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "Error type with subject",
			err:      New(ErrCodeMissingField, "age_at_diagnosis missing").WithSubject("p7"),
			expected: "age_at_diagnosis missing [p7]",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "duplicate id",
			err:      New(ErrCodeDuplicateID, "dup"),
			expected: true,
		},
		{
			name:     "generation conflict",
			err:      New(ErrCodeGenerationConflict, "conflict"),
			expected: true,
		},
		{
			name:     "record too large",
			err:      New(ErrCodeRecordTooLarge, "too big"),
			expected: true,
		},
		{
			name:     "render failure",
			err:      New(ErrCodeRenderFailed, "boom"),
			expected: false,
		},
		{
			name:     "convert failure",
			err:      New(ErrCodeConvertFailed, "boom"),
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.expected {
				t.Errorf("IsValidation() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsRender(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "render failure",
			err:      New(ErrCodeRenderFailed, "boom"),
			expected: true,
		},
		{
			name:     "convert failure",
			err:      Wrap(ErrCodeConvertFailed, errors.New("rsvg"), "convert png"),
			expected: true,
		},
		{
			name:     "write failure",
			err:      New(ErrCodeWriteFailed, "disk full"),
			expected: true,
		},
		{
			name:     "duplicate id",
			err:      New(ErrCodeDuplicateID, "dup"),
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRender(tt.err); got != tt.expected {
				t.Errorf("IsRender() = %v, want %v", got, tt.expected)
			}
		})
	}
}
