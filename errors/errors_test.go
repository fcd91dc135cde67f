package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorTransient, "transient"},
		{ErrorInvalid, "invalid"},
		{ErrorFatal, "fatal"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.class.String())
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"context deadline exceeded", context.DeadlineExceeded, true},
		{"context canceled", context.Canceled, true},
		{"descriptor missing", ErrDescriptorMissing, false},
		{"timeout in message", fmt.Errorf("operation timeout occurred"), true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, IsTransient(test.err))
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"invalid config", ErrInvalidConfig, true},
		{"missing config", ErrMissingConfig, true},
		{"malformed message", ErrMalformedMessage, false},
		{"fatal in message", fmt.Errorf("fatal system error occurred"), true},
		{"classified fatal", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, IsFatal(test.err))
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"invalid data", ErrInvalidData, true},
		{"fatal error", ErrInvalidConfig, false},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, true},
		{"classified transient", &ClassifiedError{Class: ErrorTransient, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, IsInvalid(test.err))
		})
	}
}

// Every ErrorKind named by the event-factory and codec contract must
// classify as ErrorInvalid once wrapped - the core never retries and
// never treats a data-shape fault as fatal-to-the-process.
func TestDomainErrorsClassifyAsInvalid(t *testing.T) {
	domainErrors := []error{
		ErrDescriptorMissing,
		ErrTypeMismatch,
		ErrChannelOutOfRange,
		ErrPayloadTooSmall,
		ErrPayloadTooLarge,
		ErrTextTooLong,
		ErrMetadataShapeMismatch,
		ErrMetadataPresent,
		ErrBufferNotReady,
		ErrBufferShapeMismatch,
		ErrMalformedMessage,
	}

	for _, baseErr := range domainErrors {
		wrapped := WrapInvalid(baseErr, "Component", "Method", "action")
		assert.True(t, IsInvalid(wrapped), "%v should classify as invalid", baseErr)
		assert.True(t, errors.Is(wrapped, baseErr))
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"nil error", nil, ErrorInvalid},
		{"invalid config", ErrInvalidConfig, ErrorFatal},
		{"invalid data", ErrInvalidData, ErrorInvalid},
		{"unknown error", fmt.Errorf("unknown error"), ErrorInvalid},
		{"classified error", &ClassifiedError{Class: ErrorFatal, Err: fmt.Errorf("test")}, ErrorFatal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Classify(test.err))
		})
	}
}

func TestClassifiedError(t *testing.T) {
	baseErr := fmt.Errorf("base error")
	ce := newClassified(ErrorInvalid, baseErr, "testComponent", "testOperation", "custom message")

	assert.Equal(t, ErrorInvalid, ce.Class)
	assert.Equal(t, "testComponent", ce.Component)
	assert.Equal(t, "testOperation", ce.Operation)
	assert.Equal(t, "custom message", ce.Error())
	assert.True(t, errors.Is(ce, baseErr))
}

func TestClassifiedError_NoMessage(t *testing.T) {
	baseErr := fmt.Errorf("base error")
	ce := newClassified(ErrorInvalid, baseErr, "testComponent", "testOperation", "")
	assert.Equal(t, "base error", ce.Error())
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		component string
		method    string
		action    string
		expected  string
	}{
		{"nil error", nil, "component", "method", "action", ""},
		{
			"basic wrap",
			fmt.Errorf("original error"),
			"TTLEvent",
			"New",
			"validate channel",
			"TTLEvent.New: validate channel failed: original error",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Wrap(test.err, test.component, test.method, test.action)
			if test.expected == "" {
				assert.Nil(t, result)
				return
			}
			require := result
			assert.NotNil(t, require)
			assert.Equal(t, test.expected, result.Error())
		})
	}
}

func TestWrapClassified(t *testing.T) {
	baseErr := fmt.Errorf("original error")

	tests := []struct {
		name     string
		wrapFunc func(error, string, string, string) error
		class    ErrorClass
	}{
		{"WrapTransient", WrapTransient, ErrorTransient},
		{"WrapFatal", WrapFatal, ErrorFatal},
		{"WrapInvalid", WrapInvalid, ErrorInvalid},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.wrapFunc(baseErr, "component", "method", "action")

			var ce *ClassifiedError
			require_ := errors.As(result, &ce)
			assert.True(t, require_, "result should be a ClassifiedError")

			assert.Equal(t, test.class, ce.Class)
			assert.Equal(t, "component", ce.Component)
			assert.Equal(t, "method", ce.Operation)
			assert.True(t, strings.Contains(ce.Error(), "component.method: action failed"))
		})
	}
}

func TestStandardErrors(t *testing.T) {
	standardErrors := []error{
		ErrDescriptorMissing,
		ErrTypeMismatch,
		ErrChannelOutOfRange,
		ErrPayloadTooSmall,
		ErrPayloadTooLarge,
		ErrTextTooLong,
		ErrMetadataShapeMismatch,
		ErrMetadataPresent,
		ErrBufferNotReady,
		ErrBufferShapeMismatch,
		ErrMalformedMessage,
		ErrInvalidData,
		ErrInvalidConfig,
		ErrMissingConfig,
		ErrConfigNotFound,
	}

	for i, err := range standardErrors {
		assert.NotNilf(t, err, "standard error at index %d is nil", i)
		assert.NotEmpty(t, err.Error())
	}
}

func BenchmarkClassify(b *testing.B) {
	err := ErrMalformedMessage
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Classify(err)
	}
}

func BenchmarkWrap(b *testing.B) {
	err := fmt.Errorf("base error")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(err, "component", "method", "action")
	}
}
