// Package errors provides standardized error handling patterns for ephyscore components.
// It includes error classification, standard error variables, and helper functions
// for consistent error wrapping and classification across the system.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorTransient represents temporary errors that may be retried
	ErrorTransient ErrorClass = iota
	// ErrorInvalid represents errors due to invalid input or configuration
	ErrorInvalid
	// ErrorFatal represents unrecoverable errors that should stop processing
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorTransient:
		return "transient"
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions. These correspond
// 1:1 to the ErrorKind taxonomy of the event-factory and codec
// contract: every one is a data-shape or programming fault, never
// transient.
var (
	// ErrDescriptorMissing is returned when a factory is called with a nil descriptor.
	ErrDescriptorMissing = errors.New("descriptor missing")
	// ErrTypeMismatch is returned when a factory's event type does not match the descriptor's variant.
	ErrTypeMismatch = errors.New("event type does not match descriptor variant")
	// ErrChannelOutOfRange is returned when a virtual-channel index is outside [0, numChannels).
	ErrChannelOutOfRange = errors.New("virtual channel index out of range")
	// ErrPayloadTooSmall is returned when the caller-supplied payload is smaller than descriptor.dataSize.
	ErrPayloadTooSmall = errors.New("payload smaller than descriptor data size")
	// ErrPayloadTooLarge names a destination buffer too small to hold a serialized event.
	// Serialize allocates its own message, so no function in this module returns it.
	ErrPayloadTooLarge = errors.New("destination buffer too small for serialized event")
	// ErrTextTooLong is returned when a TextEvent's UTF-8 length exceeds descriptor.length.
	ErrTextTooLong = errors.New("text exceeds descriptor length")
	// ErrMetadataShapeMismatch is returned when supplied metadata values don't match the descriptor's event-metadata fields.
	ErrMetadataShapeMismatch = errors.New("metadata values do not match descriptor metadata fields")
	// ErrMetadataPresent is returned when a metadata-less factory is called against a descriptor that declares metadata slots.
	ErrMetadataPresent = errors.New("descriptor declares metadata fields but none were supplied")
	// ErrBufferNotReady is returned when a SpikeBuffer is indexed or consumed after handoff.
	ErrBufferNotReady = errors.New("spike buffer already consumed")
	// ErrBufferShapeMismatch is returned when a SpikeBuffer's channel/sample counts don't match the descriptor consuming it.
	ErrBufferShapeMismatch = errors.New("spike buffer shape does not match descriptor")
	// ErrMalformedMessage is returned when a decode fails one of the codec's structural checks.
	ErrMalformedMessage = errors.New("malformed event message")

	// ErrInvalidData is a general-purpose invalid-input marker, kept for
	// compatibility with code that pattern-matches on it directly.
	ErrInvalidData = errors.New("invalid data format")
	// ErrInvalidConfig is returned by config validation.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrMissingConfig marks an absent required configuration value; no
	// function in this module returns it.
	ErrMissingConfig = errors.New("missing required configuration")
	// ErrConfigNotFound marks a configuration file that cannot be located;
	// config.Load reports a missing file through the wrapped stat error instead.
	ErrConfigNotFound = errors.New("configuration not found")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsTransient checks if an error is transient and should be retried
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorTransient
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range []string{"timeout", "temporary", "unavailable", "busy"} {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// IsFatal checks if an error is fatal and should stop processing
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	if errors.Is(err, ErrMissingConfig) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range []string{"fatal", "corrupted", "invalid config", "missing config"} {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// IsInvalid checks if an error is due to invalid input
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	if errors.Is(err, ErrInvalidData) {
		return true
	}

	return false
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if err == nil {
		return ErrorInvalid
	}

	if IsTransient(err) {
		return ErrorTransient
	}
	if IsFatal(err) {
		return ErrorFatal
	}
	return ErrorInvalid
}

// newClassified creates a new classified error
// This is an internal helper - use WrapTransient(), WrapFatal(), or WrapInvalid() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapTransient wraps an error as transient with context
func WrapTransient(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorTransient, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}
