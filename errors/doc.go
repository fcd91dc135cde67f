// Package errors provides the classified-error system shared by
// ephyscore's metadata, channel, event, and codec packages.
//
// # Overview
//
// Every fault this module can raise is a programming or data-shape
// fault: a missing descriptor, a virtual-channel index out of range, a
// payload shorter than the descriptor's declared size, a malformed
// wire message. None of these are retryable, so every fault the module
// raises is wrapped with WrapInvalid and classifies as ErrorInvalid (a
// bare ErrInvalidConfig or ErrMissingConfig, unwrapped, classifies as
// ErrorFatal). The three-class shape (Transient/
// Invalid/Fatal) is kept rather than collapsed to a plain error
// because it is the shared error vocabulary of the surrounding
// acquisition framework this module plugs into - callers that already
// branch on errors.IsInvalid/IsFatal keep working unchanged, and the
// package still composes with errors.Is/errors.As.
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapInvalid(err, "TTLEvent", "New", "channel out of range")
//	errors.WrapFatal(err, "Codec", "Deserialize", "descriptor lookup")
//	errors.WrapTransient(err, "Component", "Method", "action")
//
// The generic Wrap() function preserves the original error's
// classification; the Wrap* variants set it.
//
// # Checking classification
//
//	if errors.IsInvalid(err) {
//	    // drop the event, this is a caller bug or bad wire data
//	}
package errors
