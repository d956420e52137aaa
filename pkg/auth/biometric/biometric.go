// Package biometric models device user-verification as an opaque
// capability: request verification, get back success or a typed failure.
// Classification of platform error strings happens here, at the boundary,
// so nothing deeper in the stack matches on message text.
package biometric

import (
	"context"
	"fmt"
	"strings"
)

// ErrorKind classifies a verification failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindCancelled - the user dismissed the prompt
	KindCancelled
	// KindLockedOut - too many failed attempts
	KindLockedOut
	// KindNotEnrolled - no biometric credential is set up on the device
	KindNotEnrolled
	// KindUnavailable - the device has no usable verification capability
	KindUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindCancelled:
		return "cancelled"
	case KindLockedOut:
		return "locked_out"
	case KindNotEnrolled:
		return "not_enrolled"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Error is a typed verification failure.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("biometric verification failed (%s): %s", e.Kind, e.Message)
}

// Classify maps a raw platform failure message to an ErrorKind. The message
// patterns mirror what device biometric layers actually report.
func Classify(message string) ErrorKind {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "cancelled") || strings.Contains(m, "user cancel"):
		return KindCancelled
	case strings.Contains(m, "locked") || strings.Contains(m, "too many attempts"):
		return KindLockedOut
	case strings.Contains(m, "not enrolled") || strings.Contains(m, "no biometric"):
		return KindNotEnrolled
	case strings.Contains(m, "not available"):
		return KindUnavailable
	default:
		return KindUnknown
	}
}

// NewError builds a typed *Error from a raw platform failure message.
func NewError(message string) *Error {
	return &Error{Kind: Classify(message), Message: message}
}

// Verifier is the opaque device verification capability. Gating on it is a
// caller-side policy; the data stores never depend on it.
type Verifier interface {
	// CheckSupport reports whether the device can verify the user at all.
	CheckSupport(ctx context.Context) bool

	// Authenticate prompts the user with the given reason. A clean refusal
	// returns (false, nil) only for cancellation-free denials; failures
	// carry a typed *Error.
	Authenticate(ctx context.Context, reason string) (bool, error)
}

// InsecureVerifier approves every request. Used in environments without a
// device verification capability (development, CI).
type InsecureVerifier struct{}

func (InsecureVerifier) CheckSupport(context.Context) bool { return true }

func (InsecureVerifier) Authenticate(context.Context, string) (bool, error) {
	return true, nil
}

var _ Verifier = InsecureVerifier{}
