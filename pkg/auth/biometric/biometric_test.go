package biometric

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected ErrorKind
	}{
		{
			name:     "user cancelled the prompt",
			message:  "Authentication was cancelled by the user",
			expected: KindCancelled,
		},
		{
			name:     "user cancel wording",
			message:  "user cancel",
			expected: KindCancelled,
		},
		{
			name:     "locked out after failures",
			message:  "Biometry is locked: too many attempts",
			expected: KindLockedOut,
		},
		{
			name:     "too many attempts wording",
			message:  "Too many attempts. Try again later.",
			expected: KindLockedOut,
		},
		{
			name:     "not enrolled",
			message:  "The user is not enrolled in biometry",
			expected: KindNotEnrolled,
		},
		{
			name:     "no biometric wording",
			message:  "no biometric hardware detected",
			expected: KindNotEnrolled,
		},
		{
			name:     "unavailable",
			message:  "Biometry is not available on this device",
			expected: KindUnavailable,
		},
		{
			name:     "anything else is unknown",
			message:  "sensor returned garbage",
			expected: KindUnknown,
		},
		{
			name:     "empty message is unknown",
			message:  "",
			expected: KindUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.message))
		})
	}
}

func TestNewError(t *testing.T) {
	err := NewError("Authentication was cancelled")
	assert.Equal(t, KindCancelled, err.Kind)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "cancelled", KindCancelled.String())
	assert.Equal(t, "locked_out", KindLockedOut.String())
	assert.Equal(t, "not_enrolled", KindNotEnrolled.String())
	assert.Equal(t, "unavailable", KindUnavailable.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestInsecureVerifier(t *testing.T) {
	v := InsecureVerifier{}
	ctx := context.Background()

	assert.True(t, v.CheckSupport(ctx))
	ok, err := v.Authenticate(ctx, "test")
	assert.NoError(t, err)
	assert.True(t, ok)
}
