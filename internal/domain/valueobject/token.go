// Package valueobject holds immutable, self-validating wrappers for secrets
// that travel between clients and the auth flows.
package valueobject

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

const (
	resetTokenBytes     = 32
	resetTokenMinLength = 32
)

var (
	// ErrTokenRequired is returned when a token is empty after trimming.
	ErrTokenRequired = errors.New("token is required")
	// ErrTokenInvalidFormat is returned when a token is too short or has characters outside [A-Za-z0-9_-].
	ErrTokenInvalidFormat = errors.New("token has an invalid format")
)

// ResetToken is the opaque secret emailed for a password reset.
type ResetToken struct {
	value string
}

// GenerateResetToken returns a fresh token of 32 random bytes, hex encoded.
func GenerateResetToken() (ResetToken, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return ResetToken{}, errors.Wrap(err, "failed to read random bytes")
	}

	return ResetToken{value: hex.EncodeToString(buf)}, nil
}

// NewResetToken validates a client-supplied reset token.
func NewResetToken(raw string) (ResetToken, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ResetToken{}, ErrTokenRequired
	}

	if len(value) < resetTokenMinLength || !isURLSafe(value) {
		return ResetToken{}, ErrTokenInvalidFormat
	}

	return ResetToken{value: value}, nil
}

func (t ResetToken) String() string {
	return t.value
}

func (t ResetToken) Equals(other ResetToken) bool {
	return t.value == other.value
}

// RefreshToken wraps the refresh JWT presented by a client. Signature and
// expiry are checked by the token service, not here.
type RefreshToken struct {
	value string
}

// NewRefreshToken rejects empty input and otherwise keeps the value as given.
func NewRefreshToken(raw string) (RefreshToken, error) {
	if strings.TrimSpace(raw) == "" {
		return RefreshToken{}, ErrTokenRequired
	}

	return RefreshToken{value: raw}, nil
}

func (t RefreshToken) String() string {
	return t.value
}

func (t RefreshToken) Equals(other RefreshToken) bool {
	return t.value == other.value
}

func isURLSafe(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}

	return true
}
