package valueobject

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// DefaultOtpLength is used when no length is configured.
const DefaultOtpLength = 6

// ErrOtpInvalidFormat is returned for codes that are not all digits of the expected length.
var ErrOtpInvalidFormat = errors.New("verification code has an invalid format")

// OtpCode is a numeric one-time code.
type OtpCode struct {
	value string
}

// GenerateOtpCode returns a uniformly random code of length digits.
func GenerateOtpCode(length int) (OtpCode, error) {
	if length <= 0 {
		length = DefaultOtpLength
	}

	var b strings.Builder
	b.Grow(length)

	ten := big.NewInt(10)
	for range length {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return OtpCode{}, errors.Wrap(err, "failed to generate otp digit")
		}
		b.WriteByte(byte('0' + n.Int64()))
	}

	return OtpCode{value: b.String()}, nil
}

// NewOtpCode validates a client-supplied code.
func NewOtpCode(raw string, length int) (OtpCode, error) {
	if length <= 0 {
		length = DefaultOtpLength
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return OtpCode{}, ErrTokenRequired
	}

	if len(value) != length {
		return OtpCode{}, ErrOtpInvalidFormat
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return OtpCode{}, ErrOtpInvalidFormat
		}
	}

	return OtpCode{value: value}, nil
}

func (c OtpCode) String() string {
	return c.value
}

func (c OtpCode) Equals(other OtpCode) bool {
	return c.value == other.value
}
