// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "context"

// SecretHasher hashes and verifies user secrets: passwords and one-time codes.
type SecretHasher interface {
	// Hash returns a salted one-way hash of secret.
	Hash(ctx context.Context, secret string) (string, error)

	// Compare reports whether secret matches hash. Malformed hashes never match.
	Compare(ctx context.Context, secret, hash string) bool

	// ValidatePasswordStrength checks a candidate password against the configured policy.
	ValidatePasswordStrength(password string) error
}
