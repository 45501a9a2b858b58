// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"

	"recruit/config"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// bcrypt ignores input past 72 bytes.
const bcryptMaxPasswordBytes = 72

var defaultForbiddenWords = []string{"password", "admin", "qwerty", "123456", "letmein"}

func defaultPasswordPolicy() config.PasswordStrengthConfig {
	return config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        bcryptMaxPasswordBytes,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
		ForbiddenWords:   defaultForbiddenWords,
	}
}

// bcryptHasher hashes secrets with bcrypt. Hash and Compare hold a semaphore
// slot for the duration of the bcrypt call so CPU-heavy work stays bounded.
type bcryptHasher struct {
	cost   int
	slots  *semaphore.Weighted
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from auth and passwordStrength config.
func NewBcryptHasher(cfg *config.Config) service.SecretHasher {
	cost := bcrypt.DefaultCost
	concurrency := 0
	if cfg != nil && cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
		concurrency = cfg.Auth.HashConcurrency
	}

	policy := defaultPasswordPolicy()
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
		if policy.ForbiddenWords == nil {
			policy.ForbiddenWords = defaultForbiddenWords
		}
	}

	return newBcryptHasher(cost, concurrency, policy)
}

// NewBcryptHasherWithCost returns a hasher with the default password policy.
func NewBcryptHasherWithCost(cost int) service.SecretHasher {
	return newBcryptHasher(cost, 0, defaultPasswordPolicy())
}

func newBcryptHasher(cost, concurrency int, policy config.PasswordStrengthConfig) *bcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	if policy.MaxLength <= 0 || policy.MaxLength > bcryptMaxPasswordBytes {
		policy.MaxLength = bcryptMaxPasswordBytes
	}

	return &bcryptHasher{
		cost:   cost,
		slots:  semaphore.NewWeighted(int64(concurrency)),
		policy: policy,
	}
}

func (h *bcryptHasher) Hash(ctx context.Context, secret string) (string, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(err, "waiting for hash slot")
	}
	defer h.slots.Release(1)

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(hashed), nil
}

func (h *bcryptHasher) Compare(ctx context.Context, secret, hash string) bool {
	if hash == "" {
		return false
	}

	if err := h.slots.Acquire(ctx, 1); err != nil {
		return false
	}
	defer h.slots.Release(1)

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	p := h.policy

	if p.MinLength > 0 && utf8.RuneCountInString(password) < p.MinLength {
		return strengthError(fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}

	if len(password) > p.MaxLength {
		return strengthError(fmt.Sprintf("password must be at most %d bytes long", p.MaxLength))
	}

	if p.RequireLowercase && !h.hasLowercase(password) {
		return strengthError("password must contain at least one lowercase letter")
	}

	if p.RequireUppercase && !h.hasUppercase(password) {
		return strengthError("password must contain at least one uppercase letter")
	}

	if p.RequireNumbers && !h.hasNumbers(password) {
		return strengthError("password must contain at least one number")
	}

	if p.RequireSpecial && !h.hasSpecialChars(password) {
		return strengthError("password must contain at least one special character")
	}

	if h.containsForbiddenWords(password, p.ForbiddenWords) {
		return domainerrors.ErrPasswordForbiddenWords.WrapMessage("password contains forbidden words")
	}

	return nil
}

func strengthError(reason string) error {
	return domainerrors.ErrPasswordStrength.WithDetails(reason).WrapMessage(reason)
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if w != "" && strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}

	return false
}
