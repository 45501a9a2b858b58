// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account on the platform. Accounts are never hard-deleted;
// Active is flipped instead.
type User struct {
	ID        uuid.UUID
	Email     string // Always stored normalized, see NormalizeEmail.
	Role      Role
	FullName  string
	Provider  ProviderType // How the account signs in. Local accounts have a password credential.
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanUsePassword reports whether password login applies to this account.
func (u *User) CanUsePassword() bool {
	return u.Provider == ProviderTypeLocal
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserFilter narrows admin listings. Nil fields are not filtered on.
type UserFilter struct {
	Role   *Role
	Active *bool
	Limit  int
	Offset int
}
