package entity

import "github.com/pkg/errors"

// Role is the closed set of account roles.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// ErrUnknownRole is returned by ParseRole for values outside the enumeration.
var ErrUnknownRole = errors.New("unknown role")

func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSelfRegistrable reports whether accounts with this role may sign up on
// their own. Admins are provisioned.
func (r Role) IsSelfRegistrable() bool {
	return r == RoleCandidate || r == RoleRecruiter
}

// ParseRole converts untrusted input into a Role.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", errors.Wrapf(ErrUnknownRole, "%q", s)
	}

	return role, nil
}
