package entity

import "time"

// OTPRecord is an outstanding one-time code for an (email, role) pair.
// A new issuance for the same pair replaces the previous record.
type OTPRecord struct {
	Email     string
	Role      Role
	OTPHash   string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the record is past its expiry at now.
// A record is still valid at exactly ExpiresAt.
func (r *OTPRecord) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
