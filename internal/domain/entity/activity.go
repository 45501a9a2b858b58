package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity actions recorded by the auth flows.
const (
	ActionUserRegistered      = "user.registered"
	ActionUserLoggedIn        = "user.logged_in"
	ActionUserLoggedOut       = "user.logged_out"
	ActionTokenRefreshed      = "user.token_refreshed"
	ActionPasswordResetSent   = "user.password_reset_requested"
	ActionPasswordReset       = "user.password_reset"
	ActionEmailUpdated        = "user.email_updated"
	ActionUserActivated       = "user.activated"
	ActionUserDeactivated     = "user.deactivated"
	ActionSocialLoginAccepted = "user.social_login"
)

// ActivityEvent is an audit record. UserID is nil for anonymous events.
type ActivityEvent struct {
	ID         uuid.UUID
	UserID     *uuid.UUID
	Action     string
	EntityType string
	EntityID   string
	Metadata   map[string]any
	CreatedAt  time.Time
}
