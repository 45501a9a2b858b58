package handler

import (
	"time"

	"recruit/internal/domain/entity"
	"recruit/internal/usecase"

	"github.com/google/uuid"
)

// --- Requests ---

type SendOtpRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role" validate:"required,oneof=candidate recruiter"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Otp      string `json:"otp" validate:"required"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name" validate:"max=255"`
	Role     string `json:"role" validate:"required,oneof=candidate recruiter"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is only read when the refresh cookie is absent.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type GoogleSignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
	Role    string `json:"role" validate:"omitempty,oneof=candidate recruiter"`
}

type RequestEmailUpdateRequest struct {
	NewEmail string `json:"new_email" validate:"required,email,max=255"`
}

type VerifyEmailUpdateRequest struct {
	NewEmail string `json:"new_email" validate:"required,email,max=255"`
	Otp      string `json:"otp" validate:"required"`
}

type SetUserActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// --- Responses ---

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FullName  string    `json:"full_name,omitempty"`
	Provider  string    `json:"provider"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user"`
}

type OtpSentResponse struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UserListResponse struct {
	Users  []*UserResponse `json:"users"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role.String(),
		FullName:  user.FullName,
		Provider:  user.Provider.String(),
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}

func toOtpSentResponse(out *usecase.SendOtpOutput) *OtpSentResponse {
	return &OtpSentResponse{Email: out.Email, ExpiresAt: out.ExpiresAt}
}
