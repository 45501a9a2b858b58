// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"recruit/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SendOtpInput identifies who a registration code is for.
type SendOtpInput struct {
	Email string
	Role  entity.Role
}

// VerifyRegistrationInput completes an OTP registration.
type VerifyRegistrationInput struct {
	Email    string
	Otp      string
	Password string
	FullName string
	Role     entity.Role
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the presented refresh token.
type RefreshTokenInput struct {
	RefreshToken string
}

// ForgotPasswordInput starts a password reset.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput completes a password reset.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// RequestEmailUpdateInput asks for a verification code at a new address.
type RequestEmailUpdateInput struct {
	UserID   uuid.UUID
	Role     entity.Role
	NewEmail string
}

// VerifyEmailUpdateInput confirms a new address with its code.
type VerifyEmailUpdateInput struct {
	UserID   uuid.UUID
	Role     entity.Role
	NewEmail string
	Otp      string
}

// GoogleSignInInput carries a Google ID token. Role is only used when the
// sign-in creates a new account.
type GoogleSignInInput struct {
	IDToken string
	Role    entity.Role
}

// --- Output DTOs ---

// SendOtpOutput reports where a code was sent and until when it is valid.
type SendOtpOutput struct {
	Email     string
	ExpiresAt time.Time
}

// AuthOutput returns a fresh session.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns a new access token. The refresh token is not rotated.
type RefreshTokenOutput struct {
	AccessToken string
	User        *entity.User
}

// AuthUsecase covers the credential and token lifecycle.
type AuthUsecase interface {
	SendOtp(ctx context.Context, input *SendOtpInput) (*SendOtpOutput, error)
	VerifyRegistration(ctx context.Context, input *VerifyRegistrationInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	RequestEmailUpdate(ctx context.Context, input *RequestEmailUpdateInput) (*SendOtpOutput, error)
	VerifyEmailUpdate(ctx context.Context, input *VerifyEmailUpdateInput) (*entity.User, error)
	GoogleSignIn(ctx context.Context, input *GoogleSignInInput) (*AuthOutput, error)
}
