// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"recruit/config"
	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"
	"recruit/internal/domain/service"
	"recruit/internal/domain/valueobject"
	"recruit/internal/usecase"
	"recruit/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultOtpTTL   = 10 * time.Minute
	defaultResetTTL = time.Hour

	// timingPassword is hashed once and compared against when a login names
	// an unknown account.
	timingPassword = "timing-equalizer-password"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	otpRepo      repository.OTPRepository
	resetRepo    repository.PasswordResetRepository
	hasher       service.SecretHasher
	tokenService service.TokenService
	googleAuth   service.OAuthAuthService
	mail         service.MailDispatcher
	tracker      service.ActivityTracker
	logger       *slog.Logger

	otpLength       int
	otpTTL          time.Duration
	resetTTL        time.Duration
	frontendBaseURL string
	now             func() time.Time

	timingMu   sync.Mutex
	timingHash string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	AuthRepo          repository.AuthRepository
	OTPRepo           repository.OTPRepository
	PasswordResetRepo repository.PasswordResetRepository
	Hasher            service.SecretHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService `optional:"true"`
	MailDispatcher    service.MailDispatcher
	ActivityTracker   service.ActivityTracker
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return newAuthService(params)
}

func newAuthService(params AuthServiceParams) *authService {
	srv := &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		authRepo:     params.AuthRepo,
		otpRepo:      params.OTPRepo,
		resetRepo:    params.PasswordResetRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		googleAuth:   params.GoogleAuthService,
		mail:         params.MailDispatcher,
		tracker:      params.ActivityTracker,
		logger:       params.Logger,
		otpLength:    valueobject.DefaultOtpLength,
		otpTTL:       defaultOtpTTL,
		resetTTL:     defaultResetTTL,
		now:          time.Now,
	}

	if cfg := params.Config; cfg != nil {
		if cfg.OTP != nil {
			if cfg.OTP.Length > 0 {
				srv.otpLength = cfg.OTP.Length
			}
			if cfg.OTP.TTL > 0 {
				srv.otpTTL = cfg.OTP.TTL
			}
		}
		if cfg.PasswordReset != nil {
			if cfg.PasswordReset.TTL > 0 {
				srv.resetTTL = cfg.PasswordReset.TTL
			}
			srv.frontendBaseURL = cfg.PasswordReset.FrontendBaseURL
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Registration ---

// SendOtp issues a registration code for (email, role). A later call for the
// same pair supersedes the earlier code.
func (srv *authService) SendOtp(ctx context.Context, input *usecase.SendOtpInput) (*usecase.SendOtpOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}
	if !input.Role.IsSelfRegistrable() {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("role cannot self-register")
	}

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email is already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	return srv.issueOtp(ctx, email, input.Role, otpMail)
}

// issueOtp stores a fresh code and mails it. The record is persisted before
// dispatch, so a dispatch failure returns both the output and an error.
func (srv *authService) issueOtp(
	ctx context.Context,
	email string,
	role entity.Role,
	compose func(to, code string, ttl time.Duration) *service.Mail,
) (*usecase.SendOtpOutput, error) {
	code, err := valueobject.GenerateOtpCode(srv.otpLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate otp")
	}

	otpHash, err := srv.hasher.Hash(ctx, code.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash otp")
	}

	now := srv.now()
	record := &entity.OTPRecord{
		Email:     email,
		Role:      role,
		OTPHash:   otpHash,
		ExpiresAt: now.Add(srv.otpTTL),
		CreatedAt: now,
	}
	if err := srv.otpRepo.Save(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to save otp")
	}

	output := &usecase.SendOtpOutput{Email: email, ExpiresAt: record.ExpiresAt}

	if err := srv.mail.Send(ctx, compose(email, code.String(), srv.otpTTL)); err != nil {
		srv.log(ctx).Warn("OTP stored but mail dispatch failed",
			slog.String("email", util.MaskEmail(email)),
			slog.Any("role", role),
			slog.Any("error", err),
		)

		return output, errors.Wrap(domainerrors.ErrNotificationFailed, err.Error())
	}

	srv.log(ctx).Info("OTP issued", slog.String("email", util.MaskEmail(email)), slog.Any("role", role))

	return output, nil
}

// consumeOtp checks code against the current record for (email, role) and
// deletes it. Only one caller can consume a given record.
func (srv *authService) consumeOtp(ctx context.Context, email string, role entity.Role, rawCode string) error {
	code, err := valueobject.NewOtpCode(rawCode, srv.otpLength)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("verification code has an invalid format")
	}

	record, err := srv.otpRepo.FindValid(ctx, email, role, srv.now())
	if errors.Is(err, repository.ErrOTPNotFound) {
		return domainerrors.ErrOtpExpiredOrMissing
	}
	if err != nil {
		return errors.Wrap(err, "failed to load otp")
	}

	if !srv.hasher.Compare(ctx, code.String(), record.OTPHash) {
		return domainerrors.ErrOtpMismatch
	}

	consumed, err := srv.otpRepo.ConsumeIfMatch(ctx, email, role, record.OTPHash)
	if err != nil {
		return errors.Wrap(err, "failed to consume otp")
	}
	if !consumed {
		return domainerrors.ErrOtpExpiredOrMissing
	}

	return nil
}

// VerifyRegistration consumes the registration code and creates a local account.
func (srv *authService) VerifyRegistration(ctx context.Context, input *usecase.VerifyRegistrationInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}
	if !input.Role.IsSelfRegistrable() {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("role cannot self-register")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	if err := srv.consumeOtp(ctx, email, input.Role, input.Otp); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:    email,
		Role:     input.Role,
		FullName: strings.TrimSpace(input.FullName),
		Provider: entity.ProviderTypeLocal,
		Active:   true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return errors.Wrap(repoFactory.NewAuthRepository().CreateAuthentication(ctx, &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeLocal,
			ProviderUserID: email,
			PasswordHash:   passwordHash,
		}), "failed to create credential")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to register user", slog.String("email", util.MaskEmail(email)), slog.Any("error", err))

		return nil, err
	}

	output, err := srv.issueSession(user)
	if err != nil {
		return nil, err
	}

	srv.track(ctx, &user.ID, entity.ActionUserRegistered, map[string]any{"role": string(user.Role)})
	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID), slog.Any("role", user.Role))

	return output, nil
}

// --- Login & session ---

// Login authenticates with email and password. Unknown accounts, social-only
// accounts and wrong passwords all yield ErrInvalidCredentials.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.equalizeTiming(ctx, input.Password)

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.CanUsePassword() {
		srv.equalizeTiming(ctx, input.Password)

		return nil, domainerrors.ErrInvalidCredentials
	}

	auth, err := srv.authRepo.FindAuthenticationByUserIDAndProvider(ctx, user.ID, entity.ProviderTypeLocal)
	if errors.Is(err, repository.ErrAuthNotFound) {
		srv.equalizeTiming(ctx, input.Password)

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find credential")
	}

	if !srv.hasher.Compare(ctx, input.Password, auth.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("email", util.MaskEmail(email)))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.Active {
		return nil, domainerrors.ErrAccountDisabled
	}

	output, err := srv.issueSession(user)
	if err != nil {
		return nil, err
	}

	srv.track(ctx, &user.ID, entity.ActionUserLoggedIn, nil)

	return output, nil
}

// equalizeTiming spends one bcrypt comparison so that unknown accounts take
// as long to reject as wrong passwords.
func (srv *authService) equalizeTiming(ctx context.Context, password string) {
	if hash := srv.loadTimingHash(ctx); hash != "" {
		srv.hasher.Compare(ctx, password, hash)
	}
}

// loadTimingHash keeps the timing hash once it has been computed. A failed
// attempt is retried on the next call.
func (srv *authService) loadTimingHash(ctx context.Context) string {
	srv.timingMu.Lock()
	defer srv.timingMu.Unlock()

	if srv.timingHash != "" {
		return srv.timingHash
	}

	hash, err := srv.hasher.Hash(context.WithoutCancel(ctx), timingPassword)
	if err != nil {
		srv.log(ctx).Warn("Failed to prepare timing hash", slog.Any("error", err))

		return ""
	}
	srv.timingHash = hash

	return hash
}

// RefreshToken mints a new access token from a valid refresh token. The
// refresh token itself is returned to the client unchanged.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	token, err := valueobject.NewRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidOrExpiredToken
	}

	claims, err := srv.tokenService.VerifyRefreshToken(token.String())
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidOrExpiredToken
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidOrExpiredToken
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.Active {
		return nil, domainerrors.ErrAccountDisabled
	}

	accessToken, err := srv.tokenService.IssueAccessToken(service.Subject{UserID: user.ID, Role: user.Role})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.track(ctx, &user.ID, entity.ActionTokenRefreshed, nil)

	return &usecase.RefreshTokenOutput{AccessToken: accessToken, User: user}, nil
}

// Logout is stateless: tokens stay valid until expiry. The HTTP layer clears
// the refresh cookie.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	srv.track(ctx, &userID, entity.ActionUserLoggedOut, nil)

	return nil
}

func (srv *authService) issueSession(user *entity.User) (*usecase.AuthOutput, error) {
	subject := service.Subject{UserID: user.ID, Role: user.Role}

	accessToken, err := srv.tokenService.IssueAccessToken(subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.IssueRefreshToken(subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// --- Password reset ---

// ForgotPassword mails a reset link to active local accounts. Unknown,
// inactive and social-only addresses get the same nil result with no side
// effects.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Debug("Password reset requested for unknown email", slog.String("email", util.MaskEmail(email)))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}
	if !user.CanUsePassword() || !user.Active {
		return nil
	}

	token, err := valueobject.GenerateResetToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	now := srv.now()
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.NewPasswordResetRepository()
		if err := resetRepo.DeleteByUserID(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to clear previous resets")
		}

		return errors.Wrap(resetRepo.Create(ctx, &entity.PasswordReset{
			UserID:    user.ID,
			TokenHash: util.HashToken(token.String()),
			ExpiresAt: now.Add(srv.resetTTL),
			CreatedAt: now,
		}), "failed to create reset")
	})
	if err != nil {
		return err
	}

	srv.track(ctx, &user.ID, entity.ActionPasswordResetSent, nil)

	link := resetLink(srv.frontendBaseURL, token.String())
	if err := srv.mail.Send(ctx, passwordResetMail(email, link, srv.resetTTL)); err != nil {
		srv.log(ctx).Warn("Reset stored but mail dispatch failed",
			slog.Any("userID", user.ID),
			slog.Any("error", err),
		)

		return errors.Wrap(domainerrors.ErrNotificationFailed, err.Error())
	}

	return nil
}

// ResetPassword consumes a reset token and replaces the local password. All
// of the user's outstanding resets are removed with it.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	token, err := valueobject.NewResetToken(input.Token)
	if err != nil {
		return domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	reset, err := srv.resetRepo.FindByToken(ctx, token.String())
	if errors.Is(err, repository.ErrResetNotFound) {
		return domainerrors.ErrTokenNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find reset")
	}

	if reset.IsExpired(srv.now()) {
		if _, err := srv.resetRepo.ConsumeByToken(ctx, token.String()); err != nil {
			srv.log(ctx).Warn("Failed to delete expired reset", slog.Any("error", err))
		}

		return domainerrors.ErrTokenExpired
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	passwordHash, err := srv.hasher.Hash(ctx, input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.NewPasswordResetRepository()

		consumed, err := resetRepo.ConsumeByToken(ctx, token.String())
		if err != nil {
			return errors.Wrap(err, "failed to consume reset")
		}
		if !consumed {
			return domainerrors.ErrTokenNotFound
		}

		if err := repoFactory.NewAuthRepository().UpdatePasswordHash(ctx, reset.UserID, passwordHash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return errors.Wrap(resetRepo.DeleteByUserID(ctx, reset.UserID), "failed to clear resets")
	})
	if err != nil {
		return err
	}

	srv.track(ctx, &reset.UserID, entity.ActionPasswordReset, nil)
	srv.log(ctx).Info("Password reset", slog.Any("userID", reset.UserID))

	return nil
}

// --- Email update ---

// RequestEmailUpdate sends a code to newEmail keyed by (newEmail, role).
func (srv *authService) RequestEmailUpdate(ctx context.Context, input *usecase.RequestEmailUpdateInput) (*usecase.SendOtpOutput, error) {
	newEmail := entity.NormalizeEmail(input.NewEmail)
	if newEmail == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("new email is required")
	}

	user, err := srv.loadUserForRole(ctx, input.UserID, input.Role)
	if err != nil {
		return nil, err
	}
	if !user.CanUsePassword() {
		return nil, domainerrors.ErrProviderMismatch.WrapMessage("email is managed by the sign-in provider")
	}
	if user.Email == newEmail {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("new email matches the current one")
	}

	_, err = srv.userRepo.FindByEmail(ctx, newEmail)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email is already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	return srv.issueOtp(ctx, newEmail, input.Role, emailUpdateMail)
}

// VerifyEmailUpdate consumes the code sent to newEmail and moves the account
// (and its local credential) to that address.
func (srv *authService) VerifyEmailUpdate(ctx context.Context, input *usecase.VerifyEmailUpdateInput) (*entity.User, error) {
	newEmail := entity.NormalizeEmail(input.NewEmail)
	if newEmail == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("new email is required")
	}

	user, err := srv.loadUserForRole(ctx, input.UserID, input.Role)
	if err != nil {
		return nil, err
	}

	if err := srv.consumeOtp(ctx, newEmail, input.Role, input.Otp); err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().UpdateEmail(ctx, user.ID, newEmail); err != nil {
			return errors.Wrap(err, "failed to update email")
		}

		err := repoFactory.NewAuthRepository().UpdateProviderUserID(ctx, user.ID, entity.ProviderTypeLocal, newEmail)
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to update credential")
	})
	if err != nil {
		return nil, err
	}

	srv.track(ctx, &user.ID, entity.ActionEmailUpdated, map[string]any{"from": util.MaskEmail(user.Email)})

	user.Email = newEmail
	user.UpdatedAt = srv.now()

	return user, nil
}

func (srv *authService) loadUserForRole(ctx context.Context, userID uuid.UUID, role entity.Role) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Role != role {
		return nil, domainerrors.ErrForbidden.WrapMessage("role does not match account")
	}
	if !user.Active {
		return nil, domainerrors.ErrAccountDisabled
	}

	return user, nil
}

// --- Social sign-in ---

// GoogleSignIn logs in, or creates, the account linked to a Google identity.
// An email already registered with a password is never linked implicitly.
func (srv *authService) GoogleSignIn(ctx context.Context, input *usecase.GoogleSignInInput) (*usecase.AuthOutput, error) {
	if srv.googleAuth == nil {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("google sign-in is not configured")
	}

	identity, err := srv.googleAuth.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Info("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid
	}

	auth, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, identity.ID)
	switch {
	case err == nil:
		return srv.loginLinkedAccount(ctx, auth.UserID)
	case !errors.Is(err, repository.ErrAuthNotFound):
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	email := entity.NormalizeEmail(identity.Email)
	_, err = srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrProviderMismatch
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleCandidate
	}
	if !role.IsSelfRegistrable() {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("role cannot self-register")
	}

	user := &entity.User{
		Email:    email,
		Role:     role,
		FullName: identity.Name,
		Provider: entity.ProviderTypeGoogle,
		Active:   true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return errors.Wrap(repoFactory.NewAuthRepository().CreateAuthentication(ctx, &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeGoogle,
			ProviderUserID: identity.ID,
		}), "failed to create credential")
	})
	if err != nil {
		return nil, err
	}

	output, err := srv.issueSession(user)
	if err != nil {
		return nil, err
	}

	srv.track(ctx, &user.ID, entity.ActionUserRegistered, map[string]any{"role": string(role), "provider": string(entity.ProviderTypeGoogle)})

	return output, nil
}

func (srv *authService) loginLinkedAccount(ctx context.Context, userID uuid.UUID) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find linked user")
	}
	if !user.Active {
		return nil, domainerrors.ErrAccountDisabled
	}

	output, err := srv.issueSession(user)
	if err != nil {
		return nil, err
	}

	srv.track(ctx, &user.ID, entity.ActionSocialLoginAccepted, map[string]any{"provider": string(entity.ProviderTypeGoogle)})

	return output, nil
}

func (srv *authService) track(ctx context.Context, userID *uuid.UUID, action string, metadata map[string]any) {
	event := entity.ActivityEvent{
		UserID:     userID,
		Action:     action,
		EntityType: "user",
		Metadata:   metadata,
		CreatedAt:  srv.now(),
	}
	if userID != nil {
		event.EntityID = userID.String()
	}

	srv.tracker.Track(ctx, event)
}
