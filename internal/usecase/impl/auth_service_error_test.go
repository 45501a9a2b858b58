package impl

import (
	"context"
	"testing"
	"time"

	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"
	"recruit/internal/domain/service"
	mockRepo "recruit/internal/mocks/repository"
	mockSvc "recruit/internal/mocks/service"
	"recruit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds the mocked collaborators of authService.
type authServiceFixtures struct {
	service      *authService
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	authRepo     *mockRepo.MockAuthRepository
	otpRepo      *mockRepo.MockOTPRepository
	resetRepo    *mockRepo.MockPasswordResetRepository
	hasher       *mockSvc.MockSecretHasher
	tokenService *mockSvc.MockTokenService
	google       *mockSvc.MockOAuthAuthService
	mail         *mockSvc.MockMailDispatcher
	tracker      *mockSvc.MockActivityTracker
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		authRepo:     mockRepo.NewMockAuthRepository(t),
		otpRepo:      mockRepo.NewMockOTPRepository(t),
		resetRepo:    mockRepo.NewMockPasswordResetRepository(t),
		hasher:       mockSvc.NewMockSecretHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		google:       mockSvc.NewMockOAuthAuthService(t),
		mail:         mockSvc.NewMockMailDispatcher(t),
		tracker:      mockSvc.NewMockActivityTracker(t),
	}

	fx.service = newAuthService(AuthServiceParams{
		TxManager:         fx.txManager,
		UserRepo:          fx.userRepo,
		AuthRepo:          fx.authRepo,
		OTPRepo:           fx.otpRepo,
		PasswordResetRepo: fx.resetRepo,
		Hasher:            fx.hasher,
		TokenService:      fx.tokenService,
		GoogleAuthService: fx.google,
		MailDispatcher:    fx.mail,
		ActivityTracker:   fx.tracker,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	})

	return fx
}

// onExecute makes the next transaction run its callback against a mocked factory.
func (fx authServiceFixtures) onExecute(t *testing.T, setup func(factory *mockRepo.MockRepositoryFactory)) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	setup(factory)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAuthService_SendOtp_LookupError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, errors.New("connection reset"))

	out, err := fx.service.SendOtp(ctx, &usecase.SendOtpInput{Email: "ada@example.com", Role: entity.RoleCandidate})

	assert.Nil(t, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to check existing user")
}

func TestAuthService_SendOtp_SaveError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(ctx, mock.AnythingOfType("string")).Return("otp-hash", nil)
	fx.otpRepo.EXPECT().Save(ctx, mock.MatchedBy(func(rec *entity.OTPRecord) bool {
		return rec.Email == "ada@example.com" && rec.Role == entity.RoleCandidate && rec.OTPHash == "otp-hash"
	})).Return(errors.New("redis: connection refused"))

	out, err := fx.service.SendOtp(ctx, &usecase.SendOtpInput{Email: "ada@example.com", Role: entity.RoleCandidate})

	assert.Nil(t, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save otp")
	fx.mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestAuthService_SendOtp_HashError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(ctx, mock.AnythingOfType("string")).Return("", domainerrors.ErrPasswordHashFailed)

	_, err := fx.service.SendOtp(ctx, &usecase.SendOtpInput{Email: "ada@example.com", Role: entity.RoleCandidate})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_VerifyRegistration_CreateConflictRollsBack(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	now := time.Now()
	record := &entity.OTPRecord{Email: "ada@example.com", Role: entity.RoleCandidate, OTPHash: "otp-hash", ExpiresAt: now.Add(time.Minute)}

	fx.hasher.EXPECT().ValidatePasswordStrength(testPassword).Return(nil)
	fx.otpRepo.EXPECT().FindValid(ctx, "ada@example.com", entity.RoleCandidate, mock.AnythingOfType("time.Time")).Return(record, nil)
	fx.hasher.EXPECT().Compare(ctx, "123456", "otp-hash").Return(true)
	fx.otpRepo.EXPECT().ConsumeIfMatch(ctx, "ada@example.com", entity.RoleCandidate, "otp-hash").Return(true, nil)
	fx.hasher.EXPECT().Hash(ctx, testPassword).Return("password-hash", nil)
	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))
	})

	out, err := fx.service.VerifyRegistration(ctx, &usecase.VerifyRegistrationInput{
		Email:    "ada@example.com",
		Otp:      "123456",
		Password: testPassword,
		Role:     entity.RoleCandidate,
	})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	fx.tokenService.AssertNotCalled(t, "IssueAccessToken", mock.Anything)
}

func TestAuthService_VerifyRegistration_LostConsumeRace(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	record := &entity.OTPRecord{Email: "ada@example.com", Role: entity.RoleCandidate, OTPHash: "otp-hash", ExpiresAt: time.Now().Add(time.Minute)}

	fx.hasher.EXPECT().ValidatePasswordStrength(testPassword).Return(nil)
	fx.otpRepo.EXPECT().FindValid(ctx, "ada@example.com", entity.RoleCandidate, mock.Anything).Return(record, nil)
	fx.hasher.EXPECT().Compare(ctx, "123456", "otp-hash").Return(true)
	fx.otpRepo.EXPECT().ConsumeIfMatch(ctx, "ada@example.com", entity.RoleCandidate, "otp-hash").Return(false, nil)

	_, err := fx.service.VerifyRegistration(ctx, &usecase.VerifyRegistrationInput{
		Email:    "ada@example.com",
		Otp:      "123456",
		Password: testPassword,
		Role:     entity.RoleCandidate,
	})

	assert.ErrorIs(t, err, domainerrors.ErrOtpExpiredOrMissing)
}

func TestAuthService_Login_TokenIssueError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleCandidate, Provider: entity.ProviderTypeLocal, Active: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.authRepo.EXPECT().FindAuthenticationByUserIDAndProvider(ctx, user.ID, entity.ProviderTypeLocal).
		Return(&entity.Authentication{UserID: user.ID, Provider: entity.ProviderTypeLocal, PasswordHash: "password-hash"}, nil)
	fx.hasher.EXPECT().Compare(ctx, testPassword, "password-hash").Return(true)
	fx.tokenService.EXPECT().IssueAccessToken(service.Subject{UserID: user.ID, Role: entity.RoleCandidate}).
		Return("", errors.New("signing key unavailable"))

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: testPassword})

	assert.Nil(t, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to issue access token")
}

func TestAuthService_Login_MissingCredential(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleCandidate, Provider: entity.ProviderTypeLocal, Active: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.authRepo.EXPECT().FindAuthenticationByUserIDAndProvider(ctx, user.ID, entity.ProviderTypeLocal).
		Return(nil, repository.ErrAuthNotFound)
	fx.hasher.EXPECT().Hash(mock.Anything, timingPassword).Return("timing-hash", nil).Once()
	fx.hasher.EXPECT().Compare(ctx, testPassword, "timing-hash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: testPassword})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken_ExpiredToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().VerifyRefreshToken("expired.refresh.token").Return(nil, service.ErrTokenExpired)

	out, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "expired.refresh.token"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredToken)
}

func TestAuthService_RefreshToken_DeletedUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().VerifyRefreshToken("valid.refresh.token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleCandidate, Type: service.TokenTypeRefresh}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "valid.refresh.token"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrExpiredToken)
}

func TestAuthService_ForgotPassword_LookupError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, errors.New("connection reset"))

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "ada@example.com"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrNotificationFailed)
	assert.Contains(t, err.Error(), "failed to find user")
}

func TestAuthService_ResetPassword_LostConsumeRace(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	token := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	userID := uuid.New()

	fx.resetRepo.EXPECT().FindByToken(ctx, token).
		Return(&entity.PasswordReset{UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.hasher.EXPECT().ValidatePasswordStrength("N3wPassword!!").Return(nil)
	fx.hasher.EXPECT().Hash(ctx, "N3wPassword!!").Return("password-hash", nil)
	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		resetRepo := mockRepo.NewMockPasswordResetRepository(t)
		factory.EXPECT().NewPasswordResetRepository().Return(resetRepo)
		resetRepo.EXPECT().ConsumeByToken(ctx, token).Return(false, nil)
	})

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: token, NewPassword: "N3wPassword!!"})

	assert.ErrorIs(t, err, domainerrors.ErrTokenNotFound)
}

func TestAuthService_ResetPassword_UpdateError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	token := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	userID := uuid.New()

	fx.resetRepo.EXPECT().FindByToken(ctx, token).
		Return(&entity.PasswordReset{UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
	fx.hasher.EXPECT().ValidatePasswordStrength("N3wPassword!!").Return(nil)
	fx.hasher.EXPECT().Hash(ctx, "N3wPassword!!").Return("password-hash", nil)
	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		resetRepo := mockRepo.NewMockPasswordResetRepository(t)
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().NewPasswordResetRepository().Return(resetRepo)
		factory.EXPECT().NewAuthRepository().Return(authRepo)
		resetRepo.EXPECT().ConsumeByToken(ctx, token).Return(true, nil)
		authRepo.EXPECT().UpdatePasswordHash(ctx, userID, "password-hash").Return(repository.ErrAuthNotFound)
	})

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: token, NewPassword: "N3wPassword!!"})

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrAuthNotFound)
	assert.Contains(t, err.Error(), "failed to update password")
}

func TestAuthService_ResetPassword_MalformedTokenSkipsStore(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "too short", token: "abc"},
		{name: "outside charset", token: "0123456789abcdef0123456789abcdef!@#$%^&*()+=0123456789abcdef0123"},
		{name: "embedded space", token: "0123456789abcdef 0123456789abcdef0123456789abcdef0123456789abcde"},
		{name: "blank", token: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: tt.token, NewPassword: "N3wPassword!!"})

			require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
			fx.resetRepo.AssertNotCalled(t, "FindByToken", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_GoogleSignIn_RejectedIDToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.google.EXPECT().VerifyIDToken(ctx, "forged").Return(nil, errors.New("token has expired"))

	_, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{IDToken: "forged"})

	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestAuthService_GoogleSignIn_LookupError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	identity := &service.OAuthUser{ID: "google-sub-1", Email: "ada@example.com", Provider: entity.ProviderTypeGoogle, EmailVerified: true}

	fx.google.EXPECT().VerifyIDToken(ctx, "id-token").Return(identity, nil)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub-1").
		Return(nil, errors.New("connection reset"))

	_, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{IDToken: "id-token"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
	assert.Contains(t, err.Error(), "failed to find authentication")
}
