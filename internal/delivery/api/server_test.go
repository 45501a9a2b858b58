package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recruit/config"
	"recruit/internal/delivery/api/middleware"
	"recruit/internal/delivery/api/router"
	"recruit/internal/delivery/api/router/handler"
	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/service"
	"recruit/internal/infra/metrics"
	mockSvc "recruit/internal/mocks/service"
	mockUC "recruit/internal/mocks/usecase"
	"recruit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
	Meta *struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type apiFixtures struct {
	e         *echo.Echo
	authUC    *mockUC.MockAuthUsecase
	accountUC *mockUC.MockAccountUsecase
	tokens    *mockSvc.MockTokenService
}

func newAPIFixtures(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		JWT:    &config.JWTConfig{AccessTTL: 15 * time.Minute, RefreshTTL: 7 * 24 * time.Hour},
		Cookie: &config.CookieConfig{Secure: true, Domain: "recruit.dev"},
	}

	fx := apiFixtures{
		authUC:    mockUC.NewMockAuthUsecase(t),
		accountUC: mockUC.NewMockAccountUsecase(t),
		tokens:    mockSvc.NewMockTokenService(t),
	}

	fx.e = NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.authUC, Config: cfg, Logger: logger}),
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{AuthUC: fx.authUC, AccountUC: fx.accountUC, Logger: logger}),
		AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{AccountUC: fx.accountUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(fx.tokens),
		Metrics:        metrics.New(),
	})

	return fx
}

// actingAs makes every presentation of token resolve to a new user with role.
func (fx apiFixtures) actingAs(token string, role entity.Role) uuid.UUID {
	userID := uuid.New()
	fx.tokens.EXPECT().VerifyAccessToken(token).
		Return(&service.Claims{UserID: userID, Role: role, Type: service.TokenTypeAccess}, nil)

	return userID
}

func (fx apiFixtures) do(t *testing.T, method, path, body string, setup ...func(*http.Request)) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, fn := range setup {
		fn(req)
	}

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set(echo.HeaderAuthorization, "Bearer "+token) }
}

func refreshCookieOf(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == handler.RefreshCookieName {
			return c
		}
	}

	return nil
}

func TestAPI_Login_SetsRefreshCookie(t *testing.T) {
	fx := newAPIFixtures(t)
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleCandidate, Provider: entity.ProviderTypeLocal, Active: true}

	fx.authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "Str0ngPassw0rd!"}).
		Return(&usecase.AuthOutput{AccessToken: "access", RefreshToken: "refresh", User: user}, nil)

	rec, env := fx.do(t, http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"Str0ngPassw0rd!"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var session handler.SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "access", session.AccessToken)
	assert.Equal(t, "Bearer", session.TokenType)
	assert.Equal(t, int64(900), session.ExpiresIn)
	assert.Equal(t, user.ID, session.User.ID)
	assert.NotContains(t, rec.Body.String(), `"refresh"`, "the refresh token only travels in the cookie")

	cookie := refreshCookieOf(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "refresh", cookie.Value)
	assert.Equal(t, "/auth", cookie.Path)
	assert.Equal(t, "recruit.dev", cookie.Domain)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 7*24*3600, cookie.MaxAge)
}

func TestAPI_Login_ValidationError(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, http.MethodPost, "/auth/login", `{"email":"not-an-email"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "email", env.Error.Details["email"])
	assert.Equal(t, "required", env.Error.Details["password"])
}

func TestAPI_Login_MalformedBody(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, http.MethodPost, "/auth/login", `{"email":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAPI_Login_InvalidCredentials(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec, env := fx.do(t, http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, refreshCookieOf(rec))
}

func TestAPI_SendOtp(t *testing.T) {
	fx := newAPIFixtures(t)
	expiresAt := time.Date(2026, 3, 1, 9, 10, 0, 0, time.UTC)

	fx.authUC.EXPECT().SendOtp(mock.Anything, &usecase.SendOtpInput{Email: "ada@example.com", Role: entity.RoleRecruiter}).
		Return(&usecase.SendOtpOutput{Email: "ada@example.com", ExpiresAt: expiresAt}, nil)

	rec, env := fx.do(t, http.MethodPost, "/auth/send-otp", `{"email":"ada@example.com","role":"recruiter"}`)

	require.Equal(t, http.StatusAccepted, rec.Code)
	var out handler.OtpSentResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, expiresAt, out.ExpiresAt.UTC())
}

func TestAPI_SendOtp_Rejections(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, http.MethodPost, "/auth/send-otp", `{"email":"ada@example.com","role":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "oneof=candidate recruiter", env.Error.Details["role"])

	fx.authUC.EXPECT().SendOtp(mock.Anything, mock.Anything).
		Return(&usecase.SendOtpOutput{Email: "ada@example.com"}, errors.Wrap(domainerrors.ErrNotificationFailed, "smtp down"))

	rec, env = fx.do(t, http.MethodPost, "/auth/send-otp", `{"email":"ada@example.com","role":"candidate"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "NOTIFICATION_FAILED", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "smtp down")
}

func TestAPI_Register(t *testing.T) {
	fx := newAPIFixtures(t)
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleCandidate, Provider: entity.ProviderTypeLocal, Active: true}

	fx.authUC.EXPECT().VerifyRegistration(mock.Anything, &usecase.VerifyRegistrationInput{
		Email:    "ada@example.com",
		Otp:      "123456",
		Password: "Str0ngPassw0rd!",
		FullName: "Ada Lovelace",
		Role:     entity.RoleCandidate,
	}).Return(&usecase.AuthOutput{AccessToken: "access", RefreshToken: "refresh", User: user}, nil)

	rec, _ := fx.do(t, http.MethodPost, "/auth/register",
		`{"email":"ada@example.com","otp":"123456","password":"Str0ngPassw0rd!","full_name":"Ada Lovelace","role":"candidate"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotNil(t, refreshCookieOf(rec))
}

func TestAPI_Register_OtpErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"expired", domainerrors.ErrOtpExpiredOrMissing, "OTP_EXPIRED_OR_MISSING"},
		{"mismatch", domainerrors.ErrOtpMismatch, "OTP_MISMATCH"},
		{"weak password", domainerrors.ErrPasswordStrength.WrapMessage("too short"), "PASSWORD_STRENGTH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixtures(t)
			fx.authUC.EXPECT().VerifyRegistration(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec, env := fx.do(t, http.MethodPost, "/auth/register",
				`{"email":"ada@example.com","otp":"123456","password":"x","role":"candidate"}`)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestAPI_Refresh_PrefersCookie(t *testing.T) {
	fx := newAPIFixtures(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCandidate}

	fx.authUC.EXPECT().RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "cookie-token"}).
		Return(&usecase.RefreshTokenOutput{AccessToken: "new-access", User: user}, nil)

	rec, env := fx.do(t, http.MethodPost, "/auth/refresh", `{"refresh_token":"body-token"}`, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: handler.RefreshCookieName, Value: "cookie-token"})
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var session handler.SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "new-access", session.AccessToken)
	assert.Nil(t, refreshCookieOf(rec), "refresh tokens are not rotated")
}

func TestAPI_Refresh_BodyFallback(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.authUC.EXPECT().RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "body-token"}).
		Return(nil, domainerrors.ErrInvalidOrExpiredToken)

	rec, env := fx.do(t, http.MethodPost, "/auth/refresh", `{"refresh_token":"body-token"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_OR_EXPIRED_TOKEN", env.Error.Code)
}

func TestAPI_Logout_ClearsCookie(t *testing.T) {
	fx := newAPIFixtures(t)
	userID := fx.actingAs("access", entity.RoleCandidate)

	fx.authUC.EXPECT().Logout(mock.Anything, userID).Return(nil)

	rec, _ := fx.do(t, http.MethodPost, "/auth/logout", "", bearer("access"))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	cookie := refreshCookieOf(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAPI_ForgotPassword_UniformAnswer(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"sent", nil},
		{"unknown or social account", nil},
		{"delivery failed", errors.Wrap(domainerrors.ErrNotificationFailed, "smtp down")},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixtures(t)
			fx.authUC.EXPECT().ForgotPassword(mock.Anything, &usecase.ForgotPasswordInput{Email: "ada@example.com"}).Return(tt.err)

			rec, env := fx.do(t, http.MethodPost, "/auth/forgot-password", `{"email":"ada@example.com"}`)

			assert.Equal(t, http.StatusAccepted, rec.Code)
			bodies = append(bodies, string(env.Data))
		})
	}

	require.Len(t, bodies, 3)
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[0], bodies[2])
}

func TestAPI_ForgotPassword_StoreFailure(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.authUC.EXPECT().ForgotPassword(mock.Anything, mock.Anything).Return(errors.New("pq: connection refused"))

	rec, env := fx.do(t, http.MethodPost, "/auth/forgot-password", `{"email":"ada@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestAPI_ResetPassword(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.authUC.EXPECT().ResetPassword(mock.Anything, &usecase.ResetPasswordInput{Token: "tok", NewPassword: "N3wPassword!!"}).
		Return(domainerrors.ErrTokenExpired)

	rec, env := fx.do(t, http.MethodPost, "/auth/reset-password", `{"token":"tok","new_password":"N3wPassword!!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "TOKEN_EXPIRED", env.Error.Code)
}

func TestAPI_GoogleSignIn(t *testing.T) {
	fx := newAPIFixtures(t)
	user := &entity.User{ID: uuid.New(), Email: "grace@example.com", Role: entity.RoleRecruiter, Provider: entity.ProviderTypeGoogle, Active: true}

	fx.authUC.EXPECT().GoogleSignIn(mock.Anything, &usecase.GoogleSignInInput{IDToken: "id-token", Role: entity.RoleRecruiter}).
		Return(&usecase.AuthOutput{AccessToken: "access", RefreshToken: "refresh", User: user}, nil)

	rec, _ := fx.do(t, http.MethodPost, "/oauth/google", `{"id_token":"id-token","role":"recruiter"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, refreshCookieOf(rec))
}

func TestAPI_Authentication(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		verify   func(tokens *mockSvc.MockTokenService)
		wantCode string
	}{
		{"missing header", "", nil, "UNAUTHORIZED"},
		{"wrong scheme", "Basic abc", nil, "UNAUTHORIZED"},
		{
			name:   "expired token",
			header: "Bearer expired",
			verify: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().VerifyAccessToken("expired").Return(nil, service.ErrTokenExpired)
			},
			wantCode: "SESSION_EXPIRED",
		},
		{
			name:   "forged token",
			header: "Bearer forged",
			verify: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().VerifyAccessToken("forged").Return(nil, service.ErrInvalidSignature)
			},
			wantCode: "INVALID_SIGNATURE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixtures(t)
			if tt.verify != nil {
				tt.verify(fx.tokens)
			}

			rec, env := fx.do(t, http.MethodGet, "/user/me", "", func(r *http.Request) {
				if tt.header != "" {
					r.Header.Set(echo.HeaderAuthorization, tt.header)
				}
			})

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestAPI_Me(t *testing.T) {
	fx := newAPIFixtures(t)
	userID := fx.actingAs("access", entity.RoleCandidate)

	fx.accountUC.EXPECT().GetProfile(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "ada@example.com", Role: entity.RoleCandidate, Provider: entity.ProviderTypeLocal, Active: true}, nil)

	rec, env := fx.do(t, http.MethodGet, "/user/me", "", bearer("access"))

	require.Equal(t, http.StatusOK, rec.Code)
	var user handler.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "candidate", user.Role)
}

func TestAPI_EmailUpdate_UsesTokenSubject(t *testing.T) {
	fx := newAPIFixtures(t)
	userID := fx.actingAs("access", entity.RoleRecruiter)

	fx.authUC.EXPECT().RequestEmailUpdate(mock.Anything, &usecase.RequestEmailUpdateInput{
		UserID: userID, Role: entity.RoleRecruiter, NewEmail: "new@example.com",
	}).Return(&usecase.SendOtpOutput{Email: "new@example.com"}, nil)
	fx.authUC.EXPECT().VerifyEmailUpdate(mock.Anything, &usecase.VerifyEmailUpdateInput{
		UserID: userID, Role: entity.RoleRecruiter, NewEmail: "new@example.com", Otp: "123456",
	}).Return(&entity.User{ID: userID, Email: "new@example.com", Role: entity.RoleRecruiter}, nil)

	rec, _ := fx.do(t, http.MethodPost, "/user/email/request", `{"new_email":"new@example.com"}`, bearer("access"))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec, env := fx.do(t, http.MethodPost, "/user/email/verify", `{"new_email":"new@example.com","otp":"123456"}`, bearer("access"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "new@example.com")
}

func TestAPI_Admin_RequiresAdminRole(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.actingAs("candidate", entity.RoleCandidate)

	rec, env := fx.do(t, http.MethodGet, "/admin/users", "", bearer("candidate"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
}

func TestAPI_Admin_ListUsers(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.actingAs("admin", entity.RoleAdmin)
	role := entity.RoleRecruiter
	active := false

	fx.accountUC.EXPECT().ListUsers(mock.Anything, &usecase.ListUsersInput{Role: &role, Active: &active, Limit: 10, Offset: 20}).
		Return(&usecase.ListUsersOutput{Users: []*entity.User{{ID: uuid.New(), Role: role}}, Total: 21}, nil)

	rec, env := fx.do(t, http.MethodGet, "/admin/users?role=recruiter&active=false&limit=10&offset=20", "", bearer("admin"))

	require.Equal(t, http.StatusOK, rec.Code)
	var out handler.UserListResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Len(t, out.Users, 1)
	assert.Equal(t, int64(21), out.Total)
}

func TestAPI_Admin_ListUsers_BadQuery(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.actingAs("admin", entity.RoleAdmin)

	for _, query := range []string{"role=owner", "active=maybe", "limit=ten"} {
		rec, _ := fx.do(t, http.MethodGet, "/admin/users?"+query, "", bearer("admin"))
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestAPI_Admin_SetUserActive(t *testing.T) {
	fx := newAPIFixtures(t)
	adminID := fx.actingAs("admin", entity.RoleAdmin)
	targetID := uuid.New()

	fx.accountUC.EXPECT().SetUserActive(mock.Anything, &usecase.SetUserActiveInput{ActorID: adminID, UserID: targetID, Active: false}).
		Return(&entity.User{ID: targetID, Active: false}, nil)

	rec, env := fx.do(t, http.MethodPatch, "/admin/users/"+targetID.String()+"/active", `{"active":false}`, bearer("admin"))

	require.Equal(t, http.StatusOK, rec.Code)
	var user handler.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.False(t, user.Active)
}

func TestAPI_Admin_SetUserActive_Rejections(t *testing.T) {
	fx := newAPIFixtures(t)
	fx.actingAs("admin", entity.RoleAdmin)

	rec, _ := fx.do(t, http.MethodPatch, "/admin/users/not-a-uuid/active", `{"active":false}`, bearer("admin"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env := fx.do(t, http.MethodPatch, "/admin/users/"+uuid.NewString()+"/active", `{}`, bearer("admin"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "required", env.Error.Details["active"])
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, _ := fx.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsRec := httptest.NewRecorder()
	fx.e.ServeHTTP(metricsRec, req)
	assert.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), "go_goroutines")
}

func TestAPI_RequestID(t *testing.T) {
	fx := newAPIFixtures(t)

	rec, env := fx.do(t, http.MethodGet, "/health", "", func(r *http.Request) {
		r.Header.Set(deliverycontext.HeaderXRequestID, "client-req-42")
	})
	assert.Equal(t, "client-req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "client-req-42", env.Meta.RequestID)

	rec, _ = fx.do(t, http.MethodGet, "/health", "", func(r *http.Request) {
		r.Header.Set(deliverycontext.HeaderXRequestID, "bad\nid")
	})
	generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err, "malformed client IDs are replaced")
}
