package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
otp:
  store: redis
  length: 6
  ttl: 10m
passwordReset:
  ttl: 1h
  frontendBaseURL: http://localhost:3000
mail:
  transport: smtp
  from: no-reply@recruit.local
  smtp:
    host: smtp.local
    username: ""
googleOAuth:
  clientId: ""
pubsub:
  pushAudience: ""
`

func TestCanonicalizeEnvKey_MapsOntoYAMLCasing(t *testing.T) {
	existing := map[string]any{
		"passwordReset": map[string]any{
			"frontendBaseURL": "",
		},
		"otp": map[string]any{
			"ttl": "10m",
		},
		"mail": map[string]any{
			"smtp": map[string]any{
				"username": "",
			},
		},
		"googleOAuth": map[string]any{
			"clientId": "",
		},
		"pubsub": map[string]any{
			"amqpURL":      "",
			"pushAudience": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "PASSWORDRESET_FRONTENDBASEURL", want: "passwordReset.frontendBaseURL"},
		{envKey: "OTP_TTL", want: "otp.ttl"},
		{envKey: "MAIL_SMTP_USERNAME", want: "mail.smtp.username"},
		{envKey: "GOOGLEOAUTH_CLIENTID", want: "googleOAuth.clientId"},
		{envKey: "PUBSUB_AMQPURL", want: "pubsub.amqpURL"},
		{envKey: "PUBSUB_PUSHAUDIENCE", want: "pubsub.pushAudience"},
		{envKey: "OTP__LENGTH", want: "otp.length"},
		{envKey: "HOUSEKEEPING_INTERVAL", want: "housekeeping.interval"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "recruit.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("OTP_TTL", "90s")
	t.Setenv("PASSWORDRESET_FRONTENDBASEURL", "https://app.recruit.dev")
	t.Setenv("MAIL_SMTP_USERNAME", "mailer")
	t.Setenv("GOOGLEOAUTH_CLIENTID", "client-123.apps.googleusercontent.com")

	cfg, err := LoadWithEnv[Config]("recruit")
	require.NoError(t, err)

	assert.Equal(t, OTPStoreRedis, cfg.OTP.Store)
	assert.Equal(t, 90*time.Second, cfg.OTP.TTL)
	assert.Equal(t, time.Hour, cfg.PasswordReset.TTL)
	assert.Equal(t, "https://app.recruit.dev", cfg.PasswordReset.FrontendBaseURL)
	assert.Equal(t, "smtp.local", cfg.Mail.SMTP.Host)
	assert.Equal(t, "mailer", cfg.Mail.SMTP.Username)
	assert.Equal(t, "client-123.apps.googleusercontent.com", cfg.GoogleOAuth.ClientID)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("recruit")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recruit.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAccessTokenTTL, cfg.JWT.AccessTTL)
	assert.Equal(t, defaultRefreshTokenTTL, cfg.JWT.RefreshTTL)
	assert.Equal(t, OTPStorePostgres, cfg.OTP.Store)
	assert.Equal(t, defaultOTPLength, cfg.OTP.Length)
	assert.Equal(t, defaultOTPTTL, cfg.OTP.TTL)
	assert.Equal(t, defaultResetTTL, cfg.PasswordReset.TTL)
	assert.Equal(t, MailTransportLog, cfg.Mail.Transport)
	assert.Equal(t, defaultHousekeepingTick, cfg.Housekeeping.Interval)
	assert.NotNil(t, cfg.Cookie)

	cfg = &Config{OTP: &OTPConfig{Store: OTPStoreRedis, Length: 8, TTL: time.Minute}}
	cfg.applyDefaults()

	assert.Equal(t, OTPStoreRedis, cfg.OTP.Store)
	assert.Equal(t, 8, cfg.OTP.Length)
	assert.Equal(t, time.Minute, cfg.OTP.TTL)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5432", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
