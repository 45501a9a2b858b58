package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultAccessTokenTTL   = 15 * time.Minute
	defaultRefreshTokenTTL  = 7 * 24 * time.Hour
	defaultOTPTTL           = 10 * time.Minute
	defaultOTPLength        = 6
	defaultResetTTL         = time.Hour
	defaultHousekeepingTick = 5 * time.Minute
)

// OTP store drivers.
const (
	OTPStorePostgres = "postgres"
	OTPStoreRedis    = "redis"
)

// Mail transports.
const (
	MailTransportSMTP  = "smtp"
	MailTransportQueue = "queue"
	MailTransportLog   = "log"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowOrigins enables credentialed CORS for the listed origins.
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	JWT *JWTConfig `json:"jwt" yaml:"jwt"`

	Cookie *CookieConfig `json:"cookie" yaml:"cookie"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	OTP *OTPConfig `json:"otp" yaml:"otp"`

	PasswordReset *PasswordResetConfig `json:"passwordReset" yaml:"passwordReset"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	// PubSub carries mail jobs to the mail worker when mail.transport is "queue".
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	Housekeeping *HousekeepingConfig `json:"housekeeping" yaml:"housekeeping"`

	Migration *MigrationConfig `json:"migration" yaml:"migration"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	TLS      bool   `json:"tls" yaml:"tls"`
}

type JWTConfig struct {
	Issuer     string        `json:"issuer" yaml:"issuer"`
	AccessTTL  time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
}

// CookieConfig controls the refresh token cookie.
type CookieConfig struct {
	Secure bool   `json:"secure" yaml:"secure"`
	Domain string `json:"domain" yaml:"domain"`
}

type GoogleOAuthConfig struct {
	// ClientID is the audience checked on Google ID tokens.
	ClientID string `json:"clientId" yaml:"clientId"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`

	// HashConcurrency bounds the number of bcrypt operations in flight.
	// Zero means GOMAXPROCS.
	HashConcurrency int `json:"hashConcurrency" yaml:"hashConcurrency"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int      `json:"minLength" yaml:"minLength"`
	MaxLength        int      `json:"maxLength" yaml:"maxLength"`
	RequireUppercase bool     `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool     `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool     `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool     `json:"requireSpecial" yaml:"requireSpecial"`
	ForbiddenWords   []string `json:"forbiddenWords" yaml:"forbiddenWords"`
}

type OTPConfig struct {
	// Store is "postgres" or "redis".
	Store  string        `json:"store" yaml:"store"`
	Length int           `json:"length" yaml:"length"`
	TTL    time.Duration `json:"ttl" yaml:"ttl"`
}

type PasswordResetConfig struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// FrontendBaseURL is prefixed to /reset-password?token=... in reset mails.
	FrontendBaseURL string `json:"frontendBaseURL" yaml:"frontendBaseURL"`
}

type MailConfig struct {
	// Transport is "smtp", "queue" or "log".
	Transport string     `json:"transport" yaml:"transport"`
	From      string     `json:"from" yaml:"from"`
	SMTP      SMTPConfig `json:"smtp" yaml:"smtp"`
}

type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// PubSubConfig defines the mail event transport.
type PubSubConfig struct {
	// Provider type: "local" (HTTP push), "google" (Cloud Pub/Sub) or "amqp" (RabbitMQ).
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	AMQPURL   string `json:"amqpURL" yaml:"amqpURL"`
	AMQPQueue string `json:"amqpQueue" yaml:"amqpQueue"`

	// PushAudience, when set, makes the worker verify the OIDC token Google
	// attaches to push requests.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

type HousekeepingConfig struct {
	Interval time.Duration `json:"interval" yaml:"interval"`
}

type MigrationConfig struct {
	DatabaseURL string `json:"databaseURL" yaml:"databaseURL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// ENV_VAR_NAME maps onto the YAML key path, reusing the YAML casing.
	// Example: POSTGRES_SSLMODE -> postgres.sslMode
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.JWT == nil {
		cfg.JWT = &JWTConfig{}
	}
	if cfg.JWT.AccessTTL <= 0 {
		cfg.JWT.AccessTTL = defaultAccessTokenTTL
	}
	if cfg.JWT.RefreshTTL <= 0 {
		cfg.JWT.RefreshTTL = defaultRefreshTokenTTL
	}

	if cfg.Cookie == nil {
		cfg.Cookie = &CookieConfig{}
	}

	if cfg.OTP == nil {
		cfg.OTP = &OTPConfig{}
	}
	if cfg.OTP.Store == "" {
		cfg.OTP.Store = OTPStorePostgres
	}
	if cfg.OTP.Length <= 0 {
		cfg.OTP.Length = defaultOTPLength
	}
	if cfg.OTP.TTL <= 0 {
		cfg.OTP.TTL = defaultOTPTTL
	}

	if cfg.PasswordReset == nil {
		cfg.PasswordReset = &PasswordResetConfig{}
	}
	if cfg.PasswordReset.TTL <= 0 {
		cfg.PasswordReset.TTL = defaultResetTTL
	}

	if cfg.Mail == nil {
		cfg.Mail = &MailConfig{}
	}
	if cfg.Mail.Transport == "" {
		cfg.Mail.Transport = MailTransportLog
	}

	if cfg.Housekeeping == nil {
		cfg.Housekeeping = &HousekeepingConfig{}
	}
	if cfg.Housekeeping.Interval <= 0 {
		cfg.Housekeeping.Interval = defaultHousekeepingTick
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index missing a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
