package config

import (
	"time"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	Review   ReviewConfig   `yaml:"review"`
	Finalize FinalizeConfig `yaml:"finalize"`
	Assets   AssetsConfig   `yaml:"assets"`
	Redis    RedisConfig    `yaml:"redis"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"10485760"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"600"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access-token validation settings. Tokens are issued elsewhere.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"qreview"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ReviewConfig holds workflow limits and payout amounts. Amounts are decimal
// strings and are parsed into Rates during validation.
type ReviewConfig struct {
	MaxActiveClaims     int    `yaml:"max_active_claims"      env:"REVIEW_MAX_ACTIVE_CLAIMS"      env-default:"3"`
	BulkMaxSize         int    `yaml:"bulk_max_size"          env:"REVIEW_BULK_MAX_SIZE"          env-default:"200"`
	EasyPayoutRaw       string `yaml:"easy_payout"            env:"REVIEW_EASY_PAYOUT"            env-default:"10"`
	MediumPayoutRaw     string `yaml:"medium_payout"          env:"REVIEW_MEDIUM_PAYOUT"          env-default:"15"`
	HardPayoutRaw       string `yaml:"hard_payout"            env:"REVIEW_HARD_PAYOUT"            env-default:"20"`
	ReviewFeeRaw        string `yaml:"review_fee"             env:"REVIEW_FEE"                    env-default:"2"`
	RejectionPenaltyRaw string `yaml:"rejection_penalty"      env:"REVIEW_REJECTION_PENALTY"      env-default:"5"`
	CompensationRaw     string `yaml:"false_rejection_credit" env:"REVIEW_FALSE_REJECTION_CREDIT" env-default:"5"`

	// Rates is parsed from the raw amounts during validation.
	Rates domain.PayoutRates `yaml:"-" env:"-"`
}

// FinalizeConfig holds settings for the external finalise-confirmation endpoint.
type FinalizeConfig struct {
	URL                 string        `yaml:"url"                  env:"FINALIZE_URL"`
	Timeout             time.Duration `yaml:"timeout"              env:"FINALIZE_TIMEOUT"              env-default:"5s"`
	BreakerMaxRequests  uint32        `yaml:"breaker_max_requests" env:"FINALIZE_BREAKER_MAX_REQUESTS" env-default:"1"`
	BreakerInterval     time.Duration `yaml:"breaker_interval"     env:"FINALIZE_BREAKER_INTERVAL"     env-default:"60s"`
	BreakerTimeout      time.Duration `yaml:"breaker_timeout"      env:"FINALIZE_BREAKER_TIMEOUT"      env-default:"30s"`
	BreakerFailureRatio float64       `yaml:"breaker_failure_ratio" env:"FINALIZE_BREAKER_FAILURE_RATIO" env-default:"0.6"`
	BreakerMinRequests  uint32        `yaml:"breaker_min_requests" env:"FINALIZE_BREAKER_MIN_REQUESTS" env-default:"5"`
}

// AssetsConfig holds S3-compatible object storage settings.
type AssetsConfig struct {
	Endpoint      string `yaml:"endpoint"        env:"ASSETS_ENDPOINT"`
	AccessKey     string `yaml:"access_key"      env:"ASSETS_ACCESS_KEY"`
	SecretKey     string `yaml:"secret_key"      env:"ASSETS_SECRET_KEY"`
	Bucket        string `yaml:"bucket"          env:"ASSETS_BUCKET"          env-default:"question-assets"`
	UseSSL        bool   `yaml:"use_ssl"         env:"ASSETS_USE_SSL"         env-default:"false"`
	PublicBaseURL string `yaml:"public_base_url" env:"ASSETS_PUBLIC_BASE_URL"`
}

// Enabled reports whether an asset store is configured.
func (c AssetsConfig) Enabled() bool {
	return c.Endpoint != ""
}

// RedisConfig holds settings for the bulk-approval idempotency store.
type RedisConfig struct {
	URL            string        `yaml:"url"             env:"REDIS_URL"`
	IdempotencyTTL time.Duration `yaml:"idempotency_ttl" env:"REDIS_IDEMPOTENCY_TTL" env-default:"24h"`
}

// Enabled reports whether Redis is configured.
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}
