package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Detector  DetectorConfig  `yaml:"detector"`
	Capture   CaptureConfig   `yaml:"capture"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins returns the configured origins as a trimmed list.
func (c CORSConfig) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxFrameBytes   int64         `yaml:"max_frame_bytes"  env:"SERVER_MAX_FRAME_BYTES"  env-default:"4194304"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds identity service settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"moodverse"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	MinPasswordLen   int           `yaml:"min_password_len"   env:"AUTH_MIN_PASSWORD_LEN"   env-default:"6"`
	OperationTimeout time.Duration `yaml:"operation_timeout"  env:"AUTH_OPERATION_TIMEOUT"  env-default:"15s"`
}

// DetectorConfig holds settings for the face detection inference backend.
type DetectorConfig struct {
	// Backend is "grpc" or "static".
	Backend          string        `yaml:"backend"            env:"DETECTOR_BACKEND"            env-default:"grpc"`
	Address          string        `yaml:"address"            env:"DETECTOR_ADDRESS"            env-default:"localhost:50051"`
	InitTimeout      time.Duration `yaml:"init_timeout"       env:"DETECTOR_INIT_TIMEOUT"       env-default:"30s"`
	DetectTimeout    time.Duration `yaml:"detect_timeout"     env:"DETECTOR_DETECT_TIMEOUT"     env-default:"5s"`
	MaxMessageSizeMB int           `yaml:"max_message_size_mb" env:"DETECTOR_MAX_MESSAGE_SIZE_MB" env-default:"16"`
	// StaticFaces is the number of faces reported by the static backend.
	StaticFaces int `yaml:"static_faces" env:"DETECTOR_STATIC_FACES" env-default:"1"`

	BreakerMaxRequests  uint32        `yaml:"breaker_max_requests"  env:"DETECTOR_BREAKER_MAX_REQUESTS"  env-default:"3"`
	BreakerInterval     time.Duration `yaml:"breaker_interval"      env:"DETECTOR_BREAKER_INTERVAL"      env-default:"1m"`
	BreakerTimeout      time.Duration `yaml:"breaker_timeout"       env:"DETECTOR_BREAKER_TIMEOUT"       env-default:"30s"`
	BreakerMinRequests  uint32        `yaml:"breaker_min_requests"  env:"DETECTOR_BREAKER_MIN_REQUESTS"  env-default:"5"`
	BreakerFailureRatio float64       `yaml:"breaker_failure_ratio" env:"DETECTOR_BREAKER_FAILURE_RATIO" env-default:"0.6"`
}

// CaptureConfig holds camera and mood classification settings.
type CaptureConfig struct {
	FrameWidth  int    `yaml:"frame_width"  env:"CAPTURE_FRAME_WIDTH"  env-default:"640"`
	FrameHeight int    `yaml:"frame_height" env:"CAPTURE_FRAME_HEIGHT" env-default:"480"`
	FacingMode  string `yaml:"facing_mode"  env:"CAPTURE_FACING_MODE"  env-default:"user"`
	// Classifier is "random" or "remote".
	Classifier string `yaml:"classifier" env:"CAPTURE_CLASSIFIER" env-default:"random"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE"  env-default:"20"`
	APIPerMinute    int           `yaml:"api_per_minute"   env:"RATE_LIMIT_API_PER_MINUTE"   env-default:"300"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
