package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultAccessSecret  = "a-very-secret-access-key-should-be-longer-and-random"
	defaultRefreshSecret = "default_insecure_refresh_secret_please_change_this_!@#$"
)

// Store drivers.
const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Session stores.
const (
	SessionStorePrimary = "primary"
	SessionStoreRedis   = "redis"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	// Primary store
	StoreDriver   string
	MongoURI      string
	MongoDBName   string
	MongoAppName  string
	DatabaseURL   string
	EnableDBCheck bool

	// Session store and limiter backend
	SessionStore string
	RedisURL     string

	// Token codec
	JWTAccessSecret            string
	JWTAccessExpiryDuration    time.Duration
	JWTRefreshSecret           string
	RefreshTokenExpiryDuration time.Duration
	JWTIssuer                  string
	JWTLeeway                  time.Duration

	// Refresh Token Cookie
	RefreshTokenCookieName      string
	RefreshTokenCookiePath      string
	RotateRefreshTokens         bool
	RefreshTokenCleanupInterval time.Duration

	AdminWhitelistedEmails []string
	WhitelistedOrigins     []string

	RateLimit     string
	AuthRateLimit string

	BcryptCost      int
	ShutdownTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreMongo)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "blog_api")
	v.SetDefault("APP_NAME", "blog-api")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("SESSION_STORE", SessionStorePrimary)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("JWT_ACCESS_SECRET", defaultAccessSecret)
	v.SetDefault("JWT_ACCESS_EXPIRY_DURATION", "15m")
	v.SetDefault("JWT_REFRESH_SECRET", defaultRefreshSecret)
	v.SetDefault("JWT_REFRESH_EXPIRY_DURATION", "168h")
	v.SetDefault("JWT_ISSUER", "blog-api")
	v.SetDefault("JWT_CLOCK_SKEW_LEEWAY", "0s")
	v.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "refreshToken")
	v.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/api/v1/auth")
	v.SetDefault("ROTATE_REFRESH_TOKENS", false)
	v.SetDefault("REFRESH_TOKEN_CLEANUP_INTERVAL", "1h")
	v.SetDefault("ADMIN_WHITELISTED_EMAILS", "")
	v.SetDefault("WHITELISTED_ORIGINS", "")
	v.SetDefault("RATE_LIMIT", "50-M")
	v.SetDefault("AUTH_RATE_LIMIT", "10-M")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.AutomaticEnv()

	cfg := &Config{
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		LogLevel:      strings.ToLower(v.GetString("LOG_LEVEL")),
		StoreDriver:   strings.ToLower(v.GetString("STORE_DRIVER")),
		MongoURI:      v.GetString("MONGO_URI"),
		MongoDBName:   v.GetString("DB_NAME"),
		MongoAppName:  v.GetString("APP_NAME"),
		DatabaseURL:   v.GetString("PGSQL_URL"),
		EnableDBCheck: v.GetBool("ENABLE_DB_CHECK"),
		SessionStore:  strings.ToLower(v.GetString("SESSION_STORE")),
		RedisURL:      v.GetString("REDIS_URL"),

		JWTAccessSecret:  v.GetString("JWT_ACCESS_SECRET"),
		JWTRefreshSecret: v.GetString("JWT_REFRESH_SECRET"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),

		RefreshTokenCookieName: v.GetString("REFRESH_TOKEN_COOKIE_NAME"),
		RefreshTokenCookiePath: v.GetString("REFRESH_TOKEN_COOKIE_PATH"),
		RotateRefreshTokens:    v.GetBool("ROTATE_REFRESH_TOKENS"),

		AdminWhitelistedEmails: splitList(v.GetString("ADMIN_WHITELISTED_EMAILS"), true),
		WhitelistedOrigins:     splitList(v.GetString("WHITELISTED_ORIGINS"), false),

		RateLimit:     v.GetString("RATE_LIMIT"),
		AuthRateLimit: v.GetString("AUTH_RATE_LIMIT"),
		BcryptCost:    v.GetInt("BCRYPT_COST"),
	}

	cfg.JWTAccessExpiryDuration = parseDuration(v, "JWT_ACCESS_EXPIRY_DURATION", 15*time.Minute)
	cfg.RefreshTokenExpiryDuration = parseDuration(v, "JWT_REFRESH_EXPIRY_DURATION", 7*24*time.Hour)
	cfg.JWTLeeway = parseDuration(v, "JWT_CLOCK_SKEW_LEEWAY", 0)
	cfg.RefreshTokenCleanupInterval = parseDuration(v, "REFRESH_TOKEN_CLEANUP_INTERVAL", time.Hour)
	cfg.ShutdownTimeout = parseDuration(v, "SHUTDOWN_TIMEOUT", 10*time.Second)

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.RefreshTokenCookieName == "" {
		cfg.RefreshTokenCookieName = "refreshToken"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMongo:
		if c.MongoURI == "" {
			return errors.New("MONGO_URI is required when STORE_DRIVER=mongo")
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("PGSQL_URL is required when STORE_DRIVER=postgres")
		}
	case StoreMemory:
		if c.IsProduction {
			return errors.New("STORE_DRIVER=memory is not allowed in production")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.SessionStore {
	case SessionStorePrimary:
	case SessionStoreRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required when SESSION_STORE=redis")
		}
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", c.SessionStore)
	}

	if c.JWTAccessExpiryDuration <= 0 {
		return errors.New("JWT_ACCESS_EXPIRY_DURATION must be positive")
	}
	if c.RefreshTokenExpiryDuration <= 0 {
		return errors.New("JWT_REFRESH_EXPIRY_DURATION must be positive")
	}

	if c.JWTAccessSecret == "" || c.JWTRefreshSecret == "" {
		return errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must be set")
	}
	if c.JWTAccessSecret == c.JWTRefreshSecret {
		return errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}
	if c.IsProduction && (c.JWTAccessSecret == defaultAccessSecret || c.JWTRefreshSecret == defaultRefreshSecret) {
		return errors.New("default JWT secrets are not allowed in production")
	}
	if !c.IsProduction && (c.JWTAccessSecret == defaultAccessSecret || c.JWTRefreshSecret == defaultRefreshSecret) {
		slog.Warn("Using default insecure JWT secrets. THIS IS NOT FOR PRODUCTION.")
	}
	return nil
}

// IsAdminEmail reports whether email is on the admin allow-list.
func (c *Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, allowed := range c.AdminWhitelistedEmails {
		if allowed == email {
			return true
		}
	}
	return false
}

// SlogLevel maps LogLevel onto a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		slog.Warn("Invalid duration, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.String("default", fallback.String()))
		return fallback
	}
	return d
}

func splitList(raw string, lower bool) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lower {
			part = strings.ToLower(part)
		}
		out = append(out, part)
	}
	return out
}
