package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the full application configuration, loaded once at startup.
// Values come from the environment; a .env file is loaded by main before
// this runs.
type Config struct {
	HTTPAddr string
	DBDSN    string

	Redis   RedisConfig
	Session SessionConfig
	Admin   AdminConfig
	SMTP    SMTPConfig
	Store   StoreConfig

	BaseCurrency      string
	LowStockThreshold int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

type AdminConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
}

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	From          string
	FromName      string
	TLSMode       string // "", "tls", "starttls"
	SkipVerifyTLS bool
}

type StoreConfig struct {
	Driver       string // "local" or "s3"
	LocalDir     string
	LocalURLBase string
	S3Region     string
	S3Bucket     string
	S3Prefix     string
	S3PublicBase string
}

func FromEnv() Config {
	return Config{
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),
		DBDSN:    os.Getenv("DB_DSN"),
		Redis: RedisConfig{
			Addr:     envOr("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			CookieName: envOr("SESSION_COOKIE_NAME", "session_token"),
			TTL:        envDuration("SESSION_TTL", 30*24*time.Hour),
			Secure:     envBool("SESSION_COOKIE_SECURE", false),
		},
		Admin: AdminConfig{
			JWTSecret:  os.Getenv("ADMIN_JWT_SECRET"),
			SessionTTL: envDuration("ADMIN_SESSION_TTL", 24*time.Hour),
		},
		SMTP: SMTPConfig{
			Host:          envOr("SMTP_HOST", ""),
			Port:          envOr("SMTP_PORT", "1025"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			From:          envOr("SMTP_FROM", "no-reply@local.test"),
			FromName:      envOr("SMTP_FROM_NAME", "Test-Web Shop"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: envBool("SMTP_TLS_SKIP_VERIFY", false),
		},
		Store: StoreConfig{
			Driver:       envOr("STORAGE_DRIVER", "local"),
			LocalDir:     envOr("LOCAL_UPLOAD_DIR", "./storage/uploads"),
			LocalURLBase: envOr("LOCAL_UPLOAD_URL_PREFIX", "/uploads"),
			S3Region:     os.Getenv("S3_REGION"),
			S3Bucket:     os.Getenv("S3_BUCKET"),
			S3Prefix:     envOr("S3_PREFIX", "uploads"),
			S3PublicBase: os.Getenv("S3_PUBLIC_BASE_URL"),
		},
		BaseCurrency:      envOr("BASE_CURRENCY", "THB"),
		LowStockThreshold: envInt("LOW_STOCK_THRESHOLD", 5),
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
