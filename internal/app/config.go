package app

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	DSN          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// local-issuer mode
	JWTSecret  string
	JWTIssuer  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// external-issuer mode: when JWKSURL is set, login and refresh
	// routes are not registered and tokens are verified against the
	// published key set
	JWKSURL      string
	JWKSIssuer   string
	JWKSAudience string

	S3Region    string
	S3Endpoint  string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string
	S3PathStyle bool

	RedisAddr       string
	RedisPassword   string
	LoginRateMax    int64
	LoginRateWindow time.Duration

	// TrustProxy makes rate limiting key on X-Forwarded-For. Enable
	// only when a trusted reverse proxy sets the header.
	TrustProxy bool
}

func LoadConfig() Config {
	cfg := Config{
		Port:         envOr("PORT", "4040"),
		DSN:          os.Getenv("DB_CONN"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,

		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTIssuer:  envOr("JWT_ISSUER", "anicat"),
		AccessTTL:  durationOr("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTTL: durationOr("REFRESH_TOKEN_TTL", 30*24*time.Hour),

		JWKSURL:      os.Getenv("AUTH_JWKS_URL"),
		JWKSIssuer:   os.Getenv("AUTH_ISSUER"),
		JWKSAudience: os.Getenv("AUTH_AUDIENCE"),

		S3Region:    envOr("S3_REGION", "us-east-1"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Bucket:    envOr("S3_BUCKET", "anicat"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
		S3PathStyle: boolOr("S3_PATH_STYLE", true),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		LoginRateMax:    int64Or("LOGIN_RATE_MAX", 10),
		LoginRateWindow: durationOr("LOGIN_RATE_WINDOW", time.Minute),

		TrustProxy: boolOr("TRUST_PROXY", false),
	}

	if cfg.DSN == "" {
		log.Fatal("missing required environment variable: DB_CONN")
	}
	if cfg.JWTSecret == "" && cfg.JWKSURL == "" {
		log.Fatal("either JWT_SECRET or AUTH_JWKS_URL must be set")
	}

	return cfg
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("invalid duration in %s: %v", key, err)
	}
	return d
}

func int64Or(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("invalid integer in %s: %v", key, err)
	}
	return n
}

func boolOr(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("invalid boolean in %s: %v", key, err)
	}
	return b
}
