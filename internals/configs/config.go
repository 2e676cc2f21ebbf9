package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
)

// Pagination defaults shared by every list endpoint.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[CONFIG] no .env file found, using system ENV")
		} else {
			log.Println("[CONFIG] .env file loaded")
		}
	} else {
		log.Println("[CONFIG] running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")

	if JWTSecret == "" {
		log.Println("[CONFIG] WARNING: JWT_SECRET is not set")
	}
	if JWTRefreshSecret == "" {
		log.Println("[CONFIG] WARNING: JWT_REFRESH_SECRET is not set")
	}

	AccessTokenTTL = envDuration("JWT_ACCESS_TOKEN_EXPIRES_SECONDS", 3600)
	RefreshTokenTTL = envDuration("JWT_REFRESH_TOKEN_EXPIRES_SECONDS", 7*24*3600)
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, defaultSeconds int) time.Duration {
	seconds := defaultSeconds
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			seconds = parsed
		}
	}
	return time.Duration(seconds) * time.Second
}
