package utils

import (
	"log"
	"os"
	"strconv"
)

var (
	JWTSecretKey               string
	JWTExpirationTime          int64
	RefreshTokenExpirationTime int64
)

// InitJWT loads the signing secret and the access/refresh token lifetimes
// (seconds). Under GO_ENV=test, missing values fall back to fixed defaults
// so the hermetic test suites never need a .env.
func InitJWT() {
	if os.Getenv("GO_ENV") == "test" {
		setTestDefault("JWT_SECRET_KEY", "test_secret_key")
		setTestDefault("JWT_EXPIRATION_TIME", "3600")
		setTestDefault("REFRESH_TOKEN_EXPIRATION_TIME", "604800")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	JWTExpirationTime = mustEnvSeconds("JWT_EXPIRATION_TIME")
	RefreshTokenExpirationTime = mustEnvSeconds("REFRESH_TOKEN_EXPIRATION_TIME")
}

func setTestDefault(key, value string) {
	if os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}

func mustEnvSeconds(key string) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		log.Fatalf("%s is not set", key)
	}
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("%s must be an integer number of seconds", key)
	}
	return seconds
}
