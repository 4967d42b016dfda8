package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl      string
	JWTSecret  string
	ServerPort string

	RedisAddr     string
	RedisPassword string

	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string

	// Base URL the OAuth provider redirects back to after consent.
	OAuthRedirectBase string
	OAuthClientID     string
}

// Load reads configuration from the environment (.env is honored in dev).
// DATABASE_URL and JWT_SECRET have no fallback: the service refuses to start
// without them.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBUrl:      os.Getenv("DATABASE_URL"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Bucket:    getEnv("S3_BUCKET", "miche-certifications"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),

		OAuthRedirectBase: getEnv("OAUTH_REDIRECT_BASE", "http://localhost:8080"),
		OAuthClientID:     os.Getenv("OAUTH_CLIENT_ID"),
	}

	if cfg.DBUrl == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
