package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseURL            string
	ClerkSecretKey         string
	ClerkAPIURL            string
	RedisAddr              string
	RateLimit              int
	FirstNameCacheTTLSecs  int
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "3000")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseURL:            getEnv("DATABASE_URL", "taskboard.db"),
		ClerkSecretKey:         getEnv("CLERK_SECRET_KEY", ""),
		ClerkAPIURL:            getEnv("CLERK_API_URL", ""),
		RedisAddr:              getEnv("REDIS_ADDR", ""),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		FirstNameCacheTTLSecs:  getEnvAsInt("FIRSTNAME_CACHE_TTL_SECONDS", 300),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.FirstNameCacheTTLSecs <= 0 {
		log.Fatal("FIRSTNAME_CACHE_TTL_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
