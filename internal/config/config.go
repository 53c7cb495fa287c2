package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port          string
	DatabaseDSN   string
	JWTSecret     string
	TokenTTL      time.Duration
	UploadDir     string
	UploadBaseURL string
	BcryptCost    int
}

// Load reads configuration from environment variables. Call godotenv.Load()
// before this if you want .env support.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=jobportal port=5432 sslmode=disable"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		UploadBaseURL: getEnv("UPLOAD_BASE_URL", "/uploads"),
		BcryptCost:    10,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttl := getEnv("JWT_TTL_HOURS", "168") // 7 days, matching the frontend session length
	hours, err := strconv.Atoi(ttl)
	if err != nil || hours <= 0 {
		return nil, fmt.Errorf("JWT_TTL_HOURS must be a positive integer, got %q", ttl)
	}
	cfg.TokenTTL = time.Duration(hours) * time.Hour

	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		c, err := strconv.Atoi(cost)
		if err != nil || c < 4 || c > 31 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %q", cost)
		}
		cfg.BcryptCost = c
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
