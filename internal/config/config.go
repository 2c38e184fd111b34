package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Default allowed origins for development.
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// Config carries everything the process reads from the environment. It is
// loaded once in main and passed down explicitly.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	// RegisterSecretHash is the hex sha256 of the shared registration code.
	RegisterSecretHash string
	CookieDomain       string
	AllowedOrigins     []string
}

// Load reads the optional .env file, then the environment. DATABASE_URL
// and JWT_SECRET are required; everything else has a default.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               os.Getenv("PORT"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		RegisterSecretHash: os.Getenv("REGISTER_SECRET_HASH"),
		CookieDomain:       os.Getenv("DOMAIN"),
		AllowedOrigins:     allowedOrigins(),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	return cfg, nil
}

func allowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
