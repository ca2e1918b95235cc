package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultTokenTTL = 7 * 24 * time.Hour

type Config struct {
	Port           string
	MongoURI       string
	DatabaseName   string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
	GinMode        string
}

// Load reads configuration from the environment, after loading a .env file
// if one is present in the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "5000"),
		MongoURI:     getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		DatabaseName: getEnv("MONGODB_DATABASE", "linkedin_clone"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		TokenTTL:     defaultTokenTTL,
		GinMode:      os.Getenv("GIN_MODE"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = d
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
