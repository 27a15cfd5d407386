package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	MongoURI string
	MongoDB  string

	JWTSecret  string
	JWTIssuer  string
	SessionTTL int // hours

	ClientURL      string
	CookieSameSite string

	ResendAPIKey string
	MailFrom     string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:           getEnv("PORT", "5001"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "life-care"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:      getEnv("JWT_ISSUER", "life-care"),
		SessionTTL:     getEnvInt("SESSION_TTL_HOURS", 24),
		ClientURL:      getEnv("CLIENT_URL", "http://localhost:5173"),
		CookieSameSite: getEnv("COOKIE_SAME_SITE", "strict"),
		ResendAPIKey:   os.Getenv("RESEND_API_KEY"),
		MailFrom:       getEnv("MAIL_FROM", "LifeCare <onboarding@resend.dev>"),
	}
	return cfg
}

// Production reports whether the service runs with production hardening
// (secure cookies).
func (c Config) Production() bool {
	return c.Environment == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
