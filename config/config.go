package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env once at startup. A missing file is fine outside dev.
func Load() {
	if err := godotenv.Load(); err != nil {
		GetLogger().Info("no .env file found, using process environment")
	}
	if os.Getenv("ADMIN_PASSWORD") == "" {
		GetLogger().Warn("using default admin credentials, set ADMIN_USERNAME and ADMIN_PASSWORD to override")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Port() string {
	return envOr("PORT", "8080")
}

func AllowOrigins() string {
	// Dev defaults; comma separated.
	return envOr("ALLOW_ORIGINS", "http://127.0.0.1:5500,http://localhost:5500,http://localhost:3000")
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func JWTSecret() string {
	return envOr("JWT_SECRET", "fashionstore-secret-key")
}

// AdminCredentials returns the single operator credential pair.
func AdminCredentials() (string, string) {
	return envOr("ADMIN_USERNAME", "admin"), envOr("ADMIN_PASSWORD", "1234")
}
