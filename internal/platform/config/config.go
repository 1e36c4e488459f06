// Package config builds runtime configuration from the environment so main
// stays lean. A .env file is honored when present.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Server captures process-level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	AdminPassword string
	// Production disables the console log sink.
	Production  bool
	LogDir      string
	DatabaseURL string
}

// Load reads .env (if any) and then the environment.
func Load() Server {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		// Development default - must be overridden in production.
		adminPassword = "123456"
	}

	return Server{
		Addr:          ":" + port,
		JWTSigningKey: os.Getenv("JWT_SECRET"),
		AdminPassword: adminPassword,
		Production:    os.Getenv("APP_ENV") == "production",
		LogDir:        logDir,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
	}
}
