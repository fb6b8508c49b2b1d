package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	AppMode string // dev | prod
	Port    string

	// Storage backend: memory | mysql
	Storage string

	// Database (mysql storage only)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Seed demo accounts, apartments and bookings at startup
	SeedDemoData bool

	// CORS allowed origins for prod mode, comma separated
	AllowedOrigins string
}

// Load reads configuration from .env and the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using environment variables")
	}

	cfg := &Config{
		AppMode:        getEnv("APP_MODE", "dev"),
		Port:           getEnv("PORT", "8080"),
		Storage:        getEnv("STORAGE", "memory"),
		SeedDemoData:   getEnv("SEED_DEMO_DATA", "true") == "true",
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
	}

	prefix := "DEV_"
	if cfg.IsProd() {
		prefix = "PROD_"
	}
	cfg.DBHost = getEnv(prefix+"DB_HOST", "localhost")
	cfg.DBPort = getEnv(prefix+"DB_PORT", "3306")
	cfg.DBUser = getEnv(prefix+"DB_USER", "root")
	cfg.DBPassword = getEnv(prefix+"DB_PASSWORD", "")
	cfg.DBName = getEnv(prefix+"DB_NAME", "residential_hub")

	return cfg
}

// IsDev checks if the app runs in dev mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd checks if the app runs in prod mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns the CORS origins for prod mode
func (c *Config) GetAllowedOrigins() string {
	if c.AllowedOrigins != "" {
		return c.AllowedOrigins
	}
	return "http://localhost:3000"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
