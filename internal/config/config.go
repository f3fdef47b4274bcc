package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	Port        string
	DBPath      string
	JWTSecret   string
	SecretsPath string
	OverpassURL string
}

// Load reads configuration from the environment, with defaults suitable
// for local development
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/pistes/pistes.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	secretsPath := os.Getenv("SECRETS_PATH")
	if secretsPath == "" {
		secretsPath = "./secrets.toml"
	}

	overpassURL := os.Getenv("OVERPASS_URL")
	if overpassURL == "" {
		overpassURL = "https://overpass-api.de/api/interpreter"
	}

	return &Config{
		Port:        port,
		DBPath:      dbPath,
		JWTSecret:   jwtSecret,
		SecretsPath: secretsPath,
		OverpassURL: overpassURL,
	}
}
